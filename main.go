package main

import (
	"github.com/alionaterguta/cine-verse/config"
	"github.com/alionaterguta/cine-verse/internal/app"
)

func main() {

	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err) // handle error appropriately in production code
	}

	// run the app
	err = app.Run()
	if err != nil {
		panic(err) // handle error appropriately in production code
	}
}
