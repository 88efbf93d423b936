package app

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"

	"github.com/alionaterguta/cine-verse/config"
	"github.com/alionaterguta/cine-verse/internal/auth"
	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/middleware"
	"github.com/alionaterguta/cine-verse/internal/movieservice"
	"github.com/alionaterguta/cine-verse/internal/routes"
	"github.com/alionaterguta/cine-verse/internal/server"
	"github.com/alionaterguta/cine-verse/internal/userservice"
	mongoDB "github.com/alionaterguta/cine-verse/pkg/databases/mongo"
	postgresDB "github.com/alionaterguta/cine-verse/pkg/databases/postgres"
	"github.com/alionaterguta/cine-verse/pkg/metrics"
	"github.com/alionaterguta/cine-verse/pkg/zerolog"

	directorRepoMongo "github.com/alionaterguta/cine-verse/internal/directorrepo/mongo"
	movieRepoMongo "github.com/alionaterguta/cine-verse/internal/movierepo/mongo"
	userRepoMongo "github.com/alionaterguta/cine-verse/internal/userrepo/mongo"
	userRepoPostgres "github.com/alionaterguta/cine-verse/internal/userrepo/postgres"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// App represents the main application, containing server and configuration.
// Every dependency is constructed here and injected; there is no ambient
// global state.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Logger     interfaces.Logger
	privateKey *ecdsa.PrivateKey
	userRepo   interfaces.UserRepository
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("config validation error: %s", errors)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initializePrivateKey(); err != nil {
		return nil, fmt.Errorf("failed to initialize private key: %w", err)
	}

	app.Server = server.NewServer(cfg.Host, cfg.Port, cfg.CORS.AllowedOrigins, logger)
	metricsInstance := app.initializeMetrics()

	mongoClient, err := app.initializeMongoClient(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}

	movieRepo, err := movieRepoMongo.NewMongoMovieRepository(mongoClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize movie repository: %w", err)
	}

	directorRepo, err := directorRepoMongo.NewMongoDirectorRepository(mongoClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize director repository: %w", err)
	}

	userRepo, err := app.initializeUserRepo(mongoClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user repository: %w", err)
	}
	app.userRepo = userRepo

	userService := userservice.NewUserService(userRepo, movieRepo, logger)
	movieService := movieservice.NewMovieService(movieRepo, directorRepo, logger)

	route := routes.NewRoute(metricsInstance, userService, movieService, app.privateKey, validator, logger)

	if err := app.registerRoutes(route, metricsInstance); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *App) registerRoutes(route *routes.Route, metricsInstance interfaces.Metrics) error {
	requireAuth := auth.RequireAuth(&app.privateKey.PublicKey)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})
	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	type routeSpec struct {
		method      string
		pattern     string
		handler     http.HandlerFunc
		middlewares []func(http.Handler) http.Handler
	}

	authOnly := []func(http.Handler) http.Handler{requireAuth}

	specs := []routeSpec{
		{http.MethodGet, routes.WelcomeRouteAPI, route.Welcome, nil},
		{http.MethodGet, routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP, nil},
		{http.MethodPost, routes.LoginRouteAPI, route.Login, app.loginMiddlewares(metricsInstance)},
		{http.MethodPost, routes.UsersRouteAPI, route.Signup, nil},
		{http.MethodGet, routes.UsersRouteAPI, route.ListUsers, authOnly},
		{http.MethodPut, routes.UserByUsernameRouteAPI, route.UpdateUser, authOnly},
		{http.MethodDelete, routes.UserByIDRouteAPI, route.DeleteUser, authOnly},
		{http.MethodPost, routes.UserFavoriteRouteAPI, route.AddFavorite, authOnly},
		{http.MethodDelete, routes.UserFavoriteRouteAPI, route.RemoveFavorite, authOnly},
		{http.MethodGet, routes.MoviesRouteAPI, route.ListMovies, authOnly},
		{http.MethodGet, routes.DirectorsRouteAPI, route.ListDirectors, authOnly},
		{http.MethodGet, routes.MovieByTitleRouteAPI, route.GetMovieByTitle, authOnly},
		{http.MethodGet, routes.MoviesByGenreRouteAPI, route.GetMoviesByGenre, authOnly},
		// Reachable without a token, matching the observed per-route flag.
		{http.MethodGet, routes.DirectorByNameRouteAPI, route.GetDirectorByName, nil},
	}

	for _, spec := range specs {
		if err := app.Server.AddRoute(spec.method, spec.pattern, spec.handler, spec.middlewares...); err != nil {
			return fmt.Errorf("failed to add route %s %s: %w", spec.method, spec.pattern, err)
		}
	}

	return nil
}

// loginMiddlewares builds the login rate limiter when configured.
func (app *App) loginMiddlewares(metricsInstance interfaces.Metrics) []func(http.Handler) http.Handler {
	cfg := app.Config.LoginLimit
	if cfg.RequestsPerSecond <= 0 || cfg.Burst <= 0 {
		return nil
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	return []func(http.Handler) http.Handler{
		middleware.RateLimitMiddleware(limiter, metricsInstance, routes.LoginRateLimitedTotal),
	}
}

// Run starts the server.
func (app *App) Run() error {
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown drains the server and closes the repositories.
func (app *App) Shutdown(ctx context.Context) error {
	if err := app.Server.Shutdown(ctx); err != nil {
		return err
	}
	if app.userRepo != nil {
		return app.userRepo.Close(ctx)
	}
	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.RegisterCounter(routes.SignupRequestsTotal, routes.SignupRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.SignupSuccessTotal, routes.SignupSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.SignupErrorsTotal, routes.SignupErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.SignupDurationSeconds,
		routes.SignupDurationSecondsHelp,
		routes.SignupDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.LoginRequestsTotal, routes.LoginRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.LoginSuccessTotal, routes.LoginSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.LoginFailedTotal, routes.LoginFailedTotalHelp)
	appMetrics.RegisterCounter(routes.LoginRateLimitedTotal, routes.LoginRateLimitedTotalHelp)
	appMetrics.RegisterHistogram(
		routes.LoginDurationSeconds,
		routes.LoginDurationSecondsHelp,
		routes.LoginDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.UsersRequestsTotal, routes.UsersRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.UsersErrorsTotal, routes.UsersErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.CatalogRequestsTotal, routes.CatalogRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.CatalogErrorsTotal, routes.CatalogErrorsTotalHelp)

	return appMetrics
}

func (app *App) initializeMongoClient(logger interfaces.Logger) (interfaces.DBClient, error) {
	mongoClient, err := mongoDB.NewMongoDB(&app.Config.Database.MongoDB, logger)
	if err != nil {
		return nil, err
	}

	if err := mongoClient.Connect(context.Background(), app.Config.Database.MongoDB.DSN); err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return mongoClient, nil
}

// initializeUserRepo picks the credential store backend. The movie and
// director catalog always lives in MongoDB; only users can move to Postgres.
func (app *App) initializeUserRepo(mongoClient interfaces.DBClient) (interfaces.UserRepository, error) {
	var userRepo interfaces.UserRepository
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		userRepo, err = userRepoMongo.NewMongoUserRepository(mongoClient)
		if err != nil {
			return nil, err
		}

	case "postgres":
		pgCfg := app.Config.Database.Postgres
		pgClient := postgresDB.NewPostgresDatabaseClient(
			pgCfg.MaxOpenConns, pgCfg.MaxIdleConns, pgCfg.ConnMaxLifetime)
		if err = pgClient.Connect(context.Background(), pgCfg.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		userRepo, err = userRepoPostgres.NewPostgresUserRepository(pgClient)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	// The unique username index is what makes concurrent registration safe.
	if err = userRepo.EnsureIndices(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure indices: %w", err)
	}

	return userRepo, nil
}

func (app *App) initializePrivateKey() error {
	if app.Config.PrivateKeyPath == "" {
		return fmt.Errorf("private key path is not provided in the configuration")
	}

	privateKey, err := auth.LoadECDSAPrivateKey(app.Config.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}

	app.privateKey = privateKey
	return nil
}
