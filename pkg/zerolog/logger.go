package zerolog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/rs/zerolog"
)

// Logger implements interfaces.Logger using zerolog.
type Logger struct {
	zlog zerolog.Logger
}

// NewZerologLogger initializes zerolog with standard settings.
func NewZerologLogger(serviceName string) interfaces.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	z := zerolog.New(output).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	return &Logger{zlog: z}
}

// withFields attaches alternating key/value pairs to the event. Keys that
// are not strings are skipped.
func withFields(event *zerolog.Event, keyvals []interface{}) *zerolog.Event {
	for i := 0; i < len(keyvals)-1; i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, keyvals[i+1])
	}
	return event
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Info(), keyvals).Msg(msg)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Warn(), keyvals).Msg(msg)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Error(), keyvals).Msg(msg)
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	withFields(l.zlog.Debug(), keyvals).Msg(msg)
}

// SetLevel sets the global log level for zerolog.
func (l *Logger) SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// WithContext creates a new logger with additional context.
func (l *Logger) WithContext(ctx map[string]interface{}) interfaces.Logger {
	newLogger := l.zlog.With()
	for key, value := range ctx {
		newLogger = newLogger.Interface(key, value)
	}
	return &Logger{zlog: newLogger.Logger()}
}
