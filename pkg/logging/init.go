package logging

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

const (
	JSON = "json"
	Text = "text"
	Tint = "tint"
)

// Initialize sets up the default slog logger. All pipeline diagnostics go
// to stderr so the operator can separate them from collaborator output.
func Initialize(loggingType string, logLevelName string) error {
	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(logLevelName))
	if err != nil {
		return fmt.Errorf("could not parse log level: %v", err)
	}

	var (
		logHandlerOptions = slog.HandlerOptions{
			Level: logLevel,
		}
		logHandler slog.Handler
	)

	switch loggingType {
	case JSON:
		logHandler = slog.NewJSONHandler(os.Stderr, &logHandlerOptions)
	case Text:
		logHandler = slog.NewTextHandler(os.Stderr, &logHandlerOptions)
	case Tint:
		logHandler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: logHandlerOptions.Level,
		})
	default:
		return fmt.Errorf("unknown logging type: %s", loggingType)
	}

	slog.SetDefault(slog.New(logHandler))
	slog.Debug("logging initialized", "logLevel", logLevel)
	return nil
}
