package logging

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process-wide logger. APP_ENV=dev switches to the console
// encoder for local runs.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
