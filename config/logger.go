package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// InitLogger installs the process-wide zap logger. Handlers pick it up with
// zap.L(); raw database and SMTP errors go here, never to clients.
func InitLogger() {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	zap.ReplaceGlobals(logger)
}
