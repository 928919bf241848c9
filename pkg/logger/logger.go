package logger

import (
	"log"

	"go.uber.org/zap"
)

// New builds the process-wide structured logger.
func New() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
