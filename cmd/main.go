package main

import (
	"os"

	"go.uber.org/zap"

	"gomoku/internal/bootstrap"
	"gomoku/internal/delivery/console"
)

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Infow("no usable env file, using defaults", "error", err)
		cfg = bootstrap.Default()
	}

	handler := console.NewHandler(*cfg, logger, os.Stdin, os.Stdout)
	if err := handler.Run(); err != nil {
		logger.Fatalw("console session failed", "error", err)
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
