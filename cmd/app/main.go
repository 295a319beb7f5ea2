package main

import (
	"StimulusAssistant/internal/config"
	"StimulusAssistant/pkg/log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// .env has to be loaded before the logger reads LOG_LEVEL and APP_ENV.
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", envErr)
	}

	env, err := config.LoadEnv(config.NewValidator())
	if err != nil {
		logger.Fatal(err)
	}

	fiberApp := config.NewFiber(logger, env)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithEnv(env),
		config.WithMiddleware(),
		config.WithMatcher(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.WithField("port", env.Port).Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(shutdownTimeout); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
