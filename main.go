package main

import (
	"errors"
	"log"
	"net/http"
	"whale/src/api"
	"whale/src/config"
	"whale/src/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// A .env file is optional; the hosting environment may set everything.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel)

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorln("An error raised while setting up server", err)
			errC <- err
		}
	}()
	return errC, nil
}
