package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"PodcastDaily/internal/app"
	"PodcastDaily/internal/config"
	"PodcastDaily/internal/logging"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	application := app.New(cfg, logger)
	r := application.Router()

	logger.Info("listening", "addr", cfg.Server.Addr, "allow_origins", cfg.Server.AllowOrigins)
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
