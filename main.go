package main

import (
	"context"
	"net/http"

	"biblioteca-backend/config"
	"biblioteca-backend/logger"
	"biblioteca-backend/router"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables; absence of a .env file is fine in
	// production, where the environment comes from the process.
	dotenvErr := godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	if dotenvErr != nil {
		log.Debug().Msg("no .env file found")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	r := router.New(db, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
