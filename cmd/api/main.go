package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"baanthai-construction-api/config"
	"baanthai-construction-api/internal/api/routes"
	"baanthai-construction-api/internal/database"
	"baanthai-construction-api/internal/repository"
	"baanthai-construction-api/internal/s3"
	"baanthai-construction-api/internal/storage"
)

func main() {
	// 1. Load .env (optional) and configuration
	_ = godotenv.Load()
	log := newLogger(os.Getenv("APP_ENV"))

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	// 2. Connect to MongoDB
	db, err := storage.Connect(cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	// 3. Initialize the S3 uploader
	uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize S3 uploader")
	}

	// 4. Seed the singleton content documents
	if err := database.SeedSiteContent(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed site content")
	}

	// 5. Wire repositories into the router
	router := routes.SetupRouter(cfg, routes.Deps{
		Houses:     repository.NewMongoHouseRepository(db),
		Gallery:    repository.NewMongoGalleryRepository(db),
		Content:    repository.NewMongoContentRepository(db),
		Quotations: repository.NewMongoQuotationRepository(db),
		Blob:       uploader,
		Log:        log,
	})

	// 6. Start server
	log.Info().Str("port", cfg.Server.Port).Msg("starting API server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}

func newLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return l
}
