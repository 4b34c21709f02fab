package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/goodways/goodways/backend/internal/storage/pg"
	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/logger"
	shared_pg "github.com/goodways/goodways/shared/storage/pg"
)

var opts = struct {
	ConfigFolder string `long:"config_folder" env:"CONFIG_FOLDER" default:"backend/config" description:"path to folder with configs"`
}{}

func main() {
	_ = godotenv.Load()
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg := config.MustLoad(opts.ConfigFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := pg.New(ctx, cfg, shared_pg.LightweightConnectionConfig())
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer storage.Cleanup()

	seeded, err := storage.Seed(ctx, samplePosts(time.Now().UTC()))
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	if !seeded {
		log.Print("Seed skipped: posts already exist.")
		return
	}
	log.Print("Seed data created.")
}
