package main

import (
	"context"
	"log"
	"os"

	"planflow/internal/cli"
	"planflow/internal/config"
	"planflow/internal/repository"
	"planflow/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	records := repository.NewRecordRepository(db)
	planner := service.Load(context.Background(), records, service.SystemClock{})

	root := cli.New(planner, cfg)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
