package main

import (
	"context"
	"log"

	"coingains/internal/config"
	db "coingains/internal/db/query"
	fill_ingestion "coingains/internal/fill-ingestion"
	"coingains/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if cfg.FillsCSV == "" {
		log.Fatal("FILLS_CSV must point at a Coinbase Pro account statement")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	store := fill_ingestion.NewPostgresFillStore(tx)
	fills, err := fill_ingestion.IngestAccountStatement(ctx, cfg.FillsCSV, store)
	if err != nil {
		tx.Rollback()
		log.Fatal(err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}

	logger.L.Info("ingested fills", "count", len(fills), "file", cfg.FillsCSV)
}
