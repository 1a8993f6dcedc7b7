package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"coingains/internal/aggregation"
	"coingains/internal/config"
	db "coingains/internal/db/query"
	"coingains/internal/domain"
	fill_ingestion "coingains/internal/fill-ingestion"
	"coingains/internal/ledger"
	"coingains/internal/logger"
	"coingains/internal/report"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	ctx := context.Background()

	var fills []domain.Fill
	var tx *sql.Tx
	var err error

	// a CSV path takes precedence; otherwise fills come from the db
	if cfg.FillsCSV != "" {
		fills, err = fill_ingestion.ParseAccountStatement(cfg.FillsCSV)
		if err != nil {
			log.Fatal(err)
		}
	} else if cfg.DatabaseURL != "" {
		dbConn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		tx, err = dbConn.Begin()
		if err != nil {
			log.Fatal(err)
		}
		fills, err = db.GetFills(ctx, tx)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Fatal("set FILLS_CSV or DATABASE_URL to supply fill records")
	}

	orders, err := aggregation.New(cfg.BaseCurrency).Orders(fills)
	if err != nil {
		log.Fatal(err)
	}
	logger.L.Info("aggregated fills into orders", "fills", len(fills), "orders", len(orders))

	positionLedger := ledger.NewLedger()
	opts := []ledger.MatcherOpt{}
	if cfg.StrictOrderCheck {
		opts = append(opts, ledger.WithStrictChronology())
	}
	matcher := ledger.NewMatcher(positionLedger, opts...)
	if err := matcher.ApplyAll(orders); err != nil {
		log.Fatal(err)
	}

	// when fills came from the db, store the resulting ledger there too
	if tx != nil {
		if _, err := db.AddPositions(ctx, tx, positionLedger.Positions()); err != nil {
			tx.Rollback()
			log.Fatal(err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatal(err)
		}
	}

	gainsReport := report.FromLedger(positionLedger, cfg.BaseCurrency)
	gainsReport.Render(os.Stdout)

	summary, err := gainsReport.GainSummary()
	if err != nil {
		log.Fatal(err)
	}
	logger.L.Info("closed lot gains",
		"lots", summary.Lots,
		"mean", summary.Mean,
		"median", summary.Median,
		"min", summary.Min,
		"max", summary.Max,
	)
}
