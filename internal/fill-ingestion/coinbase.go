package fill_ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"coingains/internal/domain"

	"github.com/shopspring/decimal"
)

func determineColumnOrder(headerRow []string) (map[string]int, error) {
	requiredColumns := []string{
		"type",
		"time",
		"amount",
		"amount/balance_unit",
		"order_id",
	}

	columnIndices := map[string]int{}
	for i, h := range headerRow {
		h = strings.ToLower(h)
		h = strings.ReplaceAll(h, " ", "_")
		for _, rc := range requiredColumns {
			if h == rc {
				columnIndices[h] = i
			}
		}
	}

	for _, rc := range requiredColumns {
		if _, ok := columnIndices[rc]; !ok {
			return nil, fmt.Errorf("missing required column '%s'", rc)
		}
	}

	return columnIndices, nil
}

// ParseAccountStatement reads a Coinbase Pro account statement CSV
// into fill records. Every row comes through; deciding which rows
// participate in order grouping is the aggregator's job.
func ParseAccountStatement(csvFileName string) ([]domain.Fill, error) {
	f, err := os.Open(csvFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	csvFile := csv.NewReader(f)
	records, err := csvFile.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", csvFileName)
	}

	ordering, err := determineColumnOrder(records[0])
	if err != nil {
		return nil, err
	}

	fills := []domain.Fill{}
	for i, record := range records[1:] {
		amount, err := decimal.NewFromString(record[ordering["amount"]])
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid amount: %w", i+2, err)
		}

		fillTime, err := time.Parse(time.RFC3339, record[ordering["time"]])
		if err != nil {
			return nil, fmt.Errorf("row %d has invalid time: %w", i+2, err)
		}

		fills = append(fills, domain.Fill{
			OrderID: record[ordering["order_id"]],
			Status:  record[ordering["type"]],
			Time:    fillTime,
			Amount:  amount,
			Unit:    record[ordering["amount/balance_unit"]],
		})
	}

	return fills, nil
}

// IngestAccountStatement parses a statement file and hands the fills
// to the store in one batch.
func IngestAccountStatement(ctx context.Context, csvFileName string, store FillStore) ([]domain.Fill, error) {
	fills, err := ParseAccountStatement(csvFileName)
	if err != nil {
		return nil, err
	}
	if err := store.AddFills(ctx, fills); err != nil {
		return nil, fmt.Errorf("failed to store fills: %w", err)
	}
	return fills, nil
}
