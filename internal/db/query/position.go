package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coingains/internal/db/models/postgres/public/model"
	. "coingains/internal/db/models/postgres/public/table"
	"coingains/internal/domain"
)

// AddPositions stores the final ledger state. Existing rows are
// cleared first: a run always replaces the whole ledger, never
// patches it.
func AddPositions(ctx context.Context, tx *sql.Tx, positions []domain.Position) ([]model.Position, error) {
	t := Position
	_, err := t.DELETE().WHERE(t.PositionID.IS_NOT_NULL()).ExecContext(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear position table: %w", err)
	}
	if len(positions) == 0 {
		return []model.Position{}, nil
	}

	stmt := t.INSERT(t.MutableColumns).
		MODELS(positionsToDb(positions)).
		RETURNING(t.AllColumns)

	result := []model.Position{}
	err = stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to add positions to db: %w", err)
	}

	return result, nil
}

// GetPositions returns the stored ledger in insertion order.
func GetPositions(ctx context.Context, tx *sql.Tx) ([]model.Position, error) {
	t := Position
	query := t.SELECT(t.AllColumns).ORDER_BY(t.PositionID.ASC())

	result := []model.Position{}
	err := query.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions from db: %w", err)
	}

	return result, nil
}

func positionsToDb(positions []domain.Position) []model.Position {
	out := make([]model.Position, len(positions))
	for i, p := range positions {
		out[i] = model.Position{
			LotID:        p.LotID,
			Asset:        p.Asset,
			PurchaseDate: p.PurchaseDate,
			Quantity:     p.Quantity,
			CostBasis:    p.CostBasis,
			SellDate:     p.SellDate,
			Proceeds:     p.Proceeds,
			Closed:       p.Closed,
			CreatedAt:    time.Now().UTC(),
			ModifiedAt:   time.Now().UTC(),
		}
	}
	return out
}
