package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coingains/internal/db/models/postgres/public/model"
	. "coingains/internal/db/models/postgres/public/table"
	"coingains/internal/domain"
	"coingains/internal/util"
)

// AddFills inserts raw fill records, preserving their slice order.
func AddFills(ctx context.Context, tx *sql.Tx, fills []domain.Fill) ([]model.Fill, error) {
	if len(fills) == 0 {
		return []model.Fill{}, nil
	}
	t := Fill
	stmt := t.INSERT(t.MutableColumns).
		MODELS(fillsToDb(fills)).
		RETURNING(t.AllColumns)

	result := []model.Fill{}
	err := stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to add fills to db: %w", err)
	}

	return result, nil
}

// GetFills returns every stored fill in insertion order, which is
// the order the statement rows arrived in.
func GetFills(ctx context.Context, tx *sql.Tx) ([]domain.Fill, error) {
	t := Fill
	query := t.SELECT(t.AllColumns).ORDER_BY(t.FillID.ASC())

	result := []model.Fill{}
	err := query.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get fills from db: %w", err)
	}

	out := make([]domain.Fill, len(result))
	for i, f := range result {
		out[i] = fillFromDb(f)
	}
	return out, nil
}

func fillsToDb(fills []domain.Fill) []model.Fill {
	out := make([]model.Fill, len(fills))
	for i, f := range fills {
		var orderID *string
		if f.OrderID != "" {
			orderID = util.StringPtr(f.OrderID)
		}
		out[i] = model.Fill{
			OrderID:   orderID,
			Status:    f.Status,
			Time:      f.Time,
			Amount:    f.Amount,
			Unit:      f.Unit,
			CreatedAt: time.Now().UTC(),
		}
	}
	return out
}

func fillFromDb(f model.Fill) domain.Fill {
	orderID := ""
	if f.OrderID != nil {
		orderID = *f.OrderID
	}
	return domain.Fill{
		OrderID: orderID,
		Status:  f.Status,
		Time:    f.Time,
		Amount:  f.Amount,
		Unit:    f.Unit,
	}
}
