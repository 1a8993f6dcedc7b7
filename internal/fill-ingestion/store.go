package fill_ingestion

import (
	"context"
	"database/sql"

	db "coingains/internal/db/query"
	"coingains/internal/domain"
)

// FillStore persists parsed fills.
type FillStore interface {
	AddFills(ctx context.Context, fills []domain.Fill) error
}

type postgresFillStore struct {
	tx *sql.Tx
}

func NewPostgresFillStore(tx *sql.Tx) FillStore {
	return postgresFillStore{tx: tx}
}

func (s postgresFillStore) AddFills(ctx context.Context, fills []domain.Fill) error {
	_, err := db.AddFills(ctx, s.tx, fills)
	return err
}
