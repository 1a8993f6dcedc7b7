package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is a tax lot: a quantity of an asset acquired at a point
// in time at a known cost. A lot is born open by a buy order and is
// closed, possibly after being split, by sell orders. Once Closed is
// set the record is terminal.
type Position struct {
	LotID        uuid.UUID
	Asset        string
	PurchaseDate time.Time
	Quantity     decimal.Decimal
	CostBasis    decimal.Decimal
	SellDate     *time.Time
	Proceeds     decimal.Decimal
	Closed       bool
}

// RealizedGain is only meaningful once the lot is closed.
func (p Position) RealizedGain() decimal.Decimal {
	return p.Proceeds.Sub(p.CostBasis)
}

func (p Position) DeepCopy() Position {
	out := p
	if p.SellDate != nil {
		d := *p.SellDate
		out.SellDate = &d
	}
	return out
}
