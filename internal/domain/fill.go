package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FillStatusMatch is the status of an executed trade row in a
// Coinbase Pro account statement. Rows with any other status
// (deposit, withdrawal, fee) never participate in order grouping.
const FillStatusMatch = "match"

// Fill is a single raw trade record. One order usually produces
// several fills: one or more on the base-currency leg and one or
// more on the asset leg.
type Fill struct {
	OrderID string
	Status  string
	Time    time.Time
	Amount  decimal.Decimal
	Unit    string
}

func (f Fill) Eligible() bool {
	return f.OrderID != "" && f.Status == FillStatusMatch
}
