package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// Order is an aggregated trade built from the fills sharing an
// order id. BaseAmount is signed from the account's perspective:
// negative means money spent buying, positive means money received
// selling. AssetQuantity mirrors that sign on the asset leg.
type Order struct {
	OrderID       string
	Date          time.Time
	BaseAmount    decimal.Decimal
	Type          OrderType
	Asset         string
	AssetQuantity decimal.Decimal
}
