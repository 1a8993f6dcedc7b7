package gains_errors

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ErrMalformedOrder struct {
	OrderID string
	Units   []string
}

func (e ErrMalformedOrder) Error() string {
	if len(e.Units) == 0 {
		return fmt.Sprintf("order %s has no non-base currency leg", e.OrderID)
	}
	return fmt.Sprintf("order %s references multiple non-base currencies: %s", e.OrderID, strings.Join(e.Units, ", "))
}

type ErrInsufficientLots struct {
	OrderID   string
	Asset     string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientLots) Error() string {
	return fmt.Sprintf(
		"sell order %s requests %s %s but only %s is held in open lots",
		e.OrderID, e.Requested.String(), e.Asset, e.Available.String(),
	)
}

type ErrOutOfOrderInput struct {
	OrderID   string
	OrderDate time.Time
	PrevDate  time.Time
}

func (e ErrOutOfOrderInput) Error() string {
	return fmt.Sprintf(
		"order %s dated %s arrived after an order dated %s",
		e.OrderID, e.OrderDate.Format(time.RFC3339), e.PrevDate.Format(time.RFC3339),
	)
}
