package ledger

import (
	"fmt"

	gains_errors "coingains/internal"
	"coingains/internal/domain"
	"coingains/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Matcher applies orders against the ledger one at a time, in input
// order, matching sells against the oldest open lots first.
//
// could make this dynamic for LIFO systems
type Matcher struct {
	ledger *PositionLedger

	strictChronology bool
	lastOrder        *domain.Order
}

type MatcherOpt func(*Matcher)

// WithStrictChronology makes the matcher reject any order dated
// before its predecessor instead of trusting the input sequence.
func WithStrictChronology() MatcherOpt {
	return func(m *Matcher) {
		m.strictChronology = true
	}
}

func NewMatcher(l *PositionLedger, opts ...MatcherOpt) *Matcher {
	m := &Matcher{ledger: l}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matcher) Apply(order domain.Order) error {
	if m.strictChronology && m.lastOrder != nil && order.Date.Before(m.lastOrder.Date) {
		return gains_errors.ErrOutOfOrderInput{
			OrderID:   order.OrderID,
			OrderDate: order.Date,
			PrevDate:  m.lastOrder.Date,
		}
	}
	m.lastOrder = &order

	switch order.Type {
	case domain.OrderTypeBuy:
		m.applyBuy(order)
		return nil
	case domain.OrderTypeSell:
		return m.applySell(order)
	}
	return fmt.Errorf("order %s has unknown type %q", order.OrderID, order.Type)
}

func (m *Matcher) ApplyAll(orders []domain.Order) error {
	for _, order := range orders {
		if err := m.Apply(order); err != nil {
			return err
		}
	}
	return nil
}

// applyBuy opens a fresh lot. Spend is negative on the order, so the
// lot's cost basis is the negated base amount.
func (m *Matcher) applyBuy(order domain.Order) {
	m.ledger.Append(domain.Position{
		LotID:        uuid.New(),
		Asset:        order.Asset,
		PurchaseDate: order.Date,
		Quantity:     order.AssetQuantity,
		CostBasis:    order.BaseAmount.Neg(),
		Proceeds:     decimal.Zero,
	})
}

// applySell walks the open lots for the order's asset, oldest first.
// A lot matching the outstanding quantity exactly closes whole;
// a larger lot is split into a closed portion and an open remainder;
// a smaller lot closes whole with a pro-rata share of the proceeds.
//
// Note the allocation asymmetry: lots consumed mid-sweep get a
// pro-rata share of the order's proceeds, while the terminal lot
// (exact or split) is assigned the order's entire base amount.
func (m *Matcher) applySell(order domain.Order) error {
	quantityToSell := order.AssetQuantity.Neg()
	lots := m.ledger.openLots(order.Asset)

	available := decimal.Zero
	for _, lot := range lots {
		available = available.Add(lot.pos.Quantity)
	}
	if available.LessThan(quantityToSell) {
		return gains_errors.ErrInsufficientLots{
			OrderID:   order.OrderID,
			Asset:     order.Asset,
			Requested: quantityToSell,
			Available: available,
		}
	}

	remainingToSell := quantityToSell
	for _, lot := range lots {
		switch lot.pos.Quantity.Cmp(remainingToSell) {
		case 0:
			closed := lot.pos
			closed.Closed = true
			closed.SellDate = util.TimePtr(order.Date)
			closed.Proceeds = order.BaseAmount
			m.ledger.replace(lot.ix, closed)
			return nil

		case 1:
			soldCost := lot.pos.CostBasis.Mul(remainingToSell).Div(lot.pos.Quantity)

			closed := lot.pos
			closed.Quantity = remainingToSell
			closed.CostBasis = soldCost
			closed.Proceeds = order.BaseAmount
			closed.Closed = true
			closed.SellDate = util.TimePtr(order.Date)
			m.ledger.replace(lot.ix, closed)

			m.ledger.Append(domain.Position{
				LotID:        uuid.New(),
				Asset:        lot.pos.Asset,
				PurchaseDate: lot.pos.PurchaseDate,
				Quantity:     lot.pos.Quantity.Sub(remainingToSell),
				CostBasis:    lot.pos.CostBasis.Sub(soldCost),
				Proceeds:     decimal.Zero,
			})
			return nil

		default:
			closed := lot.pos
			closed.Closed = true
			closed.SellDate = util.TimePtr(order.Date)
			closed.Proceeds = order.BaseAmount.Mul(lot.pos.Quantity).Div(quantityToSell)
			m.ledger.replace(lot.ix, closed)

			remainingToSell = remainingToSell.Sub(lot.pos.Quantity)
			if remainingToSell.IsZero() {
				return nil
			}
		}
	}

	// unreachable: the availability check above guarantees the loop
	// terminates through one of the closing branches
	return gains_errors.ErrInsufficientLots{
		OrderID:   order.OrderID,
		Asset:     order.Asset,
		Requested: quantityToSell,
		Available: available,
	}
}
