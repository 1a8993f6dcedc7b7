package ledger

import (
	"sort"

	"coingains/internal/domain"

	"github.com/shopspring/decimal"
)

// PositionLedger owns every open and closed lot produced during a
// run. All mutation goes through Append and replace; readers only
// ever see copies.
type PositionLedger struct {
	positions []domain.Position
}

func NewLedger() *PositionLedger {
	return &PositionLedger{positions: []domain.Position{}}
}

func (l *PositionLedger) Append(p domain.Position) {
	l.positions = append(l.positions, p)
}

// openLot pairs a position snapshot with its index in the ledger, so
// the matcher can build an updated copy and store it back by index.
type openLot struct {
	ix  int
	pos domain.Position
}

// openLots returns the open lots for the given asset, oldest purchase
// first. The asset always comes from the caller's argument; nothing
// here depends on which order is currently being processed.
func (l *PositionLedger) openLots(asset string) []openLot {
	out := []openLot{}
	for ix, p := range l.positions {
		if p.Asset == asset && !p.Closed {
			out = append(out, openLot{ix: ix, pos: p})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].pos.PurchaseDate.Before(out[j].pos.PurchaseDate)
	})
	return out
}

func (l *PositionLedger) replace(ix int, p domain.Position) {
	l.positions[ix] = p
}

// Positions returns a copy of every lot, in append order.
func (l *PositionLedger) Positions() []domain.Position {
	out := make([]domain.Position, len(l.positions))
	for i, p := range l.positions {
		out[i] = p.DeepCopy()
	}
	return out
}

// OpenPositions returns copies of the open lots for an asset, oldest
// purchase first.
func (l *PositionLedger) OpenPositions(asset string) []domain.Position {
	lots := l.openLots(asset)
	out := make([]domain.Position, len(lots))
	for i, lot := range lots {
		out[i] = lot.pos.DeepCopy()
	}
	return out
}

// ClosedPositions returns copies of the closed lots, in append order.
func (l *PositionLedger) ClosedPositions() []domain.Position {
	out := []domain.Position{}
	for _, p := range l.positions {
		if p.Closed {
			out = append(out, p.DeepCopy())
		}
	}
	return out
}

func (l *PositionLedger) TotalClosedCostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.positions {
		if p.Closed {
			total = total.Add(p.CostBasis)
		}
	}
	return total
}

func (l *PositionLedger) TotalClosedProceeds() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.positions {
		if p.Closed {
			total = total.Add(p.Proceeds)
		}
	}
	return total
}
