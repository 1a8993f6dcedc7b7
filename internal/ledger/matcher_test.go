package ledger

import (
	"errors"
	"testing"
	"time"

	gains_errors "coingains/internal"
	"coingains/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var ignoreLotID = cmpopts.IgnoreFields(domain.Position{}, "LotID")

func buy(id string, date time.Time, asset string, quantity, usdSpent float64) domain.Order {
	return domain.Order{
		OrderID:       id,
		Date:          date,
		BaseAmount:    dec(-usdSpent),
		Type:          domain.OrderTypeBuy,
		Asset:         asset,
		AssetQuantity: dec(quantity),
	}
}

func sell(id string, date time.Time, asset string, quantity, usdReceived float64) domain.Order {
	return domain.Order{
		OrderID:       id,
		Date:          date,
		BaseAmount:    dec(usdReceived),
		Type:          domain.OrderTypeSell,
		Asset:         asset,
		AssetQuantity: dec(-quantity),
	}
}

func TestMatcher(t *testing.T) {
	times := []time.Time{
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("buy opens a lot", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.Apply(buy("b1", times[0], "BTC", 1.0, 1000)))

		require.Equal(t, "", cmp.Diff(
			[]domain.Position{{
				Asset:        "BTC",
				PurchaseDate: times[0],
				Quantity:     dec(1.0),
				CostBasis:    dec(1000),
				Proceeds:     dec(0),
			}},
			l.Positions(),
			ignoreLotID,
		))
	})

	t.Run("sell matching lot exactly closes it", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.Apply(buy("b1", times[0], "BTC", 1.0, 1000)))
		require.NoError(t, m.Apply(sell("s1", times[1], "BTC", 1.0, 1200)))

		positions := l.Positions()
		require.Len(t, positions, 1)
		p := positions[0]
		require.True(t, p.Closed)
		require.True(t, p.CostBasis.Equal(dec(1000)))
		require.True(t, p.Proceeds.Equal(dec(1200)))
		require.NotNil(t, p.SellDate)
		require.True(t, p.SellDate.Equal(times[1]))
	})

	t.Run("partial sell splits the lot", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.Apply(buy("b1", times[0], "BTC", 1.0, 1000)))
		require.NoError(t, m.Apply(sell("s1", times[1], "BTC", 0.4, 500)))

		positions := l.Positions()
		require.Len(t, positions, 2)

		closed := positions[0]
		require.True(t, closed.Closed)
		require.True(t, closed.Quantity.Equal(dec(0.4)), closed.Quantity.String())
		require.True(t, closed.CostBasis.Equal(dec(400)), closed.CostBasis.String())
		require.True(t, closed.Proceeds.Equal(dec(500)))

		remainder := positions[1]
		require.False(t, remainder.Closed)
		require.True(t, remainder.Quantity.Equal(dec(0.6)), remainder.Quantity.String())
		require.True(t, remainder.CostBasis.Equal(dec(600)), remainder.CostBasis.String())
		require.True(t, remainder.PurchaseDate.Equal(times[0]))

		// quantity and cost both conserved across the split
		require.True(t, closed.Quantity.Add(remainder.Quantity).Equal(dec(1.0)))
		require.True(t, closed.CostBasis.Add(remainder.CostBasis).Equal(dec(1000)))
	})

	t.Run("sell sweeps multiple lots with pro-rata proceeds", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.Apply(buy("b1", times[0], "BTC", 0.5, 500)))
		require.NoError(t, m.Apply(buy("b2", times[1], "BTC", 0.5, 600)))
		require.NoError(t, m.Apply(sell("s1", times[2], "BTC", 1.0, 1300)))

		positions := l.Positions()
		require.Len(t, positions, 2)

		first := positions[0]
		require.True(t, first.Closed)
		require.True(t, first.Proceeds.Equal(dec(650)), first.Proceeds.String())

		// the lot that completes the sale takes the order's full amount
		second := positions[1]
		require.True(t, second.Closed)
		require.True(t, second.Proceeds.Equal(dec(1300)), second.Proceeds.String())
	})

	t.Run("fifo consumes oldest lot first", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		// newest buy applied first; purchase dates still decide order
		require.NoError(t, m.Apply(buy("b2", times[1], "BTC", 1.0, 2000)))
		require.NoError(t, m.Apply(buy("b1", times[0], "BTC", 1.0, 1000)))
		require.NoError(t, m.Apply(sell("s1", times[2], "BTC", 1.0, 1500)))

		open := l.OpenPositions("BTC")
		require.Len(t, open, 1)
		require.True(t, open[0].PurchaseDate.Equal(times[1]))
		require.True(t, open[0].CostBasis.Equal(dec(2000)))
	})

	t.Run("oversell fails without mutating lots", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.Apply(buy("b1", times[0], "BTC", 0.3, 300)))
		require.NoError(t, m.Apply(buy("b2", times[1], "BTC", 0.2, 250)))

		before := l.Positions()
		err := m.Apply(sell("s1", times[2], "BTC", 1.0, 2000))

		var insufficient gains_errors.ErrInsufficientLots
		require.True(t, errors.As(err, &insufficient), err)
		require.Equal(t, "s1", insufficient.OrderID)
		require.True(t, insufficient.Requested.Equal(dec(1.0)))
		require.True(t, insufficient.Available.Equal(dec(0.5)))

		require.Equal(t, "", cmp.Diff(before, l.Positions()))
	})

	t.Run("sell of unknown asset fails", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		err := m.Apply(sell("s1", times[0], "DOGE", 1.0, 100))
		var insufficient gains_errors.ErrInsufficientLots
		require.True(t, errors.As(err, &insufficient), err)
	})

	t.Run("split then close remainder", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.ApplyAll([]domain.Order{
			buy("b1", times[0], "BTC", 1.0, 1000),
			sell("s1", times[1], "BTC", 0.4, 500),
			sell("s2", times[2], "BTC", 0.6, 900),
		}))

		require.Empty(t, l.OpenPositions("BTC"))
		require.True(t, l.TotalClosedCostBasis().Equal(dec(1000)))
		require.True(t, l.TotalClosedProceeds().Equal(dec(1400)))
	})
}

func TestStrictChronology(t *testing.T) {
	times := []time.Time{
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("rejects backdated order", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l, WithStrictChronology())
		require.NoError(t, m.Apply(buy("b1", times[1], "BTC", 1.0, 1000)))

		err := m.Apply(buy("b2", times[0], "BTC", 1.0, 1000))
		var outOfOrder gains_errors.ErrOutOfOrderInput
		require.True(t, errors.As(err, &outOfOrder), err)
		require.Equal(t, "b2", outOfOrder.OrderID)
	})

	t.Run("default matcher trusts input order", func(t *testing.T) {
		l := NewLedger()
		m := NewMatcher(l)
		require.NoError(t, m.Apply(buy("b1", times[1], "BTC", 1.0, 1000)))
		require.NoError(t, m.Apply(buy("b2", times[0], "BTC", 1.0, 1000)))
	})
}
