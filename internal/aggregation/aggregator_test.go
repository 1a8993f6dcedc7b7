package aggregation

import (
	"errors"
	"testing"
	"time"

	gains_errors "coingains/internal"
	"coingains/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func fill(orderID, status, unit string, amount float64, t time.Time) domain.Fill {
	return domain.Fill{
		OrderID: orderID,
		Status:  status,
		Time:    t,
		Amount:  dec(amount),
		Unit:    unit,
	}
}

func TestOrders(t *testing.T) {
	agg := New("USD")
	times := []time.Time{
		time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2021, 3, 1, 10, 0, 5, 0, time.UTC),
		time.Date(2021, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	t.Run("buy order from partial fills", func(t *testing.T) {
		fills := []domain.Fill{
			fill("order-1", "match", "USD", -600, times[1]),
			fill("order-1", "match", "BTC", 0.01, times[1]),
			fill("order-1", "match", "USD", -400, times[0]),
			fill("order-1", "match", "BTC", 0.007, times[0]),
		}
		orders, err := agg.Orders(fills)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		order := orders[0]
		require.Equal(t, "order-1", order.OrderID)
		require.Equal(t, domain.OrderTypeBuy, order.Type)
		require.Equal(t, "BTC", order.Asset)
		require.True(t, order.BaseAmount.Equal(dec(-1000)), order.BaseAmount.String())
		require.True(t, order.AssetQuantity.Equal(dec(0.017)), order.AssetQuantity.String())
		// earliest fill time wins, regardless of slice order
		require.True(t, order.Date.Equal(times[0]))
	})

	t.Run("sell order has positive base amount", func(t *testing.T) {
		fills := []domain.Fill{
			fill("order-2", "match", "ETH", -1.5, times[2]),
			fill("order-2", "match", "USD", 3000, times[2]),
		}
		orders, err := agg.Orders(fills)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, domain.OrderTypeSell, orders[0].Type)
		require.True(t, orders[0].AssetQuantity.Equal(dec(-1.5)))
	})

	t.Run("grouping preserves first-seen order", func(t *testing.T) {
		fills := []domain.Fill{
			fill("later", "match", "USD", 100, times[2]),
			fill("earlier", "match", "USD", -100, times[0]),
			fill("later", "match", "BTC", -0.002, times[2]),
			fill("earlier", "match", "BTC", 0.002, times[0]),
		}
		orders, err := agg.Orders(fills)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		require.Equal(t, "later", orders[0].OrderID)
		require.Equal(t, "earlier", orders[1].OrderID)
	})

	t.Run("ignores unmatched rows and empty order ids", func(t *testing.T) {
		fills := []domain.Fill{
			fill("", "match", "USD", 500, times[0]),
			fill("order-3", "deposit", "USD", 500, times[0]),
			fill("order-3", "match", "USD", -250, times[0]),
			fill("order-3", "match", "LTC", 2, times[0]),
		}
		orders, err := agg.Orders(fills)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.True(t, orders[0].BaseAmount.Equal(dec(-250)))
		require.True(t, orders[0].AssetQuantity.Equal(dec(2)))
	})

	t.Run("multiple assets in one group is malformed", func(t *testing.T) {
		fills := []domain.Fill{
			fill("order-4", "match", "USD", -100, times[0]),
			fill("order-4", "match", "BTC", 0.001, times[0]),
			fill("order-4", "match", "ETH", 0.05, times[0]),
		}
		_, err := agg.Orders(fills)
		var malformed gains_errors.ErrMalformedOrder
		require.True(t, errors.As(err, &malformed), err)
		require.Equal(t, "order-4", malformed.OrderID)
		require.Equal(t, []string{"BTC", "ETH"}, malformed.Units)
	})

	t.Run("base-currency-only group is malformed", func(t *testing.T) {
		fills := []domain.Fill{
			fill("order-5", "match", "USD", -100, times[0]),
			fill("order-5", "match", "USD", 100, times[1]),
		}
		_, err := agg.Orders(fills)
		var malformed gains_errors.ErrMalformedOrder
		require.True(t, errors.As(err, &malformed), err)
		require.Empty(t, malformed.Units)
	})
}
