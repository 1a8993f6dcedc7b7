package aggregation

import (
	gains_errors "coingains/internal"
	"coingains/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultBaseCurrency = "USD"

// Aggregator groups raw fills into orders. Grouping is stable:
// orders come out in the order their ids first appear in the input,
// not sorted by date.
type Aggregator struct {
	baseCurrency string
}

func New(baseCurrency string) Aggregator {
	if baseCurrency == "" {
		baseCurrency = DefaultBaseCurrency
	}
	return Aggregator{baseCurrency: baseCurrency}
}

func (a Aggregator) Orders(fills []domain.Fill) ([]domain.Order, error) {
	groups := map[string][]domain.Fill{}
	orderIDs := []string{}
	for _, f := range fills {
		if !f.Eligible() {
			continue
		}
		if _, ok := groups[f.OrderID]; !ok {
			orderIDs = append(orderIDs, f.OrderID)
		}
		groups[f.OrderID] = append(groups[f.OrderID], f)
	}

	orders := make([]domain.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		order, err := a.orderFromFills(id, groups[id])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// orderFromFills collapses one fill group. Every group must reference
// the base currency plus exactly one other asset; anything else is
// malformed input, not something to average away.
func (a Aggregator) orderFromFills(orderID string, fills []domain.Fill) (domain.Order, error) {
	baseAmount := decimal.Zero
	assetQuantity := decimal.Zero
	assetUnits := []string{}
	date := fills[0].Time

	for _, f := range fills {
		if f.Time.Before(date) {
			date = f.Time
		}
		if f.Unit == a.baseCurrency {
			baseAmount = baseAmount.Add(f.Amount)
			continue
		}
		if !containsUnit(assetUnits, f.Unit) {
			assetUnits = append(assetUnits, f.Unit)
		}
		assetQuantity = assetQuantity.Add(f.Amount)
	}

	if len(assetUnits) != 1 {
		return domain.Order{}, gains_errors.ErrMalformedOrder{OrderID: orderID, Units: assetUnits}
	}

	orderType := domain.OrderTypeSell
	if baseAmount.IsNegative() {
		orderType = domain.OrderTypeBuy
	}

	return domain.Order{
		OrderID:       orderID,
		Date:          date,
		BaseAmount:    baseAmount,
		Type:          orderType,
		Asset:         assetUnits[0],
		AssetQuantity: assetQuantity,
	}, nil
}

func containsUnit(units []string, unit string) bool {
	for _, u := range units {
		if u == unit {
			return true
		}
	}
	return false
}
