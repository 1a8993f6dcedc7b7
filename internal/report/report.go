package report

import (
	"fmt"
	"io"

	"coingains/internal/domain"
	"coingains/internal/ledger"

	"github.com/Rhymond/go-money"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// GainsReport is a read-only aggregation over the final ledger state.
// Only closed lots contribute to the totals.
type GainsReport struct {
	Currency       string
	TotalCostBasis decimal.Decimal
	TotalProceeds  decimal.Decimal
	ClosedLots     []domain.Position
}

func FromLedger(l *ledger.PositionLedger, currency string) GainsReport {
	return GainsReport{
		Currency:       currency,
		TotalCostBasis: l.TotalClosedCostBasis(),
		TotalProceeds:  l.TotalClosedProceeds(),
		ClosedLots:     l.ClosedPositions(),
	}
}

func (r GainsReport) RealizedGain() decimal.Decimal {
	return r.TotalProceeds.Sub(r.TotalCostBasis)
}

// GainSummary describes the distribution of per-lot realized gains.
type GainSummary struct {
	Lots   int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

func (r GainsReport) GainSummary() (*GainSummary, error) {
	if len(r.ClosedLots) == 0 {
		return &GainSummary{}, nil
	}

	data := make(stats.Float64Data, len(r.ClosedLots))
	for i, lot := range r.ClosedLots {
		data[i] = lot.RealizedGain().InexactFloat64()
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	return &GainSummary{
		Lots:   len(r.ClosedLots),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
	}, nil
}

// FormatAmount renders a base-currency amount rounded to 2 decimal
// places, e.g. "$1,234.56" for USD.
func FormatAmount(d decimal.Decimal, currency string) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, currency).Display()
}

func (r GainsReport) Render(w io.Writer) {
	fmt.Fprintln(w, "TOTAL COST BASIS:", FormatAmount(r.TotalCostBasis, r.Currency))
	fmt.Fprintln(w, "TOTAL PROCEEDS:", FormatAmount(r.TotalProceeds, r.Currency))
	fmt.Fprintln(w, "REALIZED GAIN:", FormatAmount(r.RealizedGain(), r.Currency))
}

// RenderLots writes one line per closed lot, in ledger append order.
func (r GainsReport) RenderLots(w io.Writer) {
	for _, lot := range r.ClosedLots {
		sellDate := "-"
		if lot.SellDate != nil {
			sellDate = lot.SellDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\tqty=%s\tbasis=%s\tproceeds=%s\tgain=%s\n",
			lot.Asset,
			lot.PurchaseDate.Format("2006-01-02"),
			sellDate,
			lot.Quantity.String(),
			FormatAmount(lot.CostBasis, r.Currency),
			FormatAmount(lot.Proceeds, r.Currency),
			FormatAmount(lot.RealizedGain(), r.Currency),
		)
	}
}
