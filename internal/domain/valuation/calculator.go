// Package valuation holds the pure arithmetic that turns raw physical
// measurements into billable quantities. No I/O, no state: the same inputs
// always produce the same outputs, so the functions serve both live preview
// and the authoritative values persisted at save time.
package valuation

import "github.com/shopspring/decimal"

// purityDivisor is the traditional 96-unit purity scale used by the trade:
// pure gold content is the net weight scaled by (96 - ratti)/96. Karat is
// recorded on the unit for classification but never enters this formula.
var purityDivisor = decimal.NewFromInt(96)

var hundred = decimal.NewFromInt(100)

// karat24 is the reference karat for the display rate table.
var karat24 = decimal.NewFromInt(24)

// Measurements are the physical inputs of one inventory unit, in grams
// except WastagePct (percentage) and Ratti (purity deduction units).
// Zero values stand in for absent inputs; rejecting negatives is the
// validation boundary's job, not the engine's.
type Measurements struct {
	NetWeight    decimal.Decimal
	WastagePct   decimal.Decimal
	PolishWeight decimal.Decimal
	StoneWeight  decimal.Decimal
	Ratti        decimal.Decimal
}

// TotalWeight returns net + net*wastage%/100 + polish + stone, rounded to
// 3 decimal places. Wastage above 100% is accepted; there is no formula-level cap.
func TotalWeight(m Measurements) decimal.Decimal {
	wastage := m.NetWeight.Mul(m.WastagePct).Div(hundred)
	return m.NetWeight.Add(wastage).Add(m.PolishWeight).Add(m.StoneWeight).Round(3)
}

// PureGold returns (net/96) * (96 - ratti), rounded to 3 decimal places.
// Monotonically decreasing in ratti; ratti = 0 returns the net weight itself.
func PureGold(netWeight, ratti decimal.Decimal) decimal.Decimal {
	return netWeight.Div(purityDivisor).Mul(purityDivisor.Sub(ratti)).Round(3)
}

// SaleTotal returns the exact sum of the line-item prices. No tax, discount,
// or rounding beyond what the inputs carry.
func SaleTotal(prices []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p)
	}
	return total
}

// KaratRate is one row of the display rate table.
type KaratRate struct {
	Karat int
	Rate  decimal.Decimal
}

// KaratRates derives the per-karat rate table from a 24k base rate by linear
// scaling (base * k / 24, rounded to 2 decimals), karats 24 down to 1.
// Reporting only; sale and valuation logic never consume these.
func KaratRates(base24k decimal.Decimal) []KaratRate {
	rates := make([]KaratRate, 0, 24)
	for k := 24; k >= 1; k-- {
		rate := base24k.Mul(decimal.NewFromInt(int64(k))).Div(karat24).Round(2)
		rates = append(rates, KaratRate{Karat: k, Rate: rate})
	}
	return rates
}
