package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zewarhq/zewar-api/internal/domain/valuation"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotalWeight(t *testing.T) {
	cases := []struct {
		name string
		m    valuation.Measurements
		want string
	}{
		{
			name: "net plus wastage plus polish plus stone",
			m: valuation.Measurements{
				NetWeight:    dec("10"),
				WastagePct:   dec("5"),
				PolishWeight: dec("0.2"),
				StoneWeight:  dec("0.1"),
			},
			want: "10.8",
		},
		{
			name: "only net weight",
			m:    valuation.Measurements{NetWeight: dec("12.345")},
			want: "12.345",
		},
		{
			name: "zero everything",
			m:    valuation.Measurements{},
			want: "0",
		},
		{
			name: "rounds to three decimals",
			m: valuation.Measurements{
				NetWeight:  dec("10.0005"),
				WastagePct: dec("3.33"),
			},
			want: "10.334", // 10.0005 * 1.0333 = 10.33351665
		},
		{
			name: "wastage above 100 percent is not capped",
			m: valuation.Measurements{
				NetWeight:  dec("10"),
				WastagePct: dec("150"),
			},
			want: "25",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := valuation.TotalWeight(tc.m)
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestPureGold(t *testing.T) {
	cases := []struct {
		name  string
		net   string
		ratti string
		want  string
	}{
		{"ratti zero returns net weight", "96", "0", "96"},
		{"twelve ratti deduction", "96", "12", "84"},
		{"fractional net weight", "10", "6", "9.375"},
		{"rounds to three decimals", "11.113", "7.5", "10.245"}, // 11.113 * 88.5/96 = 10.2447...
		{"zero net weight", "0", "4", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := valuation.PureGold(dec(tc.net), dec(tc.ratti))
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

// Pure gold content must shrink as the ratti deduction grows.
func TestPureGoldMonotonicInRatti(t *testing.T) {
	net := dec("25.5")
	prev := valuation.PureGold(net, decimal.Zero)
	for r := 1; r <= 96; r++ {
		cur := valuation.PureGold(net, decimal.NewFromInt(int64(r)))
		assert.True(t, cur.LessThan(prev), "ratti %d: %s should be below %s", r, cur, prev)
		prev = cur
	}
}

// The engine is stateless: identical inputs always yield identical outputs.
func TestCalculatorIdempotent(t *testing.T) {
	m := valuation.Measurements{
		NetWeight:    dec("18.77"),
		WastagePct:   dec("4.5"),
		PolishWeight: dec("0.35"),
		StoneWeight:  dec("1.02"),
		Ratti:        dec("9"),
	}
	first := valuation.TotalWeight(m)
	second := valuation.TotalWeight(m)
	assert.True(t, first.Equal(second))

	pg1 := valuation.PureGold(m.NetWeight, m.Ratti)
	pg2 := valuation.PureGold(m.NetWeight, m.Ratti)
	assert.True(t, pg1.Equal(pg2))
}

func TestSaleTotal(t *testing.T) {
	total := valuation.SaleTotal([]decimal.Decimal{dec("100.00"), dec("250.50"), dec("75.25")})
	assert.True(t, total.Equal(dec("425.75")), "got %s", total)

	assert.True(t, valuation.SaleTotal(nil).IsZero())
	assert.True(t, valuation.SaleTotal([]decimal.Decimal{dec("19.99")}).Equal(dec("19.99")))
}

func TestKaratRates(t *testing.T) {
	rates := valuation.KaratRates(dec("240000"))
	require.Len(t, rates, 24)

	// Descending from 24k down to 1k.
	assert.Equal(t, 24, rates[0].Karat)
	assert.Equal(t, 1, rates[23].Karat)
	assert.True(t, rates[0].Rate.Equal(dec("240000")))
	assert.True(t, rates[2].Rate.Equal(dec("220000"))) // 22k
	assert.True(t, rates[23].Rate.Equal(dec("10000")))

	// Two-decimal rounding on uneven bases.
	uneven := valuation.KaratRates(dec("100"))
	assert.True(t, uneven[23].Rate.Equal(dec("4.17"))) // 100/24
}
