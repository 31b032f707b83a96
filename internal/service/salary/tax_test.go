package salary

import (
	"testing"

	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func slab(min string, max string, rate string) salary.TaxSlab {
	s := salary.TaxSlab{
		MinIncome: decimal.RequireFromString(min),
		TaxRate:   decimal.RequireFromString(rate),
	}
	if max != "" {
		m := decimal.RequireFromString(max)
		s.MaxIncome = &m
	}
	return s
}

// testSlabs is an ascending progressive schedule with an unbounded top band.
func testSlabs() []salary.TaxSlab {
	return []salary.TaxSlab{
		slab("0", "250000", "0"),
		slab("250000", "500000", "5"),
		slab("500000", "1000000", "20"),
		slab("1000000", "", "30"),
	}
}

func TestComputeTax(t *testing.T) {
	cases := []struct {
		name   string
		income string
		want   string
	}{
		{"zero income", "0", "0"},
		{"inside zero-rate band", "200000", "0"},
		{"at first threshold", "250000", "0"},
		{"partial second band", "300000", "2500"},
		{"annualized example", "324000", "3700"},
		{"at second boundary", "500000", "12500"},
		{"partial third band", "750000", "62500"},
		{"at third boundary", "1000000", "112500"},
		{"into the unbounded band", "1500000", "262500"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeTax(decimal.RequireFromString(c.income), testSlabs())
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"ComputeTax(%s) = %s, want %s", c.income, got, c.want)
		})
	}
}

func TestComputeTax_MonotonicNonDecreasing(t *testing.T) {
	slabs := testSlabs()
	prev := decimal.Zero
	for income := int64(0); income <= 2_000_000; income += 12_345 {
		tax := ComputeTax(decimal.NewFromInt(income), slabs)
		assert.True(t, tax.GreaterThanOrEqual(prev),
			"tax decreased at income %d: %s < %s", income, tax, prev)
		prev = tax
	}
}

func TestComputeTax_NeverExceedsTopRate(t *testing.T) {
	slabs := testSlabs()
	topRate := decimal.RequireFromString("30")
	for income := int64(0); income <= 3_000_000; income += 97_531 {
		d := decimal.NewFromInt(income)
		tax := ComputeTax(d, slabs)
		limit := d.Mul(topRate).Div(decimal.NewFromInt(100))
		assert.True(t, tax.LessThanOrEqual(limit),
			"tax %s exceeds income*maxRate %s at income %d", tax, limit, income)
	}
}

func TestComputeTax_SingleUnboundedSlab(t *testing.T) {
	slabs := []salary.TaxSlab{slab("0", "", "10")}
	got := ComputeTax(decimal.NewFromInt(120000), slabs)
	assert.True(t, got.Equal(decimal.NewFromInt(12000)))
}
