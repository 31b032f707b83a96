package salary

import (
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeTax walks the slabs in order and taxes each band at its marginal
// rate, so higher slabs only tax the portion of income above their
// threshold. Slabs must already be sorted ascending by min income; the
// function does not sort.
func ComputeTax(annualIncome decimal.Decimal, slabs []salary.TaxSlab) decimal.Decimal {
	tax := decimal.Zero
	remaining := annualIncome

	for _, slab := range slabs {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if annualIncome.LessThanOrEqual(slab.MinIncome) {
			continue
		}

		taxable := remaining
		if slab.MaxIncome != nil {
			width := slab.MaxIncome.Sub(slab.MinIncome)
			if width.LessThan(taxable) {
				taxable = width
			}
		}

		tax = tax.Add(taxable.Mul(slab.TaxRate).Div(hundred))
		remaining = remaining.Sub(taxable)
	}

	return tax
}
