package calculation

import (
	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
)

// CapitalGainsCalculator computes the flat-rate capital gains tax on a
// realized disposal.
type CapitalGainsCalculator struct {
	Rules config.CapitalGainsRules
}

// NewCapitalGainsCalculator creates a CGT calculator from a rules table.
func NewCapitalGainsCalculator(rules config.CapitalGainsRules) *CapitalGainsCalculator {
	return &CapitalGainsCalculator{Rules: rules}
}

// Calculate derives the realized gain (clamped at zero) and applies the
// flat CGT rate. A disposal at a loss yields zero tax.
func (cc *CapitalGainsCalculator) Calculate(in domain.CgtInput) (*domain.TaxResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	gain := in.Gain()
	tax := gain.Mul(cc.Rules.Rate)

	return &domain.TaxResult{
		TaxType:            domain.CategoryCGT,
		GrossOrBase:        in.Proceeds,
		ReliefOrDeductions: in.CostBasis.Add(in.TransactionCosts),
		Chargeable:         gain,
		TotalTax:           tax,
		Breakdown: []domain.BreakdownLine{
			{Label: "CGT", Amount: tax},
		},
	}, nil
}
