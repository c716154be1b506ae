package calculation

import (
	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
)

// PayeCalculator computes personal income tax over the progressive
// bracket table for the active tax year.
type PayeCalculator struct {
	Rules config.PayeRules
}

// NewPayeCalculator creates a PAYE calculator from a rules table.
func NewPayeCalculator(rules config.PayeRules) *PayeCalculator {
	return &PayeCalculator{Rules: rules}
}

// Calculate annualizes the monthly salary, subtracts the personal relief
// and applies the bracket table to the remainder. Pure and deterministic:
// identical input against the same rules yields an identical result.
func (pc *PayeCalculator) Calculate(in domain.PayeInput) (*domain.TaxResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	annualGross := in.AnnualGross()
	chargeable := annualGross.Sub(pc.Rules.PersonalRelief)
	if chargeable.IsNegative() {
		chargeable = decimal.Zero
	}

	total, lines := ApplyBrackets(pc.Rules.Brackets, chargeable)

	return &domain.TaxResult{
		TaxType:            domain.CategoryPAYE,
		GrossOrBase:        annualGross,
		ReliefOrDeductions: pc.Rules.PersonalRelief,
		Chargeable:         chargeable,
		TotalTax:           total,
		Breakdown:          lines,
	}, nil
}
