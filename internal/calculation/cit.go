package calculation

import (
	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
)

// BusinessCalculator computes corporate income tax and the development
// levy as flat rates over business profit.
type BusinessCalculator struct {
	Rules config.BusinessRules
}

// NewBusinessCalculator creates a CIT calculator from a rules table.
func NewBusinessCalculator(rules config.BusinessRules) *BusinessCalculator {
	return &BusinessCalculator{Rules: rules}
}

// Calculate derives profit (clamped at zero) and applies the CIT and
// development levy rates. A loss-making year is not an error: profit
// clamps to zero, the tax is zero, and the result carries a warning.
func (bc *BusinessCalculator) Calculate(in domain.BusinessInput) (*domain.TaxResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if in.Expenses.GreaterThan(in.Revenue) {
		warnings = append(warnings, "expenses exceed revenue; profit clamped to zero")
	}

	profit := in.Profit()
	cit := profit.Mul(bc.Rules.CITRate)
	levy := profit.Mul(bc.Rules.DevelopmentLevyRate)

	return &domain.TaxResult{
		TaxType:            domain.CategoryCIT,
		GrossOrBase:        in.Revenue,
		ReliefOrDeductions: in.Expenses,
		Chargeable:         profit,
		TotalTax:           cit.Add(levy),
		Breakdown: []domain.BreakdownLine{
			{Label: "CIT", Amount: cit},
			{Label: "Development Levy", Amount: levy},
		},
		Warnings: warnings,
	}, nil
}
