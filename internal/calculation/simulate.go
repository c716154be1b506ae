package calculation

import (
	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulationInput describes a compound-growth investment projection.
type SimulationInput struct {
	InitialInvestment decimal.Decimal
	AnnualReturn      decimal.Decimal
	Years             int
}

// SimulationYear is one projected year: the portfolio value after growth
// and the capital gains tax due on that year's gain.
type SimulationYear struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
	Tax   decimal.Decimal `json:"tax"`
}

// Simulate projects an investment forward year by year, charging the flat
// CGT rate on each year's realized gain. Losses accrue no tax.
func Simulate(rules config.CapitalGainsRules, in SimulationInput) ([]SimulationYear, decimal.Decimal, error) {
	if in.InitialInvestment.IsNegative() {
		return nil, decimal.Zero, &domain.ValidationError{Field: "initialInvestment", Constraint: "initial investment cannot be negative"}
	}
	if in.Years < 1 {
		return nil, decimal.Zero, &domain.ValidationError{Field: "years", Constraint: "years must be at least 1"}
	}

	value := in.InitialInvestment
	totalTax := decimal.Zero
	years := make([]SimulationYear, 0, in.Years)

	for year := 1; year <= in.Years; year++ {
		gain := value.Mul(in.AnnualReturn)
		value = value.Add(gain)

		tax := decimal.Zero
		if gain.IsPositive() {
			tax = gain.Mul(rules.Rate)
		}
		totalTax = totalTax.Add(tax)

		years = append(years, SimulationYear{Year: year, Value: value, Tax: tax})
	}

	return years, totalTax, nil
}
