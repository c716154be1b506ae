package service

import (
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
)

// ToCalculationRequest converts the loose wire payload into the tagged
// request the engine accepts. The wire shape carries annual income for
// PAYE (the form layer already multiplied the monthly salary by 12), so
// the conversion divides back down to the calculator's monthly input.
func ToCalculationRequest(req CalculateTaxRequest) (domain.CalculationRequest, error) {
	category, err := domain.ParseTaxCategory(req.TaxType)
	if err != nil {
		return domain.CalculationRequest{}, &domain.ValidationError{Field: "taxType", Constraint: err.Error()}
	}

	switch category {
	case domain.CategoryPAYE:
		annual := firstSet(req.Income, req.TaxableIncome)
		if annual == nil {
			return domain.CalculationRequest{}, &domain.ValidationError{Field: "income", Constraint: "annual income is required for PAYE"}
		}
		monthly := decimal.NewFromFloat(*annual).Div(decimal.NewFromInt(12))
		return domain.CalculationRequest{
			Category: category,
			Paye:     &domain.PayeInput{MonthlySalary: monthly},
		}, nil

	case domain.CategoryCIT:
		revenue := req.Income
		expenses := 0.0
		if req.Expenses != nil {
			expenses = *req.Expenses
		}
		if revenue == nil {
			// Some callers send only a pre-derived profit figure.
			revenue = req.BusinessProfit
			expenses = 0
		}
		if revenue == nil {
			return domain.CalculationRequest{}, &domain.ValidationError{Field: "income", Constraint: "revenue or business profit is required for CIT"}
		}
		return domain.CalculationRequest{
			Category: category,
			Business: &domain.BusinessInput{
				Revenue:  decimal.NewFromFloat(*revenue),
				Expenses: decimal.NewFromFloat(expenses),
			},
		}, nil

	default:
		gain := firstSet(req.CapitalGains, req.TaxableIncome)
		if gain == nil {
			return domain.CalculationRequest{}, &domain.ValidationError{Field: "capitalGains", Constraint: "capital gains amount is required for CGT"}
		}
		// The wire carries the net realized gain; cost basis and
		// transaction costs were already netted out by the caller.
		return domain.CalculationRequest{
			Category: category,
			Cgt:      &domain.CgtInput{Proceeds: decimal.NewFromFloat(*gain)},
		}, nil
	}
}

// FromResponse reconstructs a TaxResult-shaped value from a wire response
// produced by a remote calculation service. Gross and relief figures are
// not on the wire, so only the liability side survives the trip; that is
// enough to drive payment scheduling.
func FromResponse(taxType string, resp CalculateTaxResponse) (*domain.TaxResult, error) {
	category, err := domain.ParseTaxCategory(taxType)
	if err != nil {
		return nil, &domain.ValidationError{Field: "taxType", Constraint: err.Error()}
	}

	result := &domain.TaxResult{
		TaxType:  category,
		TotalTax: decimal.NewFromFloat(resp.TotalTax),
	}

	components := []struct {
		label string
		value *float64
	}{
		{"PAYE", resp.Breakdown.Paye},
		{"CIT", resp.Breakdown.Cit},
		{"Development Levy", resp.Breakdown.DevelopmentLevy},
		{"CGT", resp.Breakdown.Cgt},
	}
	for _, c := range components {
		if c.value != nil {
			result.Breakdown = append(result.Breakdown, domain.BreakdownLine{
				Label:  c.label,
				Amount: decimal.NewFromFloat(*c.value),
			})
		}
	}

	return result, nil
}

func firstSet(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
