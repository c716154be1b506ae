package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxCategory identifies which calculator handles a request.
type TaxCategory string

const (
	CategoryPAYE TaxCategory = "PAYE"
	CategoryCIT  TaxCategory = "CIT"
	CategoryCGT  TaxCategory = "CGT"
)

// ParseTaxCategory normalizes a user- or wire-supplied tax type string.
// The aliases "business" and "crypto" come from the form selector names.
func ParseTaxCategory(s string) (TaxCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PAYE":
		return CategoryPAYE, nil
	case "CIT", "BUSINESS":
		return CategoryCIT, nil
	case "CGT", "CRYPTO":
		return CategoryCGT, nil
	default:
		return "", fmt.Errorf("unknown tax type %q", s)
	}
}

// PayeInput holds the inputs for a personal income tax calculation.
type PayeInput struct {
	MonthlySalary decimal.Decimal `yaml:"monthly_salary" json:"monthlySalary"`
}

// Validate checks PAYE inputs before any computation happens.
func (p PayeInput) Validate() error {
	if p.MonthlySalary.IsNegative() {
		return &ValidationError{Field: "monthlySalary", Constraint: "monthly salary cannot be negative"}
	}
	return nil
}

// AnnualGross converts the monthly salary to an annual gross figure.
func (p PayeInput) AnnualGross() decimal.Decimal {
	return p.MonthlySalary.Mul(decimal.NewFromInt(12))
}

// BusinessInput holds the inputs for a corporate income tax calculation.
type BusinessInput struct {
	Revenue  decimal.Decimal `yaml:"revenue" json:"revenue"`
	Expenses decimal.Decimal `yaml:"expenses" json:"expenses"`
}

// Validate checks CIT inputs. Expenses exceeding revenue is deliberately
// not rejected here; the calculator clamps profit to zero and attaches a
// warning instead, since a tax estimator should tolerate a loss-making year.
func (b BusinessInput) Validate() error {
	if b.Revenue.IsNegative() {
		return &ValidationError{Field: "revenue", Constraint: "revenue cannot be negative"}
	}
	if b.Expenses.IsNegative() {
		return &ValidationError{Field: "expenses", Constraint: "expenses cannot be negative"}
	}
	return nil
}

// Profit returns revenue less expenses, clamped at zero.
func (b BusinessInput) Profit() decimal.Decimal {
	profit := b.Revenue.Sub(b.Expenses)
	if profit.IsNegative() {
		return decimal.Zero
	}
	return profit
}

// CgtInput holds the inputs for a capital gains tax calculation.
type CgtInput struct {
	Proceeds         decimal.Decimal `yaml:"proceeds" json:"proceeds"`
	CostBasis        decimal.Decimal `yaml:"cost_basis" json:"costBasis"`
	TransactionCosts decimal.Decimal `yaml:"transaction_costs" json:"transactionCosts"`
}

// Validate checks CGT inputs before any computation happens.
func (c CgtInput) Validate() error {
	if c.Proceeds.IsNegative() {
		return &ValidationError{Field: "proceeds", Constraint: "proceeds cannot be negative"}
	}
	if c.CostBasis.IsNegative() {
		return &ValidationError{Field: "costBasis", Constraint: "cost basis cannot be negative"}
	}
	if c.TransactionCosts.IsNegative() {
		return &ValidationError{Field: "transactionCosts", Constraint: "transaction costs cannot be negative"}
	}
	return nil
}

// Gain returns proceeds less cost basis and transaction costs, clamped at zero.
func (c CgtInput) Gain() decimal.Decimal {
	gain := c.Proceeds.Sub(c.CostBasis).Sub(c.TransactionCosts)
	if gain.IsNegative() {
		return decimal.Zero
	}
	return gain
}

// CalculationRequest is a tagged union of the category-specific inputs.
// Exactly one of the input pointers must be set, matching Category.
type CalculationRequest struct {
	Category TaxCategory    `yaml:"category" json:"category"`
	Paye     *PayeInput     `yaml:"paye,omitempty" json:"paye,omitempty"`
	Business *BusinessInput `yaml:"business,omitempty" json:"business,omitempty"`
	Cgt      *CgtInput      `yaml:"cgt,omitempty" json:"cgt,omitempty"`
}

// Validate checks that the request carries the input its category requires.
func (r CalculationRequest) Validate() error {
	switch r.Category {
	case CategoryPAYE:
		if r.Paye == nil {
			return &ValidationError{Field: "paye", Constraint: "PAYE request requires salary inputs"}
		}
		return r.Paye.Validate()
	case CategoryCIT:
		if r.Business == nil {
			return &ValidationError{Field: "business", Constraint: "CIT request requires revenue and expense inputs"}
		}
		return r.Business.Validate()
	case CategoryCGT:
		if r.Cgt == nil {
			return &ValidationError{Field: "cgt", Constraint: "CGT request requires disposal inputs"}
		}
		return r.Cgt.Validate()
	default:
		return &ValidationError{Field: "category", Constraint: fmt.Sprintf("unknown tax category %q", string(r.Category))}
	}
}
