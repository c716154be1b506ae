package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxCategory(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want TaxCategory
	}{
		{"PAYE", CategoryPAYE},
		{"paye", CategoryPAYE},
		{"CIT", CategoryCIT},
		{"business", CategoryCIT},
		{"CGT", CategoryCGT},
		{"Crypto", CategoryCGT},
		{"  cgt  ", CategoryCGT},
	} {
		got, err := ParseTaxCategory(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseTaxCategory("VAT")
	assert.Error(t, err)
}

func TestPayeInput_AnnualGross(t *testing.T) {
	in := PayeInput{MonthlySalary: decimal.NewFromInt(150000)}

	assert.True(t, in.AnnualGross().Equal(decimal.NewFromInt(1800000)))
}

func TestBusinessInput_ProfitClampsToZero(t *testing.T) {
	in := BusinessInput{Revenue: decimal.NewFromInt(100), Expenses: decimal.NewFromInt(150)}

	assert.True(t, in.Profit().IsZero())
}

func TestCgtInput_Gain(t *testing.T) {
	in := CgtInput{
		Proceeds:         decimal.NewFromInt(1000000),
		CostBasis:        decimal.NewFromInt(600000),
		TransactionCosts: decimal.NewFromInt(50000),
	}

	assert.True(t, in.Gain().Equal(decimal.NewFromInt(350000)))

	loss := CgtInput{Proceeds: decimal.NewFromInt(100), CostBasis: decimal.NewFromInt(500)}
	assert.True(t, loss.Gain().IsZero())
}

func TestCalculationRequest_Validate(t *testing.T) {
	valid := CalculationRequest{
		Category: CategoryPAYE,
		Paye:     &PayeInput{MonthlySalary: decimal.NewFromInt(100)},
	}
	assert.NoError(t, valid.Validate())

	missing := CalculationRequest{Category: CategoryCIT}
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	unknown := CalculationRequest{Category: "VAT"}
	assert.Error(t, unknown.Validate())
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "expenses", Constraint: "expenses cannot be negative"}

	assert.Equal(t, "expenses: expenses cannot be negative", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)), "Detection must see through wrapping")
	assert.False(t, IsValidation(fmt.Errorf("plain failure")))
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Reason: "bracket 1 upper bound does not meet bracket 2 lower bound"}

	assert.Contains(t, err.Error(), "invalid tax rules")
}
