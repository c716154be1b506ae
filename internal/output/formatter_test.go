package output

import (
	"strings"
	"testing"
	"time"

	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.TaxResult {
	return &domain.TaxResult{
		TaxType:            domain.CategoryPAYE,
		GrossOrBase:        decimal.NewFromInt(1800000),
		ReliefOrDeductions: decimal.NewFromInt(400000),
		Chargeable:         decimal.NewFromInt(1400000),
		TotalTax:           decimal.NewFromInt(110000),
		Breakdown: []domain.BreakdownLine{
			{Label: "₦0 - ₦300,000 @ 0%", Amount: decimal.Zero},
			{Label: "₦300,000 - ₦600,000 @ 5%", Amount: decimal.NewFromInt(15000)},
		},
	}
}

func TestFormatTaxResult_SectionOrder(t *testing.T) {
	text := FormatTaxResult(sampleResult())

	// Fixed section order: type, gross, relief, chargeable, total, breakdown.
	positions := []string{
		"Tax Type:           PAYE",
		"Gross Amount:       ₦1,800,000",
		"Relief/Deductions:  ₦400,000",
		"Chargeable Amount:  ₦1,400,000",
		"Total Tax:          ₦110,000",
		"Breakdown:",
	}
	last := -1
	for _, want := range positions {
		idx := strings.Index(text, want)
		require.GreaterOrEqual(t, idx, 0, "Output missing section %q:\n%s", want, text)
		assert.Greater(t, idx, last, "Section %q out of order", want)
		last = idx
	}
}

func TestFormatTaxResult_Stable(t *testing.T) {
	result := sampleResult()

	first := FormatTaxResult(result)
	second := FormatTaxResult(result)

	assert.Equal(t, first, second, "Re-formatting the same result must be byte-identical")
}

func TestFormatTaxResult_Warnings(t *testing.T) {
	result := sampleResult()
	result.Warnings = []string{"expenses exceed revenue; profit clamped to zero"}

	text := FormatTaxResult(result)

	assert.Contains(t, text, "Note: expenses exceed revenue")
}

func TestFormatPaymentSchedule(t *testing.T) {
	schedule := &domain.PaymentSchedule{
		TotalAmount:      decimal.NewFromInt(1525000),
		DueDate:          time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 4,
		InstallmentAmounts: []decimal.Decimal{
			decimal.NewFromInt(381250), decimal.NewFromInt(381250),
			decimal.NewFromInt(381250), decimal.NewFromInt(381250),
		},
	}

	text := FormatPaymentSchedule(schedule)

	assert.Contains(t, text, "Total Due:    ₦1,525,000")
	assert.Contains(t, text, "due 2026-03-31")
	assert.Contains(t, text, "4 installments")
	assert.Contains(t, text, "1. ₦381,250")
}

func TestFormatPaymentSchedule_SinglePaymentHasNoList(t *testing.T) {
	schedule := &domain.PaymentSchedule{
		TotalAmount:        decimal.NewFromInt(35000),
		DueDate:            time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		InstallmentCount:   1,
		InstallmentAmounts: []decimal.Decimal{decimal.NewFromInt(35000)},
	}

	text := FormatPaymentSchedule(schedule)

	assert.Contains(t, text, "1 installments")
	assert.NotContains(t, text, "1. ₦", "A single payment needs no itemized list")
}

func TestSummary(t *testing.T) {
	s := Summary(sampleResult())

	assert.Equal(t, "PAYE: total tax ₦110,000 on chargeable income of ₦1,400,000", s)
}
