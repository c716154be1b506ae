// Package parse recovers structured calculation data from free text, for
// the path where an external agent performed the computation and replied
// in prose. Detection is best-effort by nature: a negative result means
// "this text is not a calculation", which is an expected outcome rather
// than an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultInstallments is assumed when a calculation mentions no
// installment plan of its own.
const DefaultInstallments = 3

// Detection is the best-effort reconstruction of a calculation from text.
type Detection struct {
	IsCalculation bool
	TaxType       string
	TotalAmount   decimal.Decimal
	Currency      string
	DueDate       string
	Installments  int
}

var (
	// calculationKeywords gates detection: text mentioning none of these
	// is not a calculation at all.
	calculationKeywords = []string{
		"tax", "calculate", "amount", "₦", "naira", "income", "paye", "cit", "cgt",
	}

	totalTaxRe     = regexp.MustCompile(`(?i)total\s+(?:tax|due):?\s*₦([\d,]+)`)
	amountRe       = regexp.MustCompile(`₦([\d,]+)`)
	taxTypeRe      = regexp.MustCompile(`(?i)\b(PAYE|CIT|CGT|Business|Crypto)\b`)
	dueDateRe      = regexp.MustCompile(`(?i)due.*?(\d{4}-\d{2}-\d{2})`)
	installmentsRe = regexp.MustCompile(`(?i)(\d+)\s*installments?`)
)

// DetectCalculation scans free text for a tax calculation. It prefers an
// amount labelled "Total Tax" (or "Total Due") and only falls back to the
// first currency-prefixed number, since the first amount in a multi-amount
// response is frequently a gross figure rather than the liability.
func DetectCalculation(text string) Detection {
	lower := strings.ToLower(text)

	found := false
	for _, kw := range calculationKeywords {
		if strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	if !found {
		return Detection{}
	}

	amount, ok := extractAmount(text)
	if !ok {
		return Detection{}
	}

	d := Detection{
		IsCalculation: true,
		TaxType:       "TAX",
		TotalAmount:   amount,
		Currency:      "₦",
		Installments:  DefaultInstallments,
	}

	if m := taxTypeRe.FindStringSubmatch(text); m != nil {
		d.TaxType = canonicalType(m[1])
	}
	if m := dueDateRe.FindStringSubmatch(text); m != nil {
		d.DueDate = m[1]
	}
	if m := installmentsRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			d.Installments = n
		}
	}

	return d
}

// extractAmount pulls the liability amount out of the text: a labelled
// total when present, otherwise the first ₦-prefixed number.
func extractAmount(text string) (decimal.Decimal, bool) {
	m := totalTaxRe.FindStringSubmatch(text)
	if m == nil {
		m = amountRe.FindStringSubmatch(text)
	}
	if m == nil {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// canonicalType maps form-selector aliases onto tax categories.
func canonicalType(raw string) string {
	category, err := domain.ParseTaxCategory(raw)
	if err != nil {
		return "TAX"
	}
	return string(category)
}
