package domain

import "github.com/shopspring/decimal"

// BreakdownLine is one labelled component of a tax liability.
type BreakdownLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// TaxResult is the immutable outcome of a single calculation. The caller
// owns it after return; nothing in the engine retains or mutates it.
type TaxResult struct {
	TaxType            TaxCategory     `json:"taxType"`
	GrossOrBase        decimal.Decimal `json:"grossOrBase"`
	ReliefOrDeductions decimal.Decimal `json:"reliefOrDeductions"`
	Chargeable         decimal.Decimal `json:"chargeable"`
	TotalTax           decimal.Decimal `json:"totalTax"`
	Breakdown          []BreakdownLine `json:"breakdown"`

	// Warnings carries non-fatal validation findings, e.g. expenses
	// exceeding revenue on a CIT calculation.
	Warnings []string `json:"warnings,omitempty"`
}
