package output

import (
	"fmt"
	"strings"

	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/matthewtax/ngtax/pkg/ngn"
)

// FormatTaxResult renders a calculation result for a chat transcript or
// console. The section order is fixed (tax type, gross, relief,
// chargeable, total, breakdown) and every amount is currency-prefixed and
// thousands-separated, so re-formatting the same result is byte-identical.
func FormatTaxResult(r *domain.TaxResult) string {
	var b strings.Builder

	b.WriteString("Tax Calculation Result\n")
	b.WriteString("======================\n")
	fmt.Fprintf(&b, "Tax Type:           %s\n", r.TaxType)
	fmt.Fprintf(&b, "Gross Amount:       %s\n", ngn.Format(r.GrossOrBase))
	fmt.Fprintf(&b, "Relief/Deductions:  %s\n", ngn.Format(r.ReliefOrDeductions))
	fmt.Fprintf(&b, "Chargeable Amount:  %s\n", ngn.Format(r.Chargeable))
	fmt.Fprintf(&b, "Total Tax:          %s\n", ngn.Format(r.TotalTax))

	if len(r.Breakdown) > 0 {
		b.WriteString("\nBreakdown:\n")
		for _, line := range r.Breakdown {
			fmt.Fprintf(&b, "  %s: %s\n", line.Label, ngn.Format(line.Amount))
		}
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "\nNote: %s\n", w)
	}

	return b.String()
}

// FormatPaymentSchedule renders a payment schedule. The due date is ISO
// formatted after the word "due" and the installment count precedes the
// word "installments" so downstream free-text detection can recover both.
func FormatPaymentSchedule(s *domain.PaymentSchedule) string {
	var b strings.Builder

	b.WriteString("Payment Schedule\n")
	b.WriteString("================\n")
	fmt.Fprintf(&b, "Total Due:    %s\n", ngn.Format(s.TotalAmount))
	fmt.Fprintf(&b, "Due Date:     due %s\n", s.DueDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Plan:         %d installments\n", s.InstallmentCount)

	if s.InstallmentCount > 1 {
		b.WriteString("\n")
		for i, amount := range s.InstallmentAmounts {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, ngn.Format(amount))
		}
	}

	return b.String()
}

// Summary renders a one-line description of a result for API responses,
// e.g. "PAYE: total tax ₦110,000 on chargeable income of ₦1,400,000".
func Summary(r *domain.TaxResult) string {
	return fmt.Sprintf("%s: total tax %s on chargeable income of %s",
		r.TaxType, ngn.Format(r.TotalTax), ngn.Format(r.Chargeable))
}
