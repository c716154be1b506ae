package calculation

import (
	"time"

	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
)

// ScheduleGenerator derives payment schedules from calculated tax
// liabilities. Now is injectable so tests get deterministic due dates.
type ScheduleGenerator struct {
	Policy config.SchedulePolicy
	Now    func() time.Time
}

// NewScheduleGenerator creates a generator over a schedule policy.
func NewScheduleGenerator(policy config.SchedulePolicy) *ScheduleGenerator {
	return &ScheduleGenerator{Policy: policy, Now: time.Now}
}

// ScheduleOptions carries caller overrides for a generated schedule.
type ScheduleOptions struct {
	// DueDate overrides the policy default of DueInDays from now.
	DueDate *time.Time
	// InstallmentCount overrides the category default when positive.
	InstallmentCount int
	// InstallmentPlan requests the PAYE installment plan default instead
	// of the single settled payment.
	InstallmentPlan bool
}

// Generate splits a tax liability into installments per the category
// policy. The first n-1 installments get the floored even share; the last
// absorbs the rounding residue, so the installments always sum exactly to
// the total. A fresh schedule replaces rather than updates a prior one.
func (sg *ScheduleGenerator) Generate(result *domain.TaxResult, opts ScheduleOptions) (*domain.PaymentSchedule, error) {
	if result == nil {
		return nil, &domain.ValidationError{Field: "result", Constraint: "a tax result is required"}
	}
	if result.TotalTax.IsNegative() {
		return nil, &domain.ValidationError{Field: "totalAmount", Constraint: "total amount cannot be negative"}
	}

	count := opts.InstallmentCount
	if count == 0 {
		count = sg.defaultInstallments(result.TaxType, opts.InstallmentPlan)
	}
	if count < 1 {
		return nil, &domain.ValidationError{Field: "installmentCount", Constraint: "installment count must be at least 1"}
	}

	dueDate := sg.Now().AddDate(0, 0, sg.Policy.DueInDays)
	if opts.DueDate != nil {
		dueDate = *opts.DueDate
	}

	amounts := splitInstallments(result.TotalTax, count)

	return &domain.PaymentSchedule{
		TotalAmount:        result.TotalTax,
		DueDate:            dueDate,
		InstallmentCount:   count,
		InstallmentAmounts: amounts,
	}, nil
}

// defaultInstallments applies the documented category policy: PAYE is a
// single settled payment (or the plan default when requested), CIT is
// quarterly, CGT is due in full within 30 days of receipt.
func (sg *ScheduleGenerator) defaultInstallments(category domain.TaxCategory, plan bool) int {
	switch category {
	case domain.CategoryPAYE:
		if plan {
			return sg.Policy.PayePlanInstallments
		}
		return sg.Policy.PayeInstallments
	case domain.CategoryCIT:
		return sg.Policy.CITInstallments
	default:
		return sg.Policy.CGTInstallments
	}
}

// splitInstallments divides total into count parts: floored whole-naira
// even shares with the residue on the final installment.
func splitInstallments(total decimal.Decimal, count int) []decimal.Decimal {
	n := decimal.NewFromInt(int64(count))
	base := total.Div(n).Floor()

	amounts := make([]decimal.Decimal, count)
	for i := 0; i < count-1; i++ {
		amounts[i] = base
	}
	amounts[count-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(count - 1))))
	return amounts
}
