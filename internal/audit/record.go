// Package audit turns payment schedules into display/persistence records
// and keeps them in a small concurrency-safe store for the report API.
package audit

import (
	"github.com/google/uuid"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/matthewtax/ngtax/pkg/ngn"
)

// NewRecord builds a schedule record from a calculation result and its
// payment schedule. Amounts are rendered as currency-prefixed strings and
// the due date as an ISO date; records start out pending.
func NewRecord(result *domain.TaxResult, schedule *domain.PaymentSchedule) domain.ScheduleRecord {
	return domain.ScheduleRecord{
		ID:           "PS-" + uuid.NewString(),
		TaxType:      string(result.TaxType),
		TotalAmount:  ngn.Format(schedule.TotalAmount),
		DueDate:      schedule.DueDate.Format("2006-01-02"),
		Status:       domain.StatusPending,
		Installments: schedule.InstallmentCount,
	}
}
