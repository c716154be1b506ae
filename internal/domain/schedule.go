package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSchedule breaks a tax liability into dated installments.
// Installment amounts always sum exactly to TotalAmount; any rounding
// residue from the split sits on the final installment.
type PaymentSchedule struct {
	TotalAmount        decimal.Decimal   `json:"totalAmount"`
	DueDate            time.Time         `json:"dueDate"`
	InstallmentCount   int               `json:"installmentCount"`
	InstallmentAmounts []decimal.Decimal `json:"installmentAmounts"`
}

// ScheduleStatus tracks the payment state of a recorded schedule.
type ScheduleStatus string

const (
	StatusPending  ScheduleStatus = "pending"
	StatusVerified ScheduleStatus = "verified"
	StatusFailed   ScheduleStatus = "failed"
)

// ScheduleRecord is the display/persistence shape of a payment schedule:
// amounts are currency-prefixed strings and the due date is an ISO date.
type ScheduleRecord struct {
	ID           string         `json:"id"`
	TaxType      string         `json:"taxType"`
	TotalAmount  string         `json:"totalAmount"`
	DueDate      string         `json:"dueDate"`
	Status       ScheduleStatus `json:"status"`
	Installments int            `json:"installments"`
}
