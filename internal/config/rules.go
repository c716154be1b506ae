package config

import (
	"fmt"
	"os"

	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BracketRow is one progressive PAYE band. Bands are half-open
// [Lower, Upper): an amount exactly on a boundary is taxed at the lower
// band's rate. The last row leaves Upper unset (zero), meaning unbounded.
type BracketRow struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Open reports whether the row has no upper bound. Validation guarantees
// only the final row of a table is open.
func (r BracketRow) Open() bool {
	return r.Upper.IsZero()
}

// PayeRules contains the personal income tax schedule for a tax year.
type PayeRules struct {
	PersonalRelief decimal.Decimal `yaml:"personal_relief" json:"personal_relief"`
	Brackets       []BracketRow    `yaml:"brackets" json:"brackets"`
}

// BusinessRules contains the flat corporate tax rates.
type BusinessRules struct {
	CITRate             decimal.Decimal `yaml:"cit_rate" json:"cit_rate"`
	DevelopmentLevyRate decimal.Decimal `yaml:"development_levy_rate" json:"development_levy_rate"`
}

// CapitalGainsRules contains the flat capital gains rate.
type CapitalGainsRules struct {
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SchedulePolicy contains the payment scheduling defaults per category.
type SchedulePolicy struct {
	DueInDays            int `yaml:"due_in_days" json:"due_in_days"`
	PayeInstallments     int `yaml:"paye_installments" json:"paye_installments"`
	PayePlanInstallments int `yaml:"paye_plan_installments" json:"paye_plan_installments"`
	CITInstallments      int `yaml:"cit_installments" json:"cit_installments"`
	CGTInstallments      int `yaml:"cgt_installments" json:"cgt_installments"`
}

// TaxRules is the full rules table for one tax year. It is loaded once at
// startup, validated, and treated as read-only afterwards; concurrent
// calculations share it without locking.
type TaxRules struct {
	Year         int               `yaml:"year" json:"year"`
	Paye         PayeRules         `yaml:"paye" json:"paye"`
	Business     BusinessRules     `yaml:"business" json:"business"`
	CapitalGains CapitalGainsRules `yaml:"capital_gains" json:"capital_gains"`
	Schedule     SchedulePolicy    `yaml:"schedule" json:"schedule"`
}

// Default2026 returns the built-in 2026 Nigerian tax schedule.
func Default2026() *TaxRules {
	return &TaxRules{
		Year: 2026,
		Paye: PayeRules{
			PersonalRelief: decimal.NewFromInt(400000),
			Brackets: []BracketRow{
				{Lower: decimal.Zero, Upper: decimal.NewFromInt(300000), Rate: decimal.Zero},
				{Lower: decimal.NewFromInt(300000), Upper: decimal.NewFromInt(600000), Rate: decimal.NewFromFloat(0.05)},
				{Lower: decimal.NewFromInt(600000), Upper: decimal.NewFromInt(1100000), Rate: decimal.NewFromFloat(0.10)},
				{Lower: decimal.NewFromInt(1100000), Upper: decimal.NewFromInt(2100000), Rate: decimal.NewFromFloat(0.15)},
				{Lower: decimal.NewFromInt(2100000), Upper: decimal.NewFromInt(3500000), Rate: decimal.NewFromFloat(0.19)},
				{Lower: decimal.NewFromInt(3500000), Rate: decimal.NewFromFloat(0.21)},
			},
		},
		Business: BusinessRules{
			CITRate:             decimal.NewFromFloat(0.30),
			DevelopmentLevyRate: decimal.NewFromFloat(0.005),
		},
		CapitalGains: CapitalGainsRules{
			Rate: decimal.NewFromFloat(0.10),
		},
		Schedule: SchedulePolicy{
			DueInDays:            30,
			PayeInstallments:     1,
			PayePlanInstallments: 3,
			CITInstallments:      4,
			CGTInstallments:      1,
		},
	}
}

// LoadRules reads a rules table from a YAML file and validates it.
func LoadRules(filename string) (*TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	rules := Default2026()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate checks the full rules table. A failure here is fatal at
// startup; a broken bracket table must never serve calculations.
func (tr *TaxRules) Validate() error {
	if err := validateBrackets(tr.Paye.Brackets); err != nil {
		return err
	}
	if tr.Paye.PersonalRelief.IsNegative() {
		return &domain.ConfigurationError{Reason: "personal relief cannot be negative"}
	}
	for name, rate := range map[string]decimal.Decimal{
		"cit_rate":              tr.Business.CITRate,
		"development_levy_rate": tr.Business.DevelopmentLevyRate,
		"capital_gains rate":    tr.CapitalGains.Rate,
	} {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return &domain.ConfigurationError{Reason: fmt.Sprintf("%s must be a fraction in [0,1]", name)}
		}
	}
	if err := tr.Schedule.validate(); err != nil {
		return err
	}
	return nil
}

func (sp SchedulePolicy) validate() error {
	for name, n := range map[string]int{
		"due_in_days":            sp.DueInDays,
		"paye_installments":      sp.PayeInstallments,
		"paye_plan_installments": sp.PayePlanInstallments,
		"cit_installments":       sp.CITInstallments,
		"cgt_installments":       sp.CGTInstallments,
	} {
		if n < 1 {
			return &domain.ConfigurationError{Reason: fmt.Sprintf("schedule %s must be at least 1", name)}
		}
	}
	return nil
}

// validateBrackets enforces total coverage of [0, inf): ascending,
// contiguous, no gaps or overlaps, last row unbounded, rates in [0,1].
func validateBrackets(rows []BracketRow) error {
	if len(rows) == 0 {
		return &domain.ConfigurationError{Reason: "bracket table is empty"}
	}
	if !rows[0].Lower.IsZero() {
		return &domain.ConfigurationError{Reason: "first bracket must start at 0"}
	}
	one := decimal.NewFromInt(1)
	for i, row := range rows {
		if row.Rate.IsNegative() || row.Rate.GreaterThan(one) {
			return &domain.ConfigurationError{Reason: fmt.Sprintf("bracket %d rate must be a fraction in [0,1]", i)}
		}
		last := i == len(rows)-1
		if last {
			if !row.Upper.IsZero() {
				return &domain.ConfigurationError{Reason: "last bracket must be unbounded"}
			}
			continue
		}
		if row.Upper.LessThanOrEqual(row.Lower) {
			return &domain.ConfigurationError{Reason: fmt.Sprintf("bracket %d upper bound must exceed its lower bound", i)}
		}
		if !row.Upper.Equal(rows[i+1].Lower) {
			return &domain.ConfigurationError{Reason: fmt.Sprintf("bracket %d upper bound does not meet bracket %d lower bound", i, i+1)}
		}
	}
	return nil
}
