package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault2026_Valid(t *testing.T) {
	rules := Default2026()

	require.NoError(t, rules.Validate())
	assert.Equal(t, 2026, rules.Year)
	assert.Len(t, rules.Paye.Brackets, 6)
	assert.True(t, rules.Paye.PersonalRelief.Equal(decimal.NewFromInt(400000)))
	assert.True(t, rules.Paye.Brackets[5].Open(), "Top band is unbounded")
}

func TestValidate_BracketGap(t *testing.T) {
	rules := Default2026()
	rules.Paye.Brackets[2].Lower = decimal.NewFromInt(650000)

	err := rules.Validate()

	require.Error(t, err)
	var ce *domain.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Reason, "does not meet")
}

func TestValidate_BracketOverlap(t *testing.T) {
	rules := Default2026()
	rules.Paye.Brackets[1].Upper = decimal.NewFromInt(550000)

	assert.Error(t, rules.Validate(), "Overlapping bands break total coverage")
}

func TestValidate_FirstBandMustStartAtZero(t *testing.T) {
	rules := Default2026()
	rules.Paye.Brackets[0].Lower = decimal.NewFromInt(1)

	err := rules.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start at 0")
}

func TestValidate_LastBandMustBeUnbounded(t *testing.T) {
	rules := Default2026()
	rules.Paye.Brackets[5].Upper = decimal.NewFromInt(99999999)

	err := rules.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbounded")
}

func TestValidate_RateOutOfRange(t *testing.T) {
	rules := Default2026()
	rules.Paye.Brackets[1].Rate = decimal.NewFromFloat(1.5)

	assert.Error(t, rules.Validate())

	rules = Default2026()
	rules.Business.CITRate = decimal.NewFromInt(-1)
	assert.Error(t, rules.Validate())
}

func TestValidate_EmptyBracketTable(t *testing.T) {
	rules := Default2026()
	rules.Paye.Brackets = nil

	err := rules.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidate_SchedulePolicy(t *testing.T) {
	rules := Default2026()
	rules.Schedule.CITInstallments = 0

	err := rules.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cit_installments")
}

func TestLoadRules_FromYAML(t *testing.T) {
	content := `
year: 2027
paye:
  personal_relief: 450000
  brackets:
    - lower: 0
      upper: 500000
      rate: 0
    - lower: 500000
      rate: 0.20
business:
  cit_rate: 0.25
  development_levy_rate: 0.005
capital_gains:
  rate: 0.10
schedule:
  due_in_days: 45
  paye_installments: 1
  paye_plan_installments: 3
  cit_installments: 4
  cgt_installments: 1
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, 2027, rules.Year)
	assert.True(t, rules.Paye.PersonalRelief.Equal(decimal.NewFromInt(450000)))
	assert.Len(t, rules.Paye.Brackets, 2)
	assert.Equal(t, 45, rules.Schedule.DueInDays)
}

func TestLoadRules_InvalidTableIsFatal(t *testing.T) {
	content := `
paye:
  brackets:
    - lower: 0
      upper: 300000
      rate: 0
    - lower: 400000
      rate: 0.21
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRules(path)

	require.Error(t, err)
	var ce *domain.ConfigurationError
	assert.ErrorAs(t, err, &ce, "Coverage violations must surface as configuration errors")
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules("does-not-exist.yaml")
	assert.Error(t, err)
}
