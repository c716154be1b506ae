package calculation

import (
	"github.com/matthewtax/ngtax/internal/config"
	"github.com/matthewtax/ngtax/internal/domain"
)

// Engine dispatches calculation requests to the category calculators.
// It holds only the immutable rules table and is safe for concurrent use.
type Engine struct {
	Rules        *config.TaxRules
	PayeCalc     *PayeCalculator
	BusinessCalc *BusinessCalculator
	CgtCalc      *CapitalGainsCalculator
}

// NewEngine creates an engine over a validated rules table. It returns a
// ConfigurationError if the table fails its coverage invariants; an engine
// must never be constructed over a broken bracket table.
func NewEngine(rules *config.TaxRules) (*Engine, error) {
	if rules == nil {
		rules = config.Default2026()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		Rules:        rules,
		PayeCalc:     NewPayeCalculator(rules.Paye),
		BusinessCalc: NewBusinessCalculator(rules.Business),
		CgtCalc:      NewCapitalGainsCalculator(rules.CapitalGains),
	}, nil
}

// Calculate validates the tagged request and routes it to the calculator
// for its category.
func (e *Engine) Calculate(req domain.CalculationRequest) (*domain.TaxResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Category {
	case domain.CategoryPAYE:
		return e.PayeCalc.Calculate(*req.Paye)
	case domain.CategoryCIT:
		return e.BusinessCalc.Calculate(*req.Business)
	default:
		return e.CgtCalc.Calculate(*req.Cgt)
	}
}
