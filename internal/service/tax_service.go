package service

import (
	"context"
	"fmt"

	"github.com/matthewtax/ngtax/internal/audit"
	"github.com/matthewtax/ngtax/internal/calculation"
	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/matthewtax/ngtax/internal/output"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// CalculateTaxRequest mirrors the wire shape of POST /tax/calculate.
// Amounts arrive as plain JSON numbers; which fields matter depends on
// the tax type.
type CalculateTaxRequest struct {
	TaxType        string   `json:"taxType" binding:"required"`
	Income         *float64 `json:"income,omitempty"`
	Expenses       *float64 `json:"expenses,omitempty"`
	CapitalGains   *float64 `json:"capitalGains,omitempty"`
	TaxableIncome  *float64 `json:"taxableIncome,omitempty"`
	BusinessProfit *float64 `json:"businessProfit,omitempty"`
}

// TaxBreakdown carries the per-component liabilities on the wire.
type TaxBreakdown struct {
	Paye            *float64 `json:"paye,omitempty"`
	Cit             *float64 `json:"cit,omitempty"`
	Cgt             *float64 `json:"cgt,omitempty"`
	DevelopmentLevy *float64 `json:"developmentLevy,omitempty"`
}

// CalculateTaxResponse mirrors the response shape of POST /tax/calculate.
type CalculateTaxResponse struct {
	TotalTax  float64      `json:"totalTax"`
	Breakdown TaxBreakdown `json:"breakdown"`
	Summary   string       `json:"summary"`
}

// SimulateRequest mirrors the wire shape of POST /tax/simulate.
type SimulateRequest struct {
	InitialInvestment float64 `json:"initialInvestment" binding:"required"`
	AnnualReturn      float64 `json:"annualReturn"`
	Years             int     `json:"years" binding:"required,min=1"`
}

// SimulateProjection is one projected year on the wire.
type SimulateProjection struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
	Tax   float64 `json:"tax"`
}

// SimulateResponse mirrors the response shape of POST /tax/simulate.
type SimulateResponse struct {
	Projections []SimulateProjection `json:"projections"`
	TotalTax    float64              `json:"totalTax"`
	Summary     string               `json:"summary"`
}

// CreateReportRequest asks for a payment schedule record built from a
// fresh calculation.
type CreateReportRequest struct {
	Title           string              `json:"title"`
	Data            CalculateTaxRequest `json:"data" binding:"required"`
	Installments    int                 `json:"installments,omitempty"`
	InstallmentPlan bool                `json:"installmentPlan,omitempty"`
}

// --- Interface ---

// TaxService is the application layer behind the HTTP handlers.
type TaxService interface {
	Calculate(ctx context.Context, req CalculateTaxRequest) (CalculateTaxResponse, error)
	Simulate(ctx context.Context, req SimulateRequest) (SimulateResponse, error)
	CreateReport(ctx context.Context, req CreateReportRequest) (domain.ScheduleRecord, error)
	GetReport(ctx context.Context, id string) (domain.ScheduleRecord, bool)
}

type taxService struct {
	engine    *calculation.Engine
	scheduler *calculation.ScheduleGenerator
	reports   *audit.Store
}

// NewTaxService wires the calculation engine, schedule generator and
// report store into the application service.
func NewTaxService(engine *calculation.Engine, scheduler *calculation.ScheduleGenerator, reports *audit.Store) TaxService {
	return &taxService{engine: engine, scheduler: scheduler, reports: reports}
}

// --- Implementation ---

func (s *taxService) Calculate(_ context.Context, req CalculateTaxRequest) (CalculateTaxResponse, error) {
	domainReq, err := ToCalculationRequest(req)
	if err != nil {
		return CalculateTaxResponse{}, err
	}

	result, err := s.engine.Calculate(domainReq)
	if err != nil {
		return CalculateTaxResponse{}, err
	}

	return ToResponse(result), nil
}

func (s *taxService) Simulate(_ context.Context, req SimulateRequest) (SimulateResponse, error) {
	years, totalTax, err := calculation.Simulate(s.engine.Rules.CapitalGains, calculation.SimulationInput{
		InitialInvestment: decimal.NewFromFloat(req.InitialInvestment),
		AnnualReturn:      decimal.NewFromFloat(req.AnnualReturn),
		Years:             req.Years,
	})
	if err != nil {
		return SimulateResponse{}, err
	}

	projections := make([]SimulateProjection, len(years))
	for i, y := range years {
		projections[i] = SimulateProjection{
			Year:  y.Year,
			Value: y.Value.InexactFloat64(),
			Tax:   y.Tax.InexactFloat64(),
		}
	}

	return SimulateResponse{
		Projections: projections,
		TotalTax:    totalTax.InexactFloat64(),
		Summary:     fmt.Sprintf("projected CGT over %d years", req.Years),
	}, nil
}

func (s *taxService) CreateReport(ctx context.Context, req CreateReportRequest) (domain.ScheduleRecord, error) {
	domainReq, err := ToCalculationRequest(req.Data)
	if err != nil {
		return domain.ScheduleRecord{}, err
	}

	result, err := s.engine.Calculate(domainReq)
	if err != nil {
		return domain.ScheduleRecord{}, err
	}

	schedule, err := s.scheduler.Generate(result, calculation.ScheduleOptions{
		InstallmentCount: req.Installments,
		InstallmentPlan:  req.InstallmentPlan,
	})
	if err != nil {
		return domain.ScheduleRecord{}, err
	}

	record := audit.NewRecord(result, schedule)
	s.reports.Put(record)
	return record, nil
}

func (s *taxService) GetReport(_ context.Context, id string) (domain.ScheduleRecord, bool) {
	return s.reports.Get(id)
}

// ToResponse converts an engine result into the wire response shape.
func ToResponse(result *domain.TaxResult) CalculateTaxResponse {
	resp := CalculateTaxResponse{
		TotalTax: result.TotalTax.InexactFloat64(),
		Summary:  output.Summary(result),
	}

	switch result.TaxType {
	case domain.CategoryPAYE:
		total := result.TotalTax.InexactFloat64()
		resp.Breakdown.Paye = &total
	case domain.CategoryCIT:
		for _, line := range result.Breakdown {
			amount := line.Amount.InexactFloat64()
			switch line.Label {
			case "CIT":
				resp.Breakdown.Cit = &amount
			case "Development Levy":
				resp.Breakdown.DevelopmentLevy = &amount
			}
		}
	case domain.CategoryCGT:
		total := result.TotalTax.InexactFloat64()
		resp.Breakdown.Cgt = &total
	}

	return resp
}
