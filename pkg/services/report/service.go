package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/store/bundle"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Formulas names the registered strategies a report is built with
type Formulas struct {
	Revenue string
	Bonus   string
}

type Service interface {
	Generate(ctx context.Context, src bundle.Source, formulas Formulas) (*domain.SalesReport, error)
	Formulas() (revenue []string, bonus []string)
}

type service struct {
	registry sales.Registry
	now      func() time.Time
}

func NewService(registry sales.Registry) Service {
	return &service{
		registry: registry,
		now:      time.Now,
	}
}

func (s *service) Formulas() ([]string, []string) {
	return s.registry.ListRevenue(), s.registry.ListBonus()
}

func (s *service) Generate(ctx context.Context, src bundle.Source, formulas Formulas) (*domain.SalesReport, error) {
	logger := zerolog.Ctx(ctx)

	cfg, err := s.registry.Config(formulas.Revenue, formulas.Bonus)
	if err != nil {
		return nil, err
	}

	input, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundle: %w", err)
	}

	if input != nil {
		logger.Debug().
			Int("sellers", len(input.Sellers)).
			Int("products", len(input.Products)).
			Int("records", len(input.PurchaseRecords)).
			Msg("bundle loaded")
	}

	analysis, err := sales.AnalyzeDetailed(input, cfg)
	if err != nil {
		return nil, err
	}

	if analysis.SkippedRecords > 0 || analysis.SkippedItems > 0 {
		logger.Debug().
			Int("skipped_records", analysis.SkippedRecords).
			Int("skipped_items", analysis.SkippedItems).
			Msg("unresolved sellers or products were ignored")
	}

	report := &domain.SalesReport{
		ID:             uuid.NewString(),
		GeneratedAt:    s.now().UTC(),
		RevenueFormula: formulas.Revenue,
		BonusFormula:   formulas.Bonus,
		Summary:        summarize(analysis),
		Sellers:        analysis.Sellers,
	}

	logger.Info().
		Str("report_id", report.ID).
		Int("sellers", report.Summary.Sellers).
		Float64("total_profit", report.Summary.TotalProfit).
		Msg("sales report generated")

	return report, nil
}

// summarize adds up the already rounded rows so totals match what is displayed
func summarize(analysis *sales.Analysis) domain.SalesSummary {
	revenue, profit, bonus := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range analysis.Sellers {
		revenue = revenue.Add(decimal.NewFromFloatWithExponent(row.Revenue, -2))
		profit = profit.Add(decimal.NewFromFloatWithExponent(row.Profit, -2))
		bonus = bonus.Add(decimal.NewFromFloatWithExponent(row.Bonus, -2))
	}

	return domain.SalesSummary{
		Sellers:        len(analysis.Sellers),
		TotalRevenue:   revenue.Round(2).InexactFloat64(),
		TotalProfit:    profit.Round(2).InexactFloat64(),
		TotalBonus:     bonus.Round(2).InexactFloat64(),
		SkippedRecords: analysis.SkippedRecords,
		SkippedItems:   analysis.SkippedItems,
	}
}
