package sales

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// Analysis is a finished report together with aggregation diagnostics
type Analysis struct {
	Sellers        []domain.SellerReport
	SkippedRecords int
	SkippedItems   int
}

// Analyze validates the input, aggregates purchase records per seller and
// returns the report rows ordered by profit, highest first.
func Analyze(bundle *domain.Bundle, cfg *Config) ([]domain.SellerReport, error) {
	analysis, err := AnalyzeDetailed(bundle, cfg)
	if err != nil {
		return nil, err
	}
	return analysis.Sellers, nil
}

// AnalyzeDetailed is Analyze that also reports how many records and items were skipped
func AnalyzeDetailed(bundle *domain.Bundle, cfg *Config) (*Analysis, error) {
	if err := Validate(bundle, cfg); err != nil {
		return nil, err
	}

	agg := Aggregate(bundle, cfg.Revenue)

	return &Analysis{
		Sellers:        Rank(agg.Sellers, cfg.Bonus),
		SkippedRecords: agg.SkippedRecords,
		SkippedItems:   agg.SkippedItems,
	}, nil
}
