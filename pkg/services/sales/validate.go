package sales

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// Validate checks the shape of the bundle and that both formulas are present.
// Bundle problems are reported before configuration problems.
func Validate(bundle *domain.Bundle, cfg *Config) error {
	if bundle == nil {
		return &InvalidInputError{Reason: "bundle is absent"}
	}
	if bundle.Sellers == nil || bundle.Products == nil || bundle.PurchaseRecords == nil {
		return &InvalidInputError{Reason: "sellers, products and purchase_records must be lists"}
	}
	if len(bundle.Sellers) == 0 {
		return &InvalidInputError{Reason: "sellers is empty"}
	}
	if len(bundle.Products) == 0 {
		return &InvalidInputError{Reason: "products is empty"}
	}
	if len(bundle.PurchaseRecords) == 0 {
		return &InvalidInputError{Reason: "purchase_records is empty"}
	}

	if cfg == nil {
		return &MissingConfigError{Reason: "options are required"}
	}
	if cfg.Revenue == nil || cfg.Bonus == nil {
		return &MissingConfigError{Reason: "revenue and bonus functions are required"}
	}
	return nil
}
