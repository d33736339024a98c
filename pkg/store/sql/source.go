package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	sellersQuery = `
		SELECT id, first_name, last_name, COALESCE(start_date, ''), COALESCE(position, '')
		FROM sellers
		ORDER BY id`

	productsQuery = `
		SELECT sku, purchase_price, COALESCE(name, ''), COALESCE(category, ''), COALESCE(sale_price, 0)
		FROM products
		ORDER BY sku`

	purchaseRecordsQuery = `
		SELECT receipt_id, COALESCE(date, ''), seller_id, COALESCE(customer_id, ''),
			COALESCE(total_amount, 0), COALESCE(total_discount, 0)
		FROM purchase_records
		ORDER BY date, receipt_id`

	purchaseItemsQuery = `
		SELECT receipt_id, position, sku, quantity, sale_price, discount
		FROM purchase_items
		ORDER BY receipt_id, position`
)

// Source reads the input bundle from the sellers, products,
// purchase_records and purchase_items tables
type Source struct {
	db *sql.DB
}

func NewSource(db *sql.DB) (*Source, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Source{db: db}, nil
}

func (s *Source) Load(ctx context.Context) (*domain.Bundle, error) {
	logger := zerolog.Ctx(ctx)

	sellers, err := s.sellers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.purchaseRecords(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.purchaseItems(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("sellers", len(sellers)).
		Int("products", len(products)).
		Int("records", len(records)).
		Int("items", len(items)).
		Msg("loaded bundle from database")

	bundle := &domain.Bundle{
		Sellers:         make([]domain.Seller, 0, len(sellers)),
		Products:        make([]domain.Product, 0, len(products)),
		PurchaseRecords: adapters.MapPurchaseRowsToDomain(records, items),
	}
	for _, row := range sellers {
		bundle.Sellers = append(bundle.Sellers, adapters.MapSellerRowToDomain(row))
	}
	for _, row := range products {
		bundle.Products = append(bundle.Products, adapters.MapProductRowToDomain(row))
	}
	return bundle, nil
}

func (s *Source) sellers(ctx context.Context) ([]store.SellerRow, error) {
	rows, err := s.db.QueryContext(ctx, sellersQuery)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer closeRows(ctx, rows)

	out := make([]store.SellerRow, 0)
	for rows.Next() {
		var r store.SellerRow
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.StartDate, &r.Position); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Source) products(ctx context.Context) ([]store.ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, productsQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer closeRows(ctx, rows)

	out := make([]store.ProductRow, 0)
	for rows.Next() {
		var r store.ProductRow
		if err := rows.Scan(&r.SKU, &r.PurchasePrice, &r.Name, &r.Category, &r.SalePrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Source) purchaseRecords(ctx context.Context) ([]store.PurchaseRecordRow, error) {
	rows, err := s.db.QueryContext(ctx, purchaseRecordsQuery)
	if err != nil {
		return nil, fmt.Errorf("query purchase records: %w", err)
	}
	defer closeRows(ctx, rows)

	out := make([]store.PurchaseRecordRow, 0)
	for rows.Next() {
		var r store.PurchaseRecordRow
		if err := rows.Scan(&r.ReceiptID, &r.Date, &r.SellerID, &r.CustomerID, &r.TotalAmount, &r.TotalDiscount); err != nil {
			return nil, fmt.Errorf("scan purchase record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Source) purchaseItems(ctx context.Context) ([]store.PurchaseItemRow, error) {
	rows, err := s.db.QueryContext(ctx, purchaseItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("query purchase items: %w", err)
	}
	defer closeRows(ctx, rows)

	out := make([]store.PurchaseItemRow, 0)
	for rows.Next() {
		var r store.PurchaseItemRow
		if err := rows.Scan(&r.ReceiptID, &r.Position, &r.SKU, &r.Quantity, &r.SalePrice, &r.Discount); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close query rows")
	}
}
