package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBundleApiToDomain_KeepsMissingListsNil(t *testing.T) {
	bundle := MapBundleApiToDomain(api.Bundle{
		Sellers: []api.Seller{{ID: "s1", FirstName: "Anna", LastName: "Lee"}},
	})

	require.Len(t, bundle.Sellers, 1)
	assert.Equal(t, domain.Seller{ID: "s1", FirstName: "Anna", LastName: "Lee"}, bundle.Sellers[0])
	assert.Nil(t, bundle.Products)
	assert.Nil(t, bundle.PurchaseRecords)
}

func TestMapBundleApiToDomain_PurchaseRecords(t *testing.T) {
	bundle := MapBundleApiToDomain(api.Bundle{
		Sellers:  []api.Seller{},
		Products: []api.Product{{SKU: "A", PurchasePrice: 1.5, Name: "Apple"}},
		PurchaseRecords: []api.PurchaseRecord{{
			ReceiptID: "r1",
			SellerID:  "s1",
			Items: []api.LineItem{
				{SKU: "A", Quantity: 3, SalePrice: 2, Discount: 10},
				{SKU: "B", Quantity: 1, SalePrice: 5},
			},
		}},
	})

	assert.NotNil(t, bundle.Sellers)
	assert.Empty(t, bundle.Sellers)
	assert.Equal(t, []domain.Product{{SKU: "A", PurchasePrice: 1.5, Name: "Apple"}}, bundle.Products)
	require.Len(t, bundle.PurchaseRecords, 1)
	assert.Equal(t, []domain.LineItem{
		{SKU: "A", Quantity: 3, SalePrice: 2, Discount: 10},
		{SKU: "B", Quantity: 1, SalePrice: 5},
	}, bundle.PurchaseRecords[0].Items)
}

func TestMapSalesReportDomainToApi(t *testing.T) {
	generated := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	out := MapSalesReportDomainToApi(&domain.SalesReport{
		ID:             "rep-1",
		GeneratedAt:    generated,
		RevenueFormula: "simple",
		BonusFormula:   "profit_tiered",
		Summary:        domain.SalesSummary{Sellers: 1, TotalRevenue: 40, TotalProfit: 20, TotalBonus: 3},
		Sellers: []domain.SellerReport{{
			SellerID:   "s1",
			Name:       "Anna Lee",
			Revenue:    40,
			Profit:     20,
			SalesCount: 1,
			Bonus:      3,
		}},
	})

	assert.Equal(t, "rep-1", out.ReportID)
	assert.Equal(t, generated, out.GeneratedAt)
	assert.Equal(t, api.SalesSummary{Sellers: 1, TotalRevenue: 40, TotalProfit: 20, TotalBonus: 3}, out.Summary)
	require.Len(t, out.Sellers, 1)
	// never null in JSON
	assert.NotNil(t, out.Sellers[0].TopProducts)
	assert.Empty(t, out.Sellers[0].TopProducts)
}

func TestMapSalesReportToReport(t *testing.T) {
	report := MapSalesReportToReport(&domain.SalesReport{
		Summary: domain.SalesSummary{Sellers: 2, TotalRevenue: 100},
		Sellers: []domain.SellerReport{
			{SellerID: "s2", Name: "B B", TopProducts: []domain.TopProduct{{SKU: "A", Quantity: 2}, {SKU: "C", Quantity: 1}}},
			{SellerID: "s1", Name: "A A"},
		},
	})

	assert.Equal(t, 100.0, report.TotalAmount)
	require.Len(t, report.Sections, 3)
	assert.Equal(t, "Summary", report.Sections[0].Title)
	assert.Equal(t, "#1 B B (s2)", report.Sections[1].Title)
	assert.Equal(t, "A x2, C x1", report.Sections[1].Details[4].Description)
	assert.Equal(t, "#2 A A (s1)", report.Sections[2].Title)
}

func TestMapPurchaseRowsToDomain(t *testing.T) {
	records := MapPurchaseRowsToDomain(
		[]store.PurchaseRecordRow{
			{ReceiptID: "r1", SellerID: "s1"},
			{ReceiptID: "r2", SellerID: "s2"},
		},
		[]store.PurchaseItemRow{
			{ReceiptID: "r2", Position: 0, SKU: "B", Quantity: 1},
			{ReceiptID: "r1", Position: 0, SKU: "A", Quantity: 2},
			{ReceiptID: "r1", Position: 1, SKU: "C", Quantity: 3},
			{ReceiptID: "r9", Position: 0, SKU: "Z", Quantity: 9},
		},
	)

	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ReceiptID)
	assert.Equal(t, []domain.LineItem{{SKU: "A", Quantity: 2}, {SKU: "C", Quantity: 3}}, records[0].Items)
	assert.Equal(t, []domain.LineItem{{SKU: "B", Quantity: 1}}, records[1].Items)
}
