package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// MapBundleApiToDomain keeps nil collections nil so shape checks still see a missing list
func MapBundleApiToDomain(b api.Bundle) *domain.Bundle {
	bundle := &domain.Bundle{}

	if b.Sellers != nil {
		bundle.Sellers = make([]domain.Seller, 0, len(b.Sellers))
		for _, s := range b.Sellers {
			bundle.Sellers = append(bundle.Sellers, domain.Seller{
				ID:        s.ID,
				FirstName: s.FirstName,
				LastName:  s.LastName,
				StartDate: s.StartDate,
				Position:  s.Position,
			})
		}
	}

	if b.Products != nil {
		bundle.Products = make([]domain.Product, 0, len(b.Products))
		for _, p := range b.Products {
			bundle.Products = append(bundle.Products, domain.Product{
				SKU:           p.SKU,
				PurchasePrice: p.PurchasePrice,
				Name:          p.Name,
				Category:      p.Category,
				SalePrice:     p.SalePrice,
			})
		}
	}

	if b.PurchaseRecords != nil {
		bundle.PurchaseRecords = make([]domain.PurchaseRecord, 0, len(b.PurchaseRecords))
		for _, r := range b.PurchaseRecords {
			bundle.PurchaseRecords = append(bundle.PurchaseRecords, MapPurchaseRecordApiToDomain(r))
		}
	}

	return bundle
}

func MapPurchaseRecordApiToDomain(r api.PurchaseRecord) domain.PurchaseRecord {
	items := make([]domain.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.LineItem{
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			SalePrice: item.SalePrice,
			Discount:  item.Discount,
		})
	}

	return domain.PurchaseRecord{
		ReceiptID:     r.ReceiptID,
		Date:          r.Date,
		SellerID:      r.SellerID,
		CustomerID:    r.CustomerID,
		Items:         items,
		TotalAmount:   r.TotalAmount,
		TotalDiscount: r.TotalDiscount,
	}
}

func MapSellerReportDomainToApi(row domain.SellerReport) api.SellerReport {
	top := make([]api.TopProduct, 0, len(row.TopProducts))
	for _, p := range row.TopProducts {
		top = append(top, api.TopProduct{SKU: p.SKU, Quantity: p.Quantity})
	}

	return api.SellerReport{
		SellerID:    row.SellerID,
		Name:        row.Name,
		Revenue:     row.Revenue,
		Profit:      row.Profit,
		SalesCount:  row.SalesCount,
		TopProducts: top,
		Bonus:       row.Bonus,
	}
}

func MapSalesReportDomainToApi(report *domain.SalesReport) api.SalesReport {
	sellers := make([]api.SellerReport, 0, len(report.Sellers))
	for _, row := range report.Sellers {
		sellers = append(sellers, MapSellerReportDomainToApi(row))
	}

	return api.SalesReport{
		ReportID:       report.ID,
		GeneratedAt:    report.GeneratedAt,
		RevenueFormula: report.RevenueFormula,
		BonusFormula:   report.BonusFormula,
		Summary: api.SalesSummary{
			Sellers:        report.Summary.Sellers,
			TotalRevenue:   report.Summary.TotalRevenue,
			TotalProfit:    report.Summary.TotalProfit,
			TotalBonus:     report.Summary.TotalBonus,
			SkippedRecords: report.Summary.SkippedRecords,
			SkippedItems:   report.Summary.SkippedItems,
		},
		Sellers: sellers,
	}
}
