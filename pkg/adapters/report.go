package adapters

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// MapSalesReportToReport lays a sales report out as sections for the terminal reporter
func MapSalesReportToReport(report *domain.SalesReport) *domain.Report {
	out := &domain.Report{
		Title:       "Seller Performance Report",
		GeneratedAt: report.GeneratedAt,
		TotalAmount: report.Summary.TotalRevenue,
	}

	out.Sections = append(out.Sections, domain.ReportSection{
		Title: "Summary",
		Summary: map[string]interface{}{
			"Sellers":         report.Summary.Sellers,
			"Revenue formula": report.RevenueFormula,
			"Bonus formula":   report.BonusFormula,
			"Skipped records": report.Summary.SkippedRecords,
			"Skipped items":   report.Summary.SkippedItems,
		},
		Details: []domain.ReportDetail{
			{Name: "Total revenue", Value: fmt.Sprintf("%.2f", report.Summary.TotalRevenue)},
			{Name: "Total profit", Value: fmt.Sprintf("%.2f", report.Summary.TotalProfit)},
			{Name: "Total bonus", Value: fmt.Sprintf("%.2f", report.Summary.TotalBonus)},
		},
	})

	for i, row := range report.Sellers {
		out.Sections = append(out.Sections, domain.ReportSection{
			Title: fmt.Sprintf("#%d %s (%s)", i+1, row.Name, row.SellerID),
			Details: []domain.ReportDetail{
				{Name: "Revenue", Value: fmt.Sprintf("%.2f", row.Revenue)},
				{Name: "Profit", Value: fmt.Sprintf("%.2f", row.Profit)},
				{Name: "Sales", Value: row.SalesCount, Unit: "receipts"},
				{Name: "Bonus", Value: fmt.Sprintf("%.2f", row.Bonus)},
				{Name: "Top products", Value: len(row.TopProducts), Unit: "skus", Description: formatTopProducts(row.TopProducts)},
			},
		})
	}

	return out
}

func formatTopProducts(products []domain.TopProduct) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s x%d", p.SKU, p.Quantity))
	}
	return strings.Join(parts, ", ")
}
