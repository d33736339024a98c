package sales

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Aggregation is the result of folding purchase records into per-seller totals
type Aggregation struct {
	// Sellers keeps the input seller order
	Sellers        []*domain.SellerStats
	SkippedRecords int
	SkippedItems   int
}

func newSellerStats(seller domain.Seller) *domain.SellerStats {
	return &domain.SellerStats{
		ID:           seller.ID,
		Name:         fmt.Sprintf("%s %s", seller.FirstName, seller.LastName),
		ProductsSold: domain.NewProductsSold(),
	}
}

// Aggregate walks the purchase records once and accumulates revenue, profit,
// sales count and sold quantities per seller. Records of unknown sellers and
// items of unknown products are skipped.
func Aggregate(bundle *domain.Bundle, revenue RevenueFunc) *Aggregation {
	agg := &Aggregation{
		Sellers: make([]*domain.SellerStats, 0, len(bundle.Sellers)),
	}

	sellerIndex := make(map[string]*domain.SellerStats, len(bundle.Sellers))
	for _, seller := range bundle.Sellers {
		stats := newSellerStats(seller)
		agg.Sellers = append(agg.Sellers, stats)
		sellerIndex[seller.ID] = stats
	}

	productIndex := make(map[string]domain.Product, len(bundle.Products))
	for _, product := range bundle.Products {
		productIndex[product.SKU] = product
	}

	for _, record := range bundle.PurchaseRecords {
		seller, ok := sellerIndex[record.SellerID]
		if !ok {
			agg.SkippedRecords++
			continue
		}

		seller.SalesCount++

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				agg.SkippedItems++
				continue
			}

			itemRevenue := revenue(item, product)
			seller.Revenue += itemRevenue

			cost := product.PurchasePrice * float64(item.Quantity)
			seller.Profit += itemRevenue - cost

			seller.ProductsSold.Add(item.SKU, item.Quantity)
		}
	}

	return agg
}
