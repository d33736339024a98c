package sales

import (
	"cmp"
	"slices"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// TopProductsLimit caps the number of products listed per seller
const TopProductsLimit = 10

// Rank orders sellers by profit, assigns bonuses by rank and builds the
// report rows. Sellers with equal profit keep their input order.
func Rank(sellers []*domain.SellerStats, bonus BonusFunc) []domain.SellerReport {
	ranked := slices.Clone(sellers)
	slices.SortStableFunc(ranked, func(a, b *domain.SellerStats) int {
		return cmp.Compare(b.Profit, a.Profit)
	})

	total := len(ranked)
	rows := make([]domain.SellerReport, 0, total)
	for index, seller := range ranked {
		seller.Bonus = bonus(index, total, *seller)
		seller.TopProducts = topProducts(seller.ProductsSold, TopProductsLimit)

		rows = append(rows, domain.SellerReport{
			SellerID:    seller.ID,
			Name:        seller.Name,
			Revenue:     Round2(seller.Revenue),
			Profit:      Round2(seller.Profit),
			SalesCount:  seller.SalesCount,
			TopProducts: seller.TopProducts,
			Bonus:       Round2(seller.Bonus),
		})
	}

	return rows
}

func topProducts(sold *domain.ProductsSold, limit int) []domain.TopProduct {
	if sold == nil {
		return []domain.TopProduct{}
	}

	items := sold.Items()
	slices.SortStableFunc(items, func(a, b domain.TopProduct) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Round2 rounds a monetary amount to two decimal places. The exact binary
// value is rounded, so 1.005 (stored as 1.00499...) becomes 1.
func Round2(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, -2).InexactFloat64()
}
