package sales

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// RevenueFunc computes the net revenue of a single line item
type RevenueFunc func(item domain.LineItem, product domain.Product) float64

// BonusFunc computes the bonus of a seller at the given 0-based rank
type BonusFunc func(index, total int, seller domain.SellerStats) float64

// Config carries the pricing and bonus strategies used by Analyze
type Config struct {
	Revenue RevenueFunc
	Bonus   BonusFunc
}

// SimpleRevenue is sale price times quantity, less the percentage discount
func SimpleRevenue(item domain.LineItem, _ domain.Product) float64 {
	discount := item.Discount / 100
	return item.SalePrice * float64(item.Quantity) * (1 - discount)
}

// BonusByProfit pays a share of profit depending on rank:
// first 15%, second and third 10%, everyone else except the last 5%.
func BonusByProfit(index, total int, seller domain.SellerStats) float64 {
	var rate float64

	switch {
	case index == 0:
		rate = 0.15
	case index == 1 || index == 2:
		rate = 0.10
	case index < total-1:
		rate = 0.05
	}

	return seller.Profit * rate
}
