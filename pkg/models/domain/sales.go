package domain

import "time"

// Seller is a person being ranked and bonused
type Seller struct {
	ID        string
	FirstName string
	LastName  string
	StartDate string
	Position  string
}

// Product is a catalog entry with its cost basis
type Product struct {
	SKU           string
	PurchasePrice float64
	Name          string
	Category      string
	SalePrice     float64
}

// LineItem is one product, quantity, price and discount within a purchase record
type LineItem struct {
	SKU       string
	Quantity  int
	SalePrice float64
	Discount  float64 // percent, 0-100
}

// PurchaseRecord is one seller-attributed transaction
type PurchaseRecord struct {
	ReceiptID     string
	Date          string
	SellerID      string
	CustomerID    string
	Items         []LineItem
	TotalAmount   float64
	TotalDiscount float64
}

// Bundle holds the three input collections of a sales report
type Bundle struct {
	Sellers         []Seller
	Products        []Product
	PurchaseRecords []PurchaseRecord
}

type TopProduct struct {
	SKU      string
	Quantity int
}

// ProductsSold accumulates quantity per sku and remembers the order in which
// skus were first seen.
type ProductsSold struct {
	quantities map[string]int
	order      []string
}

func NewProductsSold() *ProductsSold {
	return &ProductsSold{quantities: make(map[string]int)}
}

func (p *ProductsSold) Add(sku string, quantity int) {
	if _, ok := p.quantities[sku]; !ok {
		p.order = append(p.order, sku)
	}
	p.quantities[sku] += quantity
}

func (p *ProductsSold) Quantity(sku string) int {
	return p.quantities[sku]
}

func (p *ProductsSold) Len() int {
	return len(p.order)
}

// Items returns the accumulated quantities in first-seen order
func (p *ProductsSold) Items() []TopProduct {
	items := make([]TopProduct, 0, len(p.order))
	for _, sku := range p.order {
		items = append(items, TopProduct{SKU: sku, Quantity: p.quantities[sku]})
	}
	return items
}

// SellerStats is the running total of a single seller.
// Bonus and TopProducts are only set once ranking completes.
type SellerStats struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold *ProductsSold
	Bonus        float64
	TopProducts  []TopProduct
}

// SellerReport is one row of the final report
type SellerReport struct {
	SellerID    string
	Name        string
	Revenue     float64
	Profit      float64
	SalesCount  int
	TopProducts []TopProduct
	Bonus       float64
}

// SalesSummary holds totals over the whole report
type SalesSummary struct {
	Sellers        int
	TotalRevenue   float64
	TotalProfit    float64
	TotalBonus     float64
	SkippedRecords int
	SkippedItems   int
}

// SalesReport is a generated report along with the formulas used to build it
type SalesReport struct {
	ID             string
	GeneratedAt    time.Time
	RevenueFormula string
	BonusFormula   string
	Summary        SalesSummary
	Sellers        []SellerReport
}
