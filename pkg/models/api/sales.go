package api

import "time"

type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	SalePrice     float64 `json:"sale_price,omitempty"`
}

type LineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}

type PurchaseRecord struct {
	ReceiptID     string     `json:"receipt_id,omitempty"`
	Date          string     `json:"date,omitempty"`
	SellerID      string     `json:"seller_id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount,omitempty"`
	TotalDiscount float64    `json:"total_discount,omitempty"`
}

// Bundle is the JSON shape of the report input
type Bundle struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type SellerReport struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

type SalesSummary struct {
	Sellers        int     `json:"sellers"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalProfit    float64 `json:"total_profit"`
	TotalBonus     float64 `json:"total_bonus"`
	SkippedRecords int     `json:"skipped_records"`
	SkippedItems   int     `json:"skipped_items"`
}

type SalesReport struct {
	ReportID       string         `json:"report_id"`
	GeneratedAt    time.Time      `json:"generated_at"`
	RevenueFormula string         `json:"revenue_formula"`
	BonusFormula   string         `json:"bonus_formula"`
	Summary        SalesSummary   `json:"summary"`
	Sellers        []SellerReport `json:"sellers"`
}

type Formulas struct {
	Revenue []string `json:"revenue"`
	Bonus   []string `json:"bonus"`
}
