package store

// SellerRow mirrors a row of the sellers table
type SellerRow struct {
	ID        string
	FirstName string
	LastName  string
	StartDate string
	Position  string
}

type ProductRow struct {
	SKU           string
	PurchasePrice float64
	Name          string
	Category      string
	SalePrice     float64
}

type PurchaseRecordRow struct {
	ReceiptID     string
	Date          string
	SellerID      string
	CustomerID    string
	TotalAmount   float64
	TotalDiscount float64
}

// PurchaseItemRow is one line item; Position keeps the item order within a receipt
type PurchaseItemRow struct {
	ReceiptID string
	Position  int
	SKU       string
	Quantity  int
	SalePrice float64
	Discount  float64
}
