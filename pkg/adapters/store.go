package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

func MapSellerRowToDomain(row store.SellerRow) domain.Seller {
	return domain.Seller{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		StartDate: row.StartDate,
		Position:  row.Position,
	}
}

func MapProductRowToDomain(row store.ProductRow) domain.Product {
	return domain.Product{
		SKU:           row.SKU,
		PurchasePrice: row.PurchasePrice,
		Name:          row.Name,
		Category:      row.Category,
		SalePrice:     row.SalePrice,
	}
}

// MapPurchaseRowsToDomain attaches items to their receipts. Records keep the
// order of records; items keep the order they are given in.
// Items of unknown receipts are dropped.
func MapPurchaseRowsToDomain(records []store.PurchaseRecordRow, items []store.PurchaseItemRow) []domain.PurchaseRecord {
	out := make([]domain.PurchaseRecord, 0, len(records))
	byReceipt := make(map[string]int, len(records))

	for _, r := range records {
		byReceipt[r.ReceiptID] = len(out)
		out = append(out, domain.PurchaseRecord{
			ReceiptID:     r.ReceiptID,
			Date:          r.Date,
			SellerID:      r.SellerID,
			CustomerID:    r.CustomerID,
			Items:         []domain.LineItem{},
			TotalAmount:   r.TotalAmount,
			TotalDiscount: r.TotalDiscount,
		})
	}

	for _, item := range items {
		idx, ok := byReceipt[item.ReceiptID]
		if !ok {
			continue
		}
		out[idx].Items = append(out[idx].Items, domain.LineItem{
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			SalePrice: item.SalePrice,
			Discount:  item.Discount,
		})
	}

	return out
}
