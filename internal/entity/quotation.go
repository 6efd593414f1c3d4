package entity

import (
	"github.com/shopspring/decimal"
)

// db model. A quotation is a committed price fact; it is never edited,
// only deleted.
type Quotation struct {
	Id           int64           `json:"id" db:"id"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Date         string          `json:"date" db:"quoted_at"`
	ProductId    int64           `json:"productId" db:"product_id"`
	ProductName  string          `json:"productName" db:"product_name"`
	SupplierId   int64           `json:"supplierId" db:"supplier_id"`
	SupplierName string          `json:"supplierName" db:"supplier_name"`
	RequestId    *int64          `json:"requestId,omitempty" db:"request_id"`
	Status       string          `json:"status" db:"status"`
}

// service + repo input model
type CreateQuotationInput struct {
	ProductId  int64           // given
	SupplierId int64           // given
	Price      decimal.Decimal // given, > 0
	RequestId  *int64          // given, nil for free-standing quotations
	// Status should be set: "Approved"
	// Id and Date set automatically
}

// controller model
type QuotationOutputModel struct {
	Id           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	Date         string          `json:"date"`
	ProductId    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	SupplierId   int64           `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	RequestId    *int64          `json:"requestId,omitempty"`
	Status       string          `json:"status"`
	Deviation    *PriceDeviation `json:"deviation,omitempty"`
}

// PriceDeviation classifies one quotation's price against the product's
// historical average.
type PriceDeviation struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// QuotationHistory is a filtered history listing with summary figures over
// the filtered rows.
type QuotationHistory struct {
	Items        []QuotationOutputModel `json:"items"`
	Total        decimal.Decimal        `json:"total"`
	AveragePrice decimal.Decimal        `json:"averagePrice"`
}

// QuotationFilter narrows history listings. Zero values mean "no filter".
type QuotationFilter struct {
	SupplierId int64
	ProductId  int64
	DateFrom   string // YYYY-MM-DD
	DateTo     string // YYYY-MM-DD
}
