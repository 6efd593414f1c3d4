package entity

import (
	"github.com/shopspring/decimal"
)

// BidMatrix is the sparse bid input for one allocation batch, keyed by
// request id then supplier id. Values are raw submitted price strings;
// absent, unparseable or non-positive entries count as "no bid".
type BidMatrix map[int64]map[int64]string

// AllocationWinner is the per-request outcome handed to the repository for
// persisting inside the batch transaction.
type AllocationWinner struct {
	RequestId  int64
	ProductId  int64
	SupplierId int64
	Price      decimal.Decimal
}

// AllocationItem is one winning line in a supplier's report bucket.
type AllocationItem struct {
	RequestId   int64           `json:"requestId"`
	ProductId   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SupplierAllocation groups a supplier's winning items with a running total.
type SupplierAllocation struct {
	SupplierId   int64            `json:"supplierId"`
	SupplierName string           `json:"supplierName"`
	Items        []AllocationItem `json:"items"`
	Total        decimal.Decimal  `json:"total"`
}

// AllocationReport is the outcome of one batch run. Suppliers are sorted by
// total descending. Requests that received no valid bid are still processed
// but listed in SkippedRequestIds so operators can see them.
type AllocationReport struct {
	BatchId           string               `json:"batchId"`
	Suppliers         []SupplierAllocation `json:"suppliers"`
	ProcessedCount    int                  `json:"processedCount"`
	AllocatedCount    int                  `json:"allocatedCount"`
	SkippedRequestIds []int64              `json:"skippedRequestIds"`
}
