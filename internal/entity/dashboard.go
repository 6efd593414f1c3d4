package entity

import (
	"github.com/shopspring/decimal"
)

// DashboardStats are the executive KPIs shown on the landing page.
type DashboardStats struct {
	ActiveProducts    int             `json:"activeProducts"`
	ActiveSuppliers   int             `json:"activeSuppliers"`
	PendingRequests   int             `json:"pendingRequests"`
	TotalQuotations   int             `json:"totalQuotations"`
	QuotationsToday   int             `json:"quotationsToday"`
	TotalSpend        decimal.Decimal `json:"totalSpend"`
	AverageTicket     decimal.Decimal `json:"averageTicket"`
	MinPrice          decimal.Decimal `json:"minPrice"`
	MaxPrice          decimal.Decimal `json:"maxPrice"`
	TopSupplierName   string          `json:"topSupplierName"`
	TopSupplierQuotes int             `json:"topSupplierQuotes"`
}
