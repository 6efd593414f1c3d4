package entity

import (
	"github.com/shopspring/decimal"
)

// ScoreRecord is one supplier's composite ranking entry. Subscores blend
// price competitiveness (0.40), win-rate (0.35) and price consistency (0.25).
type ScoreRecord struct {
	SupplierId       int64           `json:"supplierId"`
	SupplierName     string          `json:"supplierName"`
	QuotationCount   int             `json:"quotationCount"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
	PriceVariation   decimal.Decimal `json:"priceVariation"`
	PriceScore       float64         `json:"priceScore"`
	ReliabilityScore float64         `json:"reliabilityScore"`
	ConsistencyScore float64         `json:"consistencyScore"`
	TotalScore       float64         `json:"totalScore"`
	Medal            string          `json:"medal,omitempty"`
}
