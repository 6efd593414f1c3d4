package service

import (
	"context"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"

	"github.com/shopspring/decimal"
)

// Deviation thresholds in percent against the product's historical average.
var (
	goodDeviationLimit = decimal.NewFromInt(-10)
	highDeviationLimit = decimal.NewFromInt(15)
	hundred            = decimal.NewFromInt(100)
)

type PricingService struct {
	quotationRepo repo.Quotation
}

func NewPricingService(repos *repo.Repositories) *PricingService {
	return &PricingService{quotationRepo: repos.Quotation}
}

// AveragePrice is the arithmetic mean of every quotation price recorded for
// the product. The boolean is false when the product has no history. The
// result is recomputed from full history on every call; history changes with
// every new quotation, so nothing is cached.
func (s *PricingService) AveragePrice(ctx context.Context, productId int64) (decimal.Decimal, bool, error) {
	quotations, err := s.quotationRepo.GetQuotationsForProduct(ctx, productId)
	if err != nil {
		return decimal.Zero, false, err
	}
	if len(quotations) == 0 {
		return decimal.Zero, false, nil
	}

	sum := decimal.Zero
	for _, q := range quotations {
		sum = sum.Add(q.Price)
	}

	return sum.Div(decimal.NewFromInt(int64(len(quotations)))), true, nil
}

// ClassifyDeviation labels one quotation against the product's average:
// more than 10% below is "good", more than 15% above is "high", a product
// without history is "new". Both boundaries are strict, so exactly -10% or
// +15% is still "normal".
func (s *PricingService) ClassifyDeviation(ctx context.Context, quotation *entity.Quotation) (*entity.PriceDeviation, error) {
	average, hasHistory, err := s.AveragePrice(ctx, quotation.ProductId)
	if err != nil {
		return nil, err
	}
	if !hasHistory || average.IsZero() {
		return &entity.PriceDeviation{Kind: common.DeviationNew, Label: "New"}, nil
	}

	diffPercent := quotation.Price.Sub(average).Div(average).Mul(hundred)

	switch {
	case diffPercent.LessThan(goodDeviationLimit):
		return &entity.PriceDeviation{Kind: common.DeviationGood, Label: "Good price"}, nil
	case diffPercent.GreaterThan(highDeviationLimit):
		return &entity.PriceDeviation{Kind: common.DeviationHigh, Label: "High price"}, nil
	default:
		return &entity.PriceDeviation{Kind: common.DeviationNormal, Label: "Normal"}, nil
	}
}
