package service

import (
	"context"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"testing"

	"github.com/shopspring/decimal"
)

func newPricingFixture(quotations ...entity.Quotation) *PricingService {
	return NewPricingService(&repo.Repositories{
		Quotation: &fakeQuotationRepo{quotations: quotations},
	})
}

func quotationAt(productId int64, price string) entity.Quotation {
	return entity.Quotation{
		ProductId: productId,
		Price:     decimal.RequireFromString(price),
	}
}

func TestAveragePriceNoHistory(t *testing.T) {
	pricing := newPricingFixture()

	_, hasHistory, err := pricing.AveragePrice(context.Background(), 1)
	if err != nil {
		t.Fatalf("AveragePrice failed: %v", err)
	}
	if hasHistory {
		t.Error("expected no history for an unquoted product")
	}
}

func TestAveragePriceMean(t *testing.T) {
	pricing := newPricingFixture(
		quotationAt(1, "10.00"),
		quotationAt(1, "20.00"),
		quotationAt(1, "30.00"),
		quotationAt(2, "999.00"),
	)

	average, hasHistory, err := pricing.AveragePrice(context.Background(), 1)
	if err != nil {
		t.Fatalf("AveragePrice failed: %v", err)
	}
	if !hasHistory {
		t.Fatal("expected history for product 1")
	}
	if !average.Equal(decimal.RequireFromString("20")) {
		t.Errorf("average = %s, want 20", average)
	}
}

func TestClassifyDeviation(t *testing.T) {
	// One prior quotation fixes the product average at 100.00.
	pricing := newPricingFixture(quotationAt(1, "100.00"))

	testCases := []struct {
		name  string
		price string
		kind  string
	}{
		{"well below average", "89.99", common.DeviationGood},
		{"exactly minus ten percent", "90.00", common.DeviationNormal},
		{"on the average", "100.00", common.DeviationNormal},
		{"exactly plus fifteen percent", "115.00", common.DeviationNormal},
		{"above the high boundary", "115.01", common.DeviationHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quotation := quotationAt(1, tc.price)
			deviation, err := pricing.ClassifyDeviation(context.Background(), &quotation)
			if err != nil {
				t.Fatalf("ClassifyDeviation failed: %v", err)
			}
			if deviation.Kind != tc.kind {
				t.Errorf("price %s classified %q, want %q", tc.price, deviation.Kind, tc.kind)
			}
		})
	}
}

func TestClassifyDeviationNewProduct(t *testing.T) {
	pricing := newPricingFixture(quotationAt(1, "100.00"))

	quotation := quotationAt(2, "50.00")
	deviation, err := pricing.ClassifyDeviation(context.Background(), &quotation)
	if err != nil {
		t.Fatalf("ClassifyDeviation failed: %v", err)
	}
	if deviation.Kind != common.DeviationNew {
		t.Errorf("product without history classified %q, want %q", deviation.Kind, common.DeviationNew)
	}
}
