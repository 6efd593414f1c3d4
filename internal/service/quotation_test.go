package service

import (
	"context"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"testing"

	"github.com/shopspring/decimal"
)

func newQuotationFixture(requests []entity.Request, suppliers []entity.Supplier, quotations []entity.Quotation) *QuotationService {
	repos := &repo.Repositories{
		Request:   &fakeRequestRepo{requests: requests},
		Supplier:  &fakeSupplierRepo{suppliers: suppliers},
		Quotation: &fakeQuotationRepo{quotations: quotations},
	}

	return NewQuotationService(repos, NewPricingService(repos))
}

func TestRecordForRequest(t *testing.T) {
	requests := []entity.Request{{Id: 1, ProductId: 100, Quantity: 2, Status: common.Pending}}
	suppliers := []entity.Supplier{{Id: 1, Name: "Acme", Active: true}}
	quotationService := newQuotationFixture(requests, suppliers, nil)

	quotation, err := quotationService.RecordForRequest(context.Background(), 1, 1, "R$ 12,50")
	if err != nil {
		t.Fatalf("RecordForRequest failed: %v", err)
	}

	if !quotation.Price.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("price = %s, want 12.5", quotation.Price)
	}
	if quotation.ProductId != 100 {
		t.Errorf("product = %d, want 100", quotation.ProductId)
	}
	if quotation.RequestId == nil || *quotation.RequestId != 1 {
		t.Errorf("request id = %v, want 1", quotation.RequestId)
	}
}

func TestRecordForRequestErrors(t *testing.T) {
	requests := []entity.Request{
		{Id: 1, ProductId: 100, Status: common.Pending},
		{Id: 2, ProductId: 100, Status: common.Processed},
	}
	suppliers := []entity.Supplier{
		{Id: 1, Name: "Acme", Active: true},
		{Id: 2, Name: "Gone", Active: false},
	}
	quotationService := newQuotationFixture(requests, suppliers, nil)

	testCases := []struct {
		name       string
		requestId  int64
		supplierId int64
		price      string
		want       error
	}{
		{"unknown request", 99, 1, "10.00", ErrRequestNotFound},
		{"request already processed", 2, 1, "10.00", ErrRequestNotPending},
		{"unknown supplier", 1, 99, "10.00", ErrSupplierNotFound},
		{"inactive supplier", 1, 2, "10.00", ErrSupplierInactive},
		{"unparseable price", 1, 1, "oops", ErrInvalidPrice},
		{"zero price", 1, 1, "0", ErrInvalidPrice},
		{"negative price", 1, 1, "-3.00", ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := quotationService.RecordForRequest(context.Background(), tc.requestId, tc.supplierId, tc.price)
			if err != tc.want {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestHistoryTotalsAndDeviation(t *testing.T) {
	quotations := []entity.Quotation{
		{Id: 1, ProductId: 100, SupplierId: 1, Price: decimal.RequireFromString("10.00"), Date: "2026-01-10"},
		{Id: 2, ProductId: 100, SupplierId: 1, Price: decimal.RequireFromString("20.00"), Date: "2026-02-10"},
	}
	quotationService := newQuotationFixture(nil, nil, quotations)

	history, err := quotationService.History(context.Background(), &entity.QuotationFilter{})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}

	if len(history.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(history.Items))
	}
	if !history.Total.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("total = %s, want 30.00", history.Total)
	}
	if !history.AveragePrice.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("average = %s, want 15.00", history.AveragePrice)
	}

	// Product average is 15: 10.00 sits 33% below, 20.00 sits 33% above.
	if history.Items[0].Deviation == nil || history.Items[0].Deviation.Kind != common.DeviationGood {
		t.Errorf("first deviation = %+v, want %q", history.Items[0].Deviation, common.DeviationGood)
	}
	if history.Items[1].Deviation == nil || history.Items[1].Deviation.Kind != common.DeviationHigh {
		t.Errorf("second deviation = %+v, want %q", history.Items[1].Deviation, common.DeviationHigh)
	}
}

func TestHistoryFilterBySupplier(t *testing.T) {
	quotations := []entity.Quotation{
		{Id: 1, ProductId: 100, SupplierId: 1, Price: decimal.RequireFromString("10.00")},
		{Id: 2, ProductId: 100, SupplierId: 2, Price: decimal.RequireFromString("20.00")},
	}
	quotationService := newQuotationFixture(nil, nil, quotations)

	history, err := quotationService.History(context.Background(), &entity.QuotationFilter{SupplierId: 2})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}

	if len(history.Items) != 1 || history.Items[0].SupplierId != 2 {
		t.Fatalf("items = %+v, want only supplier 2", history.Items)
	}
	// Summary figures cover the filtered rows only.
	if !history.Total.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("total = %s, want 20.00", history.Total)
	}
}

func TestHistoryEmpty(t *testing.T) {
	quotationService := newQuotationFixture(nil, nil, nil)

	history, err := quotationService.History(context.Background(), &entity.QuotationFilter{})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history.Items) != 0 {
		t.Errorf("got %d items, want none", len(history.Items))
	}
	if !history.Total.IsZero() || !history.AveragePrice.IsZero() {
		t.Errorf("totals = %s/%s, want zero", history.Total, history.AveragePrice)
	}
}

func TestDeleteQuotationNotFound(t *testing.T) {
	quotationService := newQuotationFixture(nil, nil, nil)

	if err := quotationService.DeleteQuotation(context.Background(), 1); err != ErrQuotationNotFound {
		t.Fatalf("err = %v, want ErrQuotationNotFound", err)
	}
}
