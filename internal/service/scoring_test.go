package service

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"testing"

	"github.com/shopspring/decimal"
)

func newScoringFixture(suppliers []entity.Supplier, quotations []entity.Quotation) *ScoringService {
	return NewScoringService(&repo.Repositories{
		Supplier:  &fakeSupplierRepo{suppliers: suppliers},
		Quotation: &fakeQuotationRepo{quotations: quotations},
	})
}

func supplierQuotation(supplierId int64, price string) entity.Quotation {
	return entity.Quotation{
		SupplierId: supplierId,
		ProductId:  1,
		Price:      decimal.RequireFromString(price),
	}
}

func TestRankSuppliersSingleSupplier(t *testing.T) {
	suppliers := []entity.Supplier{{Id: 1, Name: "Acme", Active: true}}
	quotations := []entity.Quotation{
		supplierQuotation(1, "6.00"),
		supplierQuotation(1, "14.00"),
	}

	records, err := newScoringFixture(suppliers, quotations).RankSuppliers(context.Background())
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	record := records[0]
	// Mean equals the global average, full win rate, 8.00 of spread on a
	// 10.00 mean: 10*0.40 + 10*0.35 + 6*0.25 = 9.0.
	if record.PriceScore != 10.0 {
		t.Errorf("price score = %v, want 10", record.PriceScore)
	}
	if record.ReliabilityScore != 10.0 {
		t.Errorf("reliability score = %v, want 10", record.ReliabilityScore)
	}
	if record.ConsistencyScore != 6.0 {
		t.Errorf("consistency score = %v, want 6", record.ConsistencyScore)
	}
	if record.TotalScore != 9.0 {
		t.Errorf("total score = %v, want 9", record.TotalScore)
	}
	if !record.AveragePrice.Equal(decimal.RequireFromString("10")) {
		t.Errorf("average price = %s, want 10", record.AveragePrice)
	}
	if !record.PriceVariation.Equal(decimal.RequireFromString("8")) {
		t.Errorf("price variation = %s, want 8", record.PriceVariation)
	}
	if record.Medal != "gold" {
		t.Errorf("medal = %q, want gold", record.Medal)
	}
}

func TestRankSuppliersOrderingAndMedals(t *testing.T) {
	suppliers := []entity.Supplier{
		{Id: 1, Name: "Cheap", Active: true},
		{Id: 2, Name: "Pricey", Active: true},
		{Id: 3, Name: "Quiet", Active: true},
	}
	quotations := []entity.Quotation{
		supplierQuotation(1, "10.00"),
		supplierQuotation(2, "20.00"),
	}

	records, err := newScoringFixture(suppliers, quotations).RankSuppliers(context.Background())
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}
	// Supplier 3 never quoted and must not appear at all.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].SupplierId != 1 || records[1].SupplierId != 2 {
		t.Fatalf("order = [%d %d], want [1 2]", records[0].SupplierId, records[1].SupplierId)
	}

	// Global average is 15. The cheap supplier sits 33% below it and the
	// price score is only clamped at zero, so it rises above 10.
	if records[0].PriceScore != 13.3 {
		t.Errorf("cheap price score = %v, want 13.3", records[0].PriceScore)
	}
	if records[0].TotalScore != 10.1 {
		t.Errorf("cheap total = %v, want 10.1", records[0].TotalScore)
	}
	if records[1].PriceScore != 6.7 {
		t.Errorf("pricey price score = %v, want 6.7", records[1].PriceScore)
	}
	if records[1].TotalScore != 7.5 {
		t.Errorf("pricey total = %v, want 7.5", records[1].TotalScore)
	}

	if records[0].Medal != "gold" || records[1].Medal != "silver" {
		t.Errorf("medals = [%q %q], want [gold silver]", records[0].Medal, records[1].Medal)
	}
}

func TestRankSuppliersEqualTotalsKeepIdOrder(t *testing.T) {
	suppliers := []entity.Supplier{
		{Id: 7, Name: "Second", Active: true},
		{Id: 3, Name: "First", Active: true},
	}
	quotations := []entity.Quotation{
		supplierQuotation(7, "10.00"),
		supplierQuotation(3, "10.00"),
	}

	records, err := newScoringFixture(suppliers, quotations).RankSuppliers(context.Background())
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].TotalScore != records[1].TotalScore {
		t.Fatalf("totals differ: %v vs %v", records[0].TotalScore, records[1].TotalScore)
	}
	if records[0].SupplierId != 3 || records[1].SupplierId != 7 {
		t.Errorf("tied order = [%d %d], want ascending ids [3 7]", records[0].SupplierId, records[1].SupplierId)
	}
}

func TestRankSuppliersIdempotent(t *testing.T) {
	suppliers := []entity.Supplier{
		{Id: 1, Name: "Acme", Active: true},
		{Id: 2, Name: "Globex", Active: true},
	}
	quotations := []entity.Quotation{
		supplierQuotation(1, "10.00"),
		supplierQuotation(1, "12.00"),
		supplierQuotation(2, "11.00"),
	}

	scoring := newScoringFixture(suppliers, quotations)

	first, err := scoring.RankSuppliers(context.Background())
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}
	second, err := scoring.RankSuppliers(context.Background())
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("rerun changed record count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SupplierId != second[i].SupplierId ||
			first[i].TotalScore != second[i].TotalScore ||
			first[i].Medal != second[i].Medal ||
			!first[i].AveragePrice.Equal(second[i].AveragePrice) {
			t.Errorf("record %d changed between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRankSuppliersEmpty(t *testing.T) {
	records, err := newScoringFixture(nil, nil).RankSuppliers(context.Background())
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want none", len(records))
	}
}
