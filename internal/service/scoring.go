package service

import (
	"context"
	"math"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	priceWeight       = 0.40
	reliabilityWeight = 0.35
	consistencyWeight = 0.25

	// A supplier with a single quotation has no variation to judge, so
	// consistency defaults to a favorable mid-high score.
	singleQuotationConsistency = 8.0
)

var medals = []string{"gold", "silver", "bronze"}

type ScoringService struct {
	supplierRepo  repo.Supplier
	quotationRepo repo.Quotation
}

func NewScoringService(repos *repo.Repositories) *ScoringService {
	return &ScoringService{
		supplierRepo:  repos.Supplier,
		quotationRepo: repos.Quotation,
	}
}

// RankSuppliers scores every active supplier that has at least one quotation
// and returns them sorted by total score descending. Suppliers are evaluated
// in ascending id order, so equal totals keep a deterministic relative order.
// The top three entries receive medals.
func (s *ScoringService) RankSuppliers(ctx context.Context) ([]entity.ScoreRecord, error) {
	suppliers, err := s.supplierRepo.ListActiveSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	quotations, err := s.quotationRepo.GetAllQuotations(ctx)
	if err != nil {
		return nil, err
	}

	bySupplier := make(map[int64][]entity.Quotation)
	globalSum := decimal.Zero
	for _, q := range quotations {
		bySupplier[q.SupplierId] = append(bySupplier[q.SupplierId], q)
		globalSum = globalSum.Add(q.Price)
	}

	globalAverage := 0.0
	if len(quotations) > 0 {
		globalAverage = globalSum.InexactFloat64() / float64(len(quotations))
	}

	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].Id < suppliers[j].Id })

	records := make([]entity.ScoreRecord, 0)
	for _, supplier := range suppliers {
		supplierQuotations := bySupplier[supplier.Id]
		if len(supplierQuotations) == 0 {
			continue
		}

		records = append(records, s.score(&supplier, supplierQuotations, globalAverage, len(quotations)))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TotalScore > records[j].TotalScore
	})

	for i := range records {
		if i >= len(medals) {
			break
		}
		records[i].Medal = medals[i]
	}

	return records, nil
}

func (s *ScoringService) score(supplier *entity.Supplier, quotations []entity.Quotation, globalAverage float64, totalQuotations int) entity.ScoreRecord {
	sum := decimal.Zero
	minPrice := quotations[0].Price
	maxPrice := quotations[0].Price
	for _, q := range quotations {
		sum = sum.Add(q.Price)
		if q.Price.LessThan(minPrice) {
			minPrice = q.Price
		}
		if q.Price.GreaterThan(maxPrice) {
			maxPrice = q.Price
		}
	}

	count := len(quotations)
	averagePrice := sum.Div(decimal.NewFromInt(int64(count)))
	meanPrice := averagePrice.InexactFloat64()

	// Price score: cheaper than the global average scores higher. Only the
	// lower bound is clamped; a very cheap supplier can exceed 10 before
	// weighting, matching the historical behavior of this ranking.
	priceScore := 5.0
	if globalAverage > 0 {
		priceScore = math.Max(0, 10-((meanPrice-globalAverage)/globalAverage*10))
	}

	// Reliability: share of all recorded quotations won by this supplier,
	// with a flat bonus of 3 so low-volume suppliers are not buried.
	winRate := float64(count) / float64(totalQuotations)
	reliabilityScore := math.Min(10, winRate*10+3)

	consistencyScore := singleQuotationConsistency
	variation := decimal.Zero
	if count > 1 {
		variation = maxPrice.Sub(minPrice)
		consistencyScore = math.Max(1, 10-(variation.InexactFloat64()/meanPrice*5))
	}

	total := priceScore*priceWeight + reliabilityScore*reliabilityWeight + consistencyScore*consistencyWeight

	return entity.ScoreRecord{
		SupplierId:       supplier.Id,
		SupplierName:     supplier.Name,
		QuotationCount:   count,
		AveragePrice:     averagePrice.Round(2),
		PriceVariation:   variation.Round(2),
		PriceScore:       roundScore(priceScore),
		ReliabilityScore: roundScore(reliabilityScore),
		ConsistencyScore: roundScore(consistencyScore),
		TotalScore:       roundScore(total),
	}
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
