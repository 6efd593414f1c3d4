package service

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/pkg/logger"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AllocationService struct {
	requestRepo   repo.Request
	supplierRepo  repo.Supplier
	quotationRepo repo.Quotation
}

func NewAllocationService(repos *repo.Repositories) *AllocationService {
	return &AllocationService{
		requestRepo:   repos.Request,
		supplierRepo:  repos.Supplier,
		quotationRepo: repos.Quotation,
	}
}

// RunBatch selects the lowest valid bid for every pending request. Candidates
// are evaluated in ascending supplier id order and ties go to the first
// candidate that reached the lowest price. Every request ends up Processed; a
// request with no valid bid produces no quotation and is listed in the
// report's SkippedRequestIds. All writes happen in a single transaction.
func (s *AllocationService) RunBatch(ctx context.Context, bids entity.BidMatrix) (*entity.AllocationReport, error) {
	pending, err := s.requestRepo.ListPendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, ErrNoPendingRequests
	}

	activeSuppliers, err := s.supplierRepo.ListActiveSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	supplierNames := make(map[int64]string, len(activeSuppliers))
	allActiveIds := make([]int64, 0, len(activeSuppliers))
	for _, supplier := range activeSuppliers {
		supplierNames[supplier.Id] = supplier.Name
		allActiveIds = append(allActiveIds, supplier.Id)
	}
	sort.Slice(allActiveIds, func(i, j int) bool { return allActiveIds[i] < allActiveIds[j] })

	winners := make([]entity.AllocationWinner, 0, len(pending))
	processedIds := make([]int64, 0, len(pending))
	skippedIds := make([]int64, 0)
	buckets := make(map[int64]*entity.SupplierAllocation)
	bucketOrder := make([]int64, 0)

	for _, request := range pending {
		processedIds = append(processedIds, request.Id)

		candidates := request.CandidateSupplierIds
		if len(candidates) == 0 {
			candidates = allActiveIds
		}

		winnerId, winnerPrice, found := lowestBid(bids[request.Id], candidates)
		if !found {
			skippedIds = append(skippedIds, request.Id)
			continue
		}

		winners = append(winners, entity.AllocationWinner{
			RequestId:  request.Id,
			ProductId:  request.ProductId,
			SupplierId: winnerId,
			Price:      winnerPrice,
		})

		subtotal := winnerPrice.Mul(decimal.NewFromInt(int64(request.Quantity)))
		bucket, ok := buckets[winnerId]
		if !ok {
			bucket = &entity.SupplierAllocation{
				SupplierId:   winnerId,
				SupplierName: supplierNames[winnerId],
				Items:        make([]entity.AllocationItem, 0),
				Total:        decimal.Zero,
			}
			buckets[winnerId] = bucket
			bucketOrder = append(bucketOrder, winnerId)
		}

		bucket.Items = append(bucket.Items, entity.AllocationItem{
			RequestId:   request.Id,
			ProductId:   request.ProductId,
			ProductName: request.ProductName,
			Quantity:    request.Quantity,
			Price:       winnerPrice,
			Subtotal:    subtotal,
		})
		bucket.Total = bucket.Total.Add(subtotal)
	}

	if err = s.quotationRepo.PersistAllocationBatch(ctx, winners, processedIds); err != nil {
		return nil, err
	}

	report := &entity.AllocationReport{
		BatchId:           uuid.NewString(),
		Suppliers:         make([]entity.SupplierAllocation, 0, len(bucketOrder)),
		ProcessedCount:    len(processedIds),
		AllocatedCount:    len(winners),
		SkippedRequestIds: skippedIds,
	}
	for _, supplierId := range bucketOrder {
		report.Suppliers = append(report.Suppliers, *buckets[supplierId])
	}
	sort.SliceStable(report.Suppliers, func(i, j int) bool {
		return report.Suppliers[i].Total.GreaterThan(report.Suppliers[j].Total)
	})

	if len(skippedIds) > 0 {
		logger.L().Warn("allocation batch skipped requests with no valid bid",
			zap.String("batchId", report.BatchId),
			zap.Int64s("requestIds", skippedIds),
		)
	}

	logger.L().Info("allocation batch processed",
		zap.String("batchId", report.BatchId),
		zap.Int("processed", report.ProcessedCount),
		zap.Int("allocated", report.AllocatedCount),
		zap.Int("skipped", len(skippedIds)),
	)

	return report, nil
}

// lowestBid scans the candidates in order and keeps the first strictly
// lowest valid bid. Absent, unparseable or non-positive entries are no bid.
func lowestBid(requestBids map[int64]string, candidates []int64) (int64, decimal.Decimal, bool) {
	var winnerId int64
	winnerPrice := decimal.Zero
	found := false

	for _, supplierId := range candidates {
		raw, ok := requestBids[supplierId]
		if !ok {
			continue
		}

		price, ok := ParsePrice(raw)
		if !ok || !price.IsPositive() {
			continue
		}

		if !found || price.LessThan(winnerPrice) {
			winnerId = supplierId
			winnerPrice = price
			found = true
		}
	}

	return winnerId, winnerPrice, found
}
