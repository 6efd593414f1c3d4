package service

import (
	"context"
	"errors"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/internal/repo/repo_errors"

	"github.com/shopspring/decimal"
)

type QuotationService struct {
	quotationRepo repo.Quotation
	requestRepo   repo.Request
	supplierRepo  repo.Supplier
	pricing       Pricing
}

func NewQuotationService(repos *repo.Repositories, pricing Pricing) *QuotationService {
	return &QuotationService{
		quotationRepo: repos.Quotation,
		requestRepo:   repos.Request,
		supplierRepo:  repos.Supplier,
		pricing:       pricing,
	}
}

// RecordForRequest records a single accepted quote against a pending request
// and moves the request to Quoted.
func (s *QuotationService) RecordForRequest(ctx context.Context, requestId, supplierId int64, price string) (*entity.QuotationOutputModel, error) {
	request, err := s.requestRepo.GetRequestById(ctx, requestId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRequestNotFound
		}

		return nil, err
	}
	if request.Status != common.Pending {
		return nil, ErrRequestNotPending
	}

	supplier, err := s.supplierRepo.GetSupplierById(ctx, supplierId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}

		return nil, err
	}
	if !supplier.Active {
		return nil, ErrSupplierInactive
	}

	parsed, ok := ParsePrice(price)
	if !ok || !parsed.IsPositive() {
		return nil, ErrInvalidPrice
	}

	quotationId, err := s.quotationRepo.InsertQuotation(ctx, &entity.CreateQuotationInput{
		ProductId:  request.ProductId,
		SupplierId: supplierId,
		Price:      parsed,
		RequestId:  &requestId,
	})
	if err != nil {
		return nil, err
	}

	quotation, err := s.quotationRepo.GetQuotationById(ctx, quotationId)
	if err != nil {
		return nil, err
	}

	return mapQuotation(quotation), nil
}

// History lists quotations matching the filter, newest first, with each row
// classified against its product's full price history, plus the filtered
// total and mean.
func (s *QuotationService) History(ctx context.Context, filter *entity.QuotationFilter) (*entity.QuotationHistory, error) {
	quotations, err := s.quotationRepo.ListQuotations(ctx, filter)
	if err != nil {
		return nil, err
	}

	history := &entity.QuotationHistory{
		Items:        make([]entity.QuotationOutputModel, 0, len(quotations)),
		Total:        decimal.Zero,
		AveragePrice: decimal.Zero,
	}

	for i := range quotations {
		item := mapQuotation(&quotations[i])

		deviation, err := s.pricing.ClassifyDeviation(ctx, &quotations[i])
		if err != nil {
			return nil, err
		}
		item.Deviation = deviation

		history.Items = append(history.Items, *item)
		history.Total = history.Total.Add(quotations[i].Price)
	}

	if len(quotations) > 0 {
		history.AveragePrice = history.Total.
			Div(decimal.NewFromInt(int64(len(quotations)))).
			Round(2)
	}

	return history, nil
}

// DeleteQuotation removes one price fact; the originating request, if any,
// reopens to Pending.
func (s *QuotationService) DeleteQuotation(ctx context.Context, id int64) error {
	err := s.quotationRepo.DeleteQuotation(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrQuotationNotFound
		}

		return err
	}

	return nil
}
