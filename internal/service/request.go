package service

import (
	"context"
	"errors"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/internal/repo/repo_errors"
)

type RequestService struct {
	requestRepo  repo.Request
	productRepo  repo.Product
	supplierRepo repo.Supplier
}

func NewRequestService(repos *repo.Repositories) *RequestService {
	return &RequestService{
		requestRepo:  repos.Request,
		productRepo:  repos.Product,
		supplierRepo: repos.Supplier,
	}
}

// CreateRequest opens a new ask-for-quote. Candidate suppliers must be active
// at selection time; an empty candidate set means "all active suppliers" and
// stays empty in storage.
func (s *RequestService) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (*entity.RequestOutputModel, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if input.Priority == "" {
		input.Priority = common.PriorityNormal
	}

	_, err := s.productRepo.GetProductById(ctx, input.ProductId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	for _, supplierId := range input.CandidateSupplierIds {
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
	}

	requestId, err := s.requestRepo.CreateRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetRequestById(ctx, requestId)
	if err != nil {
		return nil, err
	}

	return mapRequest(request), nil
}

func (s *RequestService) ListPendingRequests(ctx context.Context) ([]entity.RequestOutputModel, error) {
	requests, err := s.requestRepo.ListPendingRequests(ctx)
	if err != nil {
		return nil, err
	}

	return mapRequests(requests), nil
}

// DeleteRequest removes a request and its candidate set, only while Pending.
func (s *RequestService) DeleteRequest(ctx context.Context, id int64) error {
	request, err := s.requestRepo.GetRequestById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrRequestNotFound
		}

		return err
	}

	if request.Status != common.Pending {
		return ErrRequestNotPending
	}

	return s.requestRepo.DeleteRequest(ctx, id)
}
