package service

import (
	"context"
	"errors"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/internal/repo/repo_errors"
)

type SupplierService struct {
	supplierRepo repo.Supplier
}

func NewSupplierService(repos *repo.Repositories) *SupplierService {
	return &SupplierService{supplierRepo: repos.Supplier}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (*entity.SupplierOutputModel, error) {
	supplierId, err := s.supplierRepo.CreateSupplier(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrSupplierAlreadyExists
		}

		return nil, err
	}

	supplier, err := s.supplierRepo.GetSupplierById(ctx, supplierId)
	if err != nil {
		return nil, err
	}

	return mapSupplier(supplier), nil
}

func (s *SupplierService) RenameSupplier(ctx context.Context, id int64, name string) (*entity.SupplierOutputModel, error) {
	err := s.supplierRepo.RenameSupplier(ctx, id, name)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSupplierNotFound
		}
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrSupplierAlreadyExists
		}

		return nil, err
	}

	supplier, err := s.supplierRepo.GetSupplierById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapSupplier(supplier), nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]entity.SupplierOutputModel, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	return mapSuppliers(suppliers), nil
}

// DeleteSupplier rejects deletion while any quotation references the
// supplier.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	_, err := s.supplierRepo.GetSupplierById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrSupplierNotFound
		}

		return err
	}

	hasQuotations, err := s.supplierRepo.SupplierHasQuotations(ctx, id)
	if err != nil {
		return err
	}
	if hasQuotations {
		return ErrSupplierHasQuotations
	}

	return s.supplierRepo.DeleteSupplier(ctx, id)
}
