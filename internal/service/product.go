package service

import (
	"context"
	"errors"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/internal/repo/repo_errors"
)

type ProductService struct {
	productRepo repo.Product
}

func NewProductService(repos *repo.Repositories) *ProductService {
	return &ProductService{productRepo: repos.Product}
}

func (s *ProductService) CreateProduct(ctx context.Context, input *entity.CreateProductInput) (*entity.ProductOutputModel, error) {
	if input.Id <= 0 {
		return nil, ErrInvalidProductCode
	}
	if input.Category == "" {
		input.Category = "Geral"
	}

	_, err := s.productRepo.CreateProduct(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrProductAlreadyExists
		}

		return nil, err
	}

	product, err := s.productRepo.GetProductById(ctx, input.Id)
	if err != nil {
		return nil, err
	}

	return mapProduct(product), nil
}

func (s *ProductService) RenameProduct(ctx context.Context, id int64, name string) (*entity.ProductOutputModel, error) {
	err := s.productRepo.RenameProduct(ctx, id, name)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	product, err := s.productRepo.GetProductById(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapProduct(product), nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]entity.ProductOutputModel, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	return mapProducts(products), nil
}

// DeleteProduct rejects deletion while any quotation or request references
// the product.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	_, err := s.productRepo.GetProductById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrProductNotFound
		}

		return err
	}

	hasHistory, err := s.productRepo.ProductHasHistory(ctx, id)
	if err != nil {
		return err
	}
	if hasHistory {
		return ErrProductHasHistory
	}

	return s.productRepo.DeleteProduct(ctx, id)
}
