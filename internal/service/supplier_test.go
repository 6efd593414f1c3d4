package service

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"testing"
)

func TestDeleteSupplierWithQuotationsRejected(t *testing.T) {
	supplierService := NewSupplierService(&repo.Repositories{
		Supplier: &fakeSupplierRepo{
			suppliers:     []entity.Supplier{{Id: 1, Name: "Acme", Active: true}},
			hasQuotations: map[int64]bool{1: true},
		},
	})

	if err := supplierService.DeleteSupplier(context.Background(), 1); err != ErrSupplierHasQuotations {
		t.Fatalf("err = %v, want ErrSupplierHasQuotations", err)
	}
}

func TestDeleteSupplier(t *testing.T) {
	supplierRepo := &fakeSupplierRepo{
		suppliers: []entity.Supplier{{Id: 1, Name: "Acme", Active: true}},
	}
	supplierService := NewSupplierService(&repo.Repositories{Supplier: supplierRepo})

	if err := supplierService.DeleteSupplier(context.Background(), 1); err != nil {
		t.Fatalf("DeleteSupplier failed: %v", err)
	}
	if len(supplierRepo.suppliers) != 0 {
		t.Errorf("supplier was not removed: %+v", supplierRepo.suppliers)
	}
}

func TestDeleteSupplierNotFound(t *testing.T) {
	supplierService := NewSupplierService(&repo.Repositories{Supplier: &fakeSupplierRepo{}})

	if err := supplierService.DeleteSupplier(context.Background(), 42); err != ErrSupplierNotFound {
		t.Fatalf("err = %v, want ErrSupplierNotFound", err)
	}
}
