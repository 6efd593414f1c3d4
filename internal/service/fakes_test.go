package service

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo/repo_errors"
)

// In-memory repository fakes used by the engine tests.

type fakeSupplierRepo struct {
	suppliers     []entity.Supplier
	hasQuotations map[int64]bool
}

func (f *fakeSupplierRepo) CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (int64, error) {
	id := int64(len(f.suppliers) + 1)
	f.suppliers = append(f.suppliers, entity.Supplier{
		Id:      id,
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Email:   input.Email,
		Active:  true,
	})

	return id, nil
}

func (f *fakeSupplierRepo) GetSupplierById(ctx context.Context, id int64) (*entity.Supplier, error) {
	for i := range f.suppliers {
		if f.suppliers[i].Id == id {
			return &f.suppliers[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeSupplierRepo) GetSupplierByName(ctx context.Context, name string) (*entity.Supplier, error) {
	for i := range f.suppliers {
		if f.suppliers[i].Name == name {
			return &f.suppliers[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeSupplierRepo) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeSupplierRepo) ListActiveSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	active := make([]entity.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		if s.Active {
			active = append(active, s)
		}
	}

	return active, nil
}

func (f *fakeSupplierRepo) RenameSupplier(ctx context.Context, id int64, name string) error {
	for i := range f.suppliers {
		if f.suppliers[i].Id == id {
			f.suppliers[i].Name = name
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

func (f *fakeSupplierRepo) DeleteSupplier(ctx context.Context, id int64) error {
	for i := range f.suppliers {
		if f.suppliers[i].Id == id {
			f.suppliers = append(f.suppliers[:i], f.suppliers[i+1:]...)
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

func (f *fakeSupplierRepo) SupplierHasQuotations(ctx context.Context, id int64) (bool, error) {
	return f.hasQuotations[id], nil
}

type fakeRequestRepo struct {
	requests []entity.Request
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (int64, error) {
	id := int64(len(f.requests) + 1)
	f.requests = append(f.requests, entity.Request{
		Id:                   id,
		ProductId:            input.ProductId,
		Quantity:             input.Quantity,
		Status:               "Pending",
		Priority:             input.Priority,
		CandidateSupplierIds: input.CandidateSupplierIds,
	})

	return id, nil
}

func (f *fakeRequestRepo) GetRequestById(ctx context.Context, id int64) (*entity.Request, error) {
	for i := range f.requests {
		if f.requests[i].Id == id {
			return &f.requests[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeRequestRepo) ListPendingRequests(ctx context.Context) ([]entity.Request, error) {
	pending := make([]entity.Request, 0, len(f.requests))
	for _, r := range f.requests {
		if r.Status == "Pending" {
			pending = append(pending, r)
		}
	}

	return pending, nil
}

func (f *fakeRequestRepo) UpdateRequestStatus(ctx context.Context, id int64, status string) error {
	for i := range f.requests {
		if f.requests[i].Id == id {
			f.requests[i].Status = status
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

func (f *fakeRequestRepo) DeleteRequest(ctx context.Context, id int64) error {
	for i := range f.requests {
		if f.requests[i].Id == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

type persistCall struct {
	winners             []entity.AllocationWinner
	processedRequestIds []int64
}

type fakeQuotationRepo struct {
	quotations   []entity.Quotation
	persistCalls []persistCall
}

func (f *fakeQuotationRepo) InsertQuotation(ctx context.Context, input *entity.CreateQuotationInput) (int64, error) {
	id := int64(len(f.quotations) + 1)
	f.quotations = append(f.quotations, entity.Quotation{
		Id:         id,
		Price:      input.Price,
		ProductId:  input.ProductId,
		SupplierId: input.SupplierId,
		RequestId:  input.RequestId,
		Status:     "Approved",
	})

	return id, nil
}

func (f *fakeQuotationRepo) GetQuotationById(ctx context.Context, id int64) (*entity.Quotation, error) {
	for i := range f.quotations {
		if f.quotations[i].Id == id {
			return &f.quotations[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (f *fakeQuotationRepo) GetQuotationsForProduct(ctx context.Context, productId int64) ([]entity.Quotation, error) {
	matched := make([]entity.Quotation, 0)
	for _, q := range f.quotations {
		if q.ProductId == productId {
			matched = append(matched, q)
		}
	}

	return matched, nil
}

func (f *fakeQuotationRepo) GetAllQuotations(ctx context.Context) ([]entity.Quotation, error) {
	return f.quotations, nil
}

func (f *fakeQuotationRepo) ListQuotations(ctx context.Context, filter *entity.QuotationFilter) ([]entity.Quotation, error) {
	matched := make([]entity.Quotation, 0)
	for _, q := range f.quotations {
		if filter.SupplierId != 0 && q.SupplierId != filter.SupplierId {
			continue
		}
		if filter.ProductId != 0 && q.ProductId != filter.ProductId {
			continue
		}
		if filter.DateFrom != "" && q.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && q.Date > filter.DateTo {
			continue
		}
		matched = append(matched, q)
	}

	return matched, nil
}

func (f *fakeQuotationRepo) DeleteQuotation(ctx context.Context, id int64) error {
	for i := range f.quotations {
		if f.quotations[i].Id == id {
			f.quotations = append(f.quotations[:i], f.quotations[i+1:]...)
			return nil
		}
	}

	return repo_errors.ErrNotFound
}

func (f *fakeQuotationRepo) PersistAllocationBatch(ctx context.Context, winners []entity.AllocationWinner, processedRequestIds []int64) error {
	f.persistCalls = append(f.persistCalls, persistCall{
		winners:             winners,
		processedRequestIds: processedRequestIds,
	})

	return nil
}
