package service

import (
	"quotation-management-api/internal/entity"
)

func mapProduct(p *entity.Product) *entity.ProductOutputModel {
	return &entity.ProductOutputModel{
		Id:        p.Id,
		Name:      p.Name,
		Category:  p.Category,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func mapProducts(products []entity.Product) []entity.ProductOutputModel {
	s := make([]entity.ProductOutputModel, 0)
	for i := range products {
		s = append(s, *mapProduct(&products[i]))
	}

	return s
}

func mapSupplier(sup *entity.Supplier) *entity.SupplierOutputModel {
	return &entity.SupplierOutputModel{
		Id:        sup.Id,
		Name:      sup.Name,
		Contact:   sup.Contact,
		Phone:     sup.Phone,
		Email:     sup.Email,
		Active:    sup.Active,
		CreatedAt: sup.CreatedAt,
	}
}

func mapSuppliers(suppliers []entity.Supplier) []entity.SupplierOutputModel {
	s := make([]entity.SupplierOutputModel, 0)
	for i := range suppliers {
		s = append(s, *mapSupplier(&suppliers[i]))
	}

	return s
}

func mapRequest(r *entity.Request) *entity.RequestOutputModel {
	candidates := r.CandidateSupplierIds
	if candidates == nil {
		candidates = make([]int64, 0)
	}

	return &entity.RequestOutputModel{
		Id:                   r.Id,
		ProductId:            r.ProductId,
		ProductName:          r.ProductName,
		Quantity:             r.Quantity,
		Status:               r.Status,
		Priority:             r.Priority,
		CreatedAt:            r.CreatedAt,
		CandidateSupplierIds: candidates,
	}
}

func mapRequests(requests []entity.Request) []entity.RequestOutputModel {
	s := make([]entity.RequestOutputModel, 0)
	for i := range requests {
		s = append(s, *mapRequest(&requests[i]))
	}

	return s
}

func mapQuotation(q *entity.Quotation) *entity.QuotationOutputModel {
	return &entity.QuotationOutputModel{
		Id:           q.Id,
		Price:        q.Price,
		Date:         q.Date,
		ProductId:    q.ProductId,
		ProductName:  q.ProductName,
		SupplierId:   q.SupplierId,
		SupplierName: q.SupplierName,
		RequestId:    q.RequestId,
		Status:       q.Status,
	}
}
