package repo

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo/pgdb"
	"quotation-management-api/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateLastAccess(ctx context.Context, id int64) error
}

type Product interface {
	CreateProduct(ctx context.Context, input *entity.CreateProductInput) (int64, error)
	GetProductById(ctx context.Context, id int64) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)
	RenameProduct(ctx context.Context, id int64, name string) error
	DeleteProduct(ctx context.Context, id int64) error
	ProductHasHistory(ctx context.Context, id int64) (bool, error)
}

type Supplier interface {
	CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (int64, error)
	GetSupplierById(ctx context.Context, id int64) (*entity.Supplier, error)
	GetSupplierByName(ctx context.Context, name string) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	ListActiveSuppliers(ctx context.Context) ([]entity.Supplier, error)
	RenameSupplier(ctx context.Context, id int64, name string) error
	DeleteSupplier(ctx context.Context, id int64) error
	SupplierHasQuotations(ctx context.Context, id int64) (bool, error)
}

type Request interface {
	CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (int64, error)
	GetRequestById(ctx context.Context, id int64) (*entity.Request, error)
	ListPendingRequests(ctx context.Context) ([]entity.Request, error)
	UpdateRequestStatus(ctx context.Context, id int64, status string) error
	DeleteRequest(ctx context.Context, id int64) error
}

type Quotation interface {
	InsertQuotation(ctx context.Context, input *entity.CreateQuotationInput) (int64, error)
	GetQuotationById(ctx context.Context, id int64) (*entity.Quotation, error)
	GetQuotationsForProduct(ctx context.Context, productId int64) ([]entity.Quotation, error)
	GetAllQuotations(ctx context.Context) ([]entity.Quotation, error)
	ListQuotations(ctx context.Context, filter *entity.QuotationFilter) ([]entity.Quotation, error)
	DeleteQuotation(ctx context.Context, id int64) error
	PersistAllocationBatch(ctx context.Context, winners []entity.AllocationWinner, processedRequestIds []int64) error
}

type Stats interface {
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}

type Repositories struct {
	Diagnostics
	User
	Product
	Supplier
	Request
	Quotation
	Stats
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Product:     pgdb.NewProductRepo(p),
		Supplier:    pgdb.NewSupplierRepo(p),
		Request:     pgdb.NewRequestRepo(p),
		Quotation:   pgdb.NewQuotationRepo(p),
		Stats:       pgdb.NewStatsRepo(p),
	}
}
