package service

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/pkg/jwtutil"

	"github.com/shopspring/decimal"
)

type Diagnostics interface {
	Ping() error
}

type Auth interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password, fullName string) (*entity.UserOutputModel, error)
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
}

type Product interface {
	CreateProduct(ctx context.Context, input *entity.CreateProductInput) (*entity.ProductOutputModel, error)
	RenameProduct(ctx context.Context, id int64, name string) (*entity.ProductOutputModel, error)
	ListProducts(ctx context.Context) ([]entity.ProductOutputModel, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type Supplier interface {
	CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (*entity.SupplierOutputModel, error)
	RenameSupplier(ctx context.Context, id int64, name string) (*entity.SupplierOutputModel, error)
	ListSuppliers(ctx context.Context) ([]entity.SupplierOutputModel, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

type Request interface {
	CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (*entity.RequestOutputModel, error)
	ListPendingRequests(ctx context.Context) ([]entity.RequestOutputModel, error)
	DeleteRequest(ctx context.Context, id int64) error
}

type Quotation interface {
	RecordForRequest(ctx context.Context, requestId, supplierId int64, price string) (*entity.QuotationOutputModel, error)
	History(ctx context.Context, filter *entity.QuotationFilter) (*entity.QuotationHistory, error)
	DeleteQuotation(ctx context.Context, id int64) error
}

// Pricing is the price history aggregator: per-product averages and
// per-quotation deviation classification, recomputed from full history on
// every call.
type Pricing interface {
	AveragePrice(ctx context.Context, productId int64) (decimal.Decimal, bool, error)
	ClassifyDeviation(ctx context.Context, quotation *entity.Quotation) (*entity.PriceDeviation, error)
}

// Scoring ranks active suppliers by a composite 0-10 score.
type Scoring interface {
	RankSuppliers(ctx context.Context) ([]entity.ScoreRecord, error)
}

// Allocation runs one lowest-price-wins batch over all pending requests.
type Allocation interface {
	RunBatch(ctx context.Context, bids entity.BidMatrix) (*entity.AllocationReport, error)
}

type Dashboard interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type Services struct {
	Diagnostics Diagnostics
	Auth        Auth
	Product     Product
	Supplier    Supplier
	Request     Request
	Quotation   Quotation
	Pricing     Pricing
	Scoring     Scoring
	Allocation  Allocation
	Dashboard   Dashboard
}

func NewServices(repos *repo.Repositories, jwt *jwtutil.JWTUtil) *Services {
	pricing := NewPricingService(repos)

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auth:        NewAuthService(repos, jwt),
		Product:     NewProductService(repos),
		Supplier:    NewSupplierService(repos),
		Request:     NewRequestService(repos),
		Quotation:   NewQuotationService(repos, pricing),
		Pricing:     pricing,
		Scoring:     NewScoringService(repos),
		Allocation:  NewAllocationService(repos),
		Dashboard:   NewDashboardService(repos),
	}
}
