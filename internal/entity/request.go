package entity

// db model. CandidateSupplierIds holds the many-to-many association rows,
// always sorted ascending by supplier id. An empty set means "all active
// suppliers" by convention.
type Request struct {
	Id                   int64   `json:"id" db:"id"`
	ProductId            int64   `json:"productId" db:"product_id"`
	ProductName          string  `json:"productName" db:"product_name"`
	Quantity             int     `json:"quantity" db:"quantity"`
	Status               string  `json:"status" db:"status"`
	Priority             string  `json:"priority" db:"priority"`
	CreatedAt            string  `json:"createdAt" db:"created_at"`
	CandidateSupplierIds []int64 `json:"candidateSupplierIds"`
}

// service + repo input model
type CreateRequestInput struct {
	ProductId            int64   // given
	Quantity             int     // given, >= 1
	Priority             string  // given, defaults to "Normal"
	CandidateSupplierIds []int64 // given, may be empty
	// Status should be set: "Pending"
	// Id and CreatedAt set automatically
}

// controller model
type RequestOutputModel struct {
	Id                   int64   `json:"id"`
	ProductId            int64   `json:"productId"`
	ProductName          string  `json:"productName"`
	Quantity             int     `json:"quantity"`
	Status               string  `json:"status"`
	Priority             string  `json:"priority"`
	CreatedAt            string  `json:"createdAt"`
	CandidateSupplierIds []int64 `json:"candidateSupplierIds"`
}
