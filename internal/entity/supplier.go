package entity

// db model
type Supplier struct {
	Id        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Contact   string `json:"contact" db:"contact"`
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email" db:"email"`
	Active    bool   `json:"active" db:"active"`
	CreatedAt string `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateSupplierInput struct {
	Name    string // given, unique among suppliers
	Contact string // given
	Phone   string // given
	Email   string // given
	// Active should be set: true
	// Id and CreatedAt set automatically
}

// controller model
type SupplierOutputModel struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}
