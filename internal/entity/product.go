package entity

// db model
type Product struct {
	Id        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Category  string `json:"category" db:"category"`
	Active    bool   `json:"active" db:"active"`
	CreatedAt string `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateProductInput struct {
	Id       int64  // given, caller-assigned positive product code
	Name     string // given
	Category string // given, defaults to "Geral"
	// Active should be set: true
	// CreatedAt sets automatically
}

// controller model
type ProductOutputModel struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}
