package entity

// db model
type User struct {
	Id           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	FullName     string `json:"fullName" db:"full_name"`
	Active       bool   `json:"active" db:"active"`
	CreatedAt    string `json:"createdAt" db:"created_at"`
	LastAccess   string `json:"lastAccess" db:"last_access"`
}

// service + repo input model
type CreateUserInput struct {
	Username     string // given, unique
	Email        string // given, unique
	PasswordHash string // computed by the service from the plain password
	FullName     string // given, defaults to username
	// Active should be set: true
	// Id and CreatedAt set automatically
}

// controller model
type UserOutputModel struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
