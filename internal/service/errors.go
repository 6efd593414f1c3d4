package service

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrQuotationNotFound = errors.New("quotation not found")

	ErrProductAlreadyExists  = errors.New("product with given code already exists")
	ErrSupplierAlreadyExists = errors.New("supplier with given name already exists")
	ErrUserAlreadyExists     = errors.New("user with given username or email already exists")

	ErrProductHasHistory     = errors.New("product has quotation or request history and can't be deleted")
	ErrSupplierHasQuotations = errors.New("supplier has quotation history and can't be deleted")

	ErrRequestNotPending = errors.New("request is no longer pending")
	ErrSupplierInactive  = errors.New("supplier is not active")

	ErrInvalidProductCode = errors.New("product code must be a positive number")
	ErrInvalidPrice       = errors.New("price must be a positive number")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")

	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrNoPendingRequests = errors.New("there are no pending requests to allocate")
)
