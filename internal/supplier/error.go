package supplier

import "errors"

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrCompanyExists    = errors.New("company name already registered")
)
