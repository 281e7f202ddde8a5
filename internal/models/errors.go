package models

import "errors"

// Sentinel errors returned by the repository layer. Handlers translate them
// into the response envelope: a missing parent on a dependent write is a
// validation failure, a missing target of a read/update/delete is not found.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicateEmail   = errors.New("tenant with this email already exists")
)
