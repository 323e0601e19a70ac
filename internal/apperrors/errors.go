package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks
// (malformed or negative amounts, unsupported currency codes, missing rates).
var ErrValidation = errors.New("validation error")

// ErrInvalidState indicates that an operation is not allowed in the entity's current state,
// e.g. depositing into an unassigned box or assigning a box that still holds money.
var ErrInvalidState = errors.New("invalid state")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
