package service

import (
	"errors"

	"gorm.io/gorm"
)

// Typed outcomes the HTTP layer translates to status codes, once per route.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("uniqueness violation")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// storeErr maps gorm's translated constraint errors into the service
// taxonomy. Anything unrecognized passes through as an unexpected error.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	default:
		return err
	}
}
