package cataloging

import (
	"errors"
	"fmt"
)

var (
	ErrFetchSellers  = errors.New("error fetching sellers from database")
	ErrFetchProducts = errors.New("error fetching products from database")
)

// CatalogError é um erro com contexto adicional para vendedores e produtos
type CatalogError struct {
	Err     error
	Code    string
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func (e *CatalogError) APICode() string {
	return e.Code
}

func (e *CatalogError) APIMessage() string {
	return e.Details
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
