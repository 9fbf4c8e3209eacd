package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	// Erros de validação
	ErrSaleIDRequired       = errors.New("sale ID is required")
	ErrSaleIDsRequired      = errors.New("sale IDs are required")
	ErrClientNameRequired   = errors.New("client name is required")
	ErrInvalidTotalValue    = errors.New("total value must be greater than zero")
	ErrInvalidInstallments  = errors.New("installments count must be at least 1")
	ErrInvalidPlatform      = errors.New("invalid platform")
	ErrInvalidPercent       = errors.New("commission percent must be between 0 and 100")
	ErrInvalidAction        = errors.New("invalid bulk action")
	ErrSellerRequired       = errors.New("seller is required")
	ErrTransactionIDMissing = errors.New("transaction ID is required")
	ErrDuplicateExternalID  = errors.New("external ID already exists")

	// Erros de recurso
	ErrSaleNotFound        = errors.New("sale not found")
	ErrTransactionNotFound = errors.New("transaction not found on platform")

	// Erros de integração
	ErrPlatformLookup = errors.New("platform lookup failed")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error
	Code    string
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func (e *SaleError) APICode() string {
	return e.Code
}

func (e *SaleError) APIMessage() string {
	return e.Details
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
