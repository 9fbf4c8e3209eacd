package commissioning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de comissões
var (
	// Erros de validação
	ErrSaleIDsRequired       = errors.New("sale IDs are required")
	ErrCommissionIDsRequired = errors.New("commission IDs are required")
	ErrSellerRequired        = errors.New("seller is required")
	ErrInvalidPercent        = errors.New("commission percent must be between 0 and 100")
	ErrInvalidStatus         = errors.New("invalid commission status")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// CommissionError é um erro com contexto adicional para comissões
type CommissionError struct {
	Err     error
	Code    string
	Details string
}

func (e *CommissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CommissionError) Unwrap() error {
	return e.Err
}

func (e *CommissionError) APICode() string {
	return e.Code
}

func (e *CommissionError) APIMessage() string {
	return e.Details
}

func NewCommissionError(err error, code string, details string) *CommissionError {
	return &CommissionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
