package importing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de importação
var (
	// Erros de validação
	ErrEmptyFile          = errors.New("file has no rows")
	ErrInvalidFile        = errors.New("file could not be read")
	ErrFileTooLarge       = errors.New("file exceeds the upload limit")
	ErrExternalIDUnmapped = errors.New("external id column is not mapped")
	ErrTotalValueUnmapped = errors.New("total value column is not mapped")
	ErrMappingOutOfRange  = errors.New("mapped column is outside the header")
	ErrSellerRequired     = errors.New("seller is required")
	ErrInvalidPercent     = errors.New("commission percent must be between 0 and 100")
	ErrInvalidPlatform    = errors.New("invalid platform")
	ErrProductNotFound    = errors.New("product not found")
	ErrImportLogNotFound  = errors.New("import log not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrSaveImportLog     = errors.New("error saving import log")
)

// ImportError é um erro com contexto adicional para importações
type ImportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func (e *ImportError) APICode() string {
	return e.Code
}

func (e *ImportError) APIMessage() string {
	return e.Details
}

func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
