package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrInvalidPeriod     = errors.New("start month must not be after end month")
	ErrInvalidPlatform   = errors.New("invalid platform")
	ErrInvalidSortColumn = errors.New("invalid sort column")
	ErrInvalidFormat     = errors.New("invalid export format")

	// Erros de recurso
	ErrImportLogNotFound = errors.New("import log not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrExport            = errors.New("export generation error")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func (e *ReportError) APICode() string {
	return e.Code
}

func (e *ReportError) APIMessage() string {
	return e.Details
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
