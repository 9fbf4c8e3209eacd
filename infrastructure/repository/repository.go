// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrDuplicateExternalID = errors.New("já existe uma venda com este identificador externo")
)

const pqUniqueViolation = "23505"

// scanner abstrai *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	// modernc.org/sqlite não exporta o código estendido de forma estável entre versões
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
