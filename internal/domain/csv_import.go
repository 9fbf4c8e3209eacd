package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxImportErrors limita a quantidade de mensagens de erro guardadas por importação
const MaxImportErrors = 20

type CsvImportLog struct {
	ID         string    `json:"id"`
	Platform   Platform  `json:"platform"`
	Filename   string    `json:"filename"`
	FileHash   string    `json:"file_hash"`
	Processed  int       `json:"processed"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Failed     int       `json:"failed"`
	Errors     []string  `json:"errors"`
	ImportedBy *string   `json:"imported_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ColumnMapping associa cada campo lógico ao índice da coluna na planilha (nil = não mapeado)
type ColumnMapping struct {
	ExternalID   *int `json:"external_id"`
	ClientName   *int `json:"client_name"`
	ClientEmail  *int `json:"client_email"`
	ClientPhone  *int `json:"client_phone"`
	Product      *int `json:"product"`
	TotalValue   *int `json:"total_value"`
	Installments *int `json:"installments"`
	SaleDate     *int `json:"sale_date"`
}

// ImportDefaults substitui o estado de tela da importação por uma configuração explícita
type ImportDefaults struct {
	Platform          Platform
	SellerID          string
	CommissionPercent decimal.Decimal
	ProductName       string
	Filename          string
	FileHash          string
	ImportedBy        *string
	DryRun            bool
	Now               func() time.Time
}

type ImportResult struct {
	Processed        int      `json:"processed"`
	Created          int      `json:"created"`
	Updated          int      `json:"updated"`
	Failed           int      `json:"failed"`
	Skipped          int      `json:"skipped"`
	Duplicates       int      `json:"duplicates"`
	Errors           []string `json:"errors"`
	DryRun           bool     `json:"dry_run"`
	LogID            string   `json:"log_id,omitempty"`
	PreviousImportID string   `json:"previous_import_id,omitempty"`
}

type ImportPreview struct {
	Headers   []string      `json:"headers"`
	Mapping   ColumnMapping `json:"mapping"`
	Sample    [][]string    `json:"sample"`
	TotalRows int           `json:"total_rows"`
	FileHash  string        `json:"file_hash"`
}

// ImportRequest são as escolhas feitas na tela de importação
type ImportRequest struct {
	Platform          Platform         `json:"platform"`
	SellerID          string           `json:"seller_id"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	ProductID         string           `json:"product_id,omitempty"`
	Mapping           *ColumnMapping   `json:"mapping,omitempty"`
	DryRun            bool             `json:"dry_run"`
	ImportedBy        *string          `json:"-"`
}
