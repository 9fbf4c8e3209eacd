package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	csvImportsTable = "csv_imports"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var csvImportColumns = []string{
	"id",
	"platform",
	"filename",
	"file_hash",
	"processed",
	"created",
	"updated",
	"failed",
	"errors",
	"imported_by",
	"created_at",
}

//go:generate mockgen -source=csv_import.go -destination=mocks/csv_import.go -package=mocks

// CsvImportRepository é somente de inserção e leitura: o log de importação nunca é alterado
type CsvImportRepository interface {
	Create(ctx context.Context, log *domain.CsvImportLog) error
	GetByID(ctx context.Context, id string) (*domain.CsvImportLog, error)
	FindLatestByHash(ctx context.Context, fileHash string) (*domain.CsvImportLog, error)
	List(ctx context.Context, limit uint64) ([]*domain.CsvImportLog, error)
}

type csvImportRepository struct {
	db database.Queryer
	ph squirrel.PlaceholderFormat
}

func NewCsvImportRepository(conn *database.Connection) CsvImportRepository {
	return &csvImportRepository{
		db: conn,
		ph: conn.Placeholder(),
	}
}

func (r *csvImportRepository) Create(ctx context.Context, log *domain.CsvImportLog) error {
	errs := log.Errors
	if errs == nil {
		errs = []string{}
	}

	encodedErrors, err := json.MarshalToString(errs)
	if err != nil {
		return fmt.Errorf("erro ao serializar erros da importação: %w", err)
	}

	query, args, err := squirrel.
		Insert(csvImportsTable).
		Columns(csvImportColumns...).
		Values(
			log.ID,
			string(log.Platform),
			log.Filename,
			log.FileHash,
			log.Processed,
			log.Created,
			log.Updated,
			log.Failed,
			encodedErrors,
			log.ImportedBy,
			log.CreatedAt,
		).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir log de importação: %w", err)
	}

	return nil
}

func (r *csvImportRepository) GetByID(ctx context.Context, id string) (*domain.CsvImportLog, error) {
	return r.first(ctx, squirrel.Select(csvImportColumns...).
		From(csvImportsTable).
		Where(squirrel.Eq{"id": id}))
}

func (r *csvImportRepository) FindLatestByHash(ctx context.Context, fileHash string) (*domain.CsvImportLog, error) {
	return r.first(ctx, squirrel.Select(csvImportColumns...).
		From(csvImportsTable).
		Where(squirrel.Eq{"file_hash": fileHash}).
		OrderBy("created_at DESC").
		Limit(1))
}

func (r *csvImportRepository) first(ctx context.Context, builder squirrel.SelectBuilder) (*domain.CsvImportLog, error) {
	query, args, err := builder.PlaceholderFormat(r.ph).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	log, err := scanCsvImport(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar log de importação: %w", err)
	}

	return log, nil
}

func (r *csvImportRepository) List(ctx context.Context, limit uint64) ([]*domain.CsvImportLog, error) {
	builder := squirrel.
		Select(csvImportColumns...).
		From(csvImportsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(r.ph)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar logs de importação: %w", err)
	}
	defer rows.Close()

	logs := make([]*domain.CsvImportLog, 0)
	for rows.Next() {
		log, err := scanCsvImport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler log de importação: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func scanCsvImport(row scanner) (*domain.CsvImportLog, error) {
	log := &domain.CsvImportLog{}
	var encodedErrors string

	if err := row.Scan(
		&log.ID,
		&log.Platform,
		&log.Filename,
		&log.FileHash,
		&log.Processed,
		&log.Created,
		&log.Updated,
		&log.Failed,
		&encodedErrors,
		&log.ImportedBy,
		&log.CreatedAt,
	); err != nil {
		return nil, err
	}

	log.Errors = []string{}
	if encodedErrors != "" {
		if err := json.UnmarshalFromString(encodedErrors, &log.Errors); err != nil {
			return nil, fmt.Errorf("erro ao decodificar erros da importação: %w", err)
		}
	}

	return log, nil
}
