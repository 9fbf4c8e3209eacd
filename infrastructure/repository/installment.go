package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	installmentsTable = "installments"
)

var installmentColumns = []string{
	"id",
	"sale_id",
	"installment_number",
	"total_installments",
	"value",
	"due_date",
	"status",
	"paid_at",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=installment.go -destination=mocks/installment.go -package=mocks

type InstallmentRepository interface {
	CreateBatch(ctx context.Context, installments []*domain.Installment) error
	ListBySaleIDs(ctx context.Context, saleIDs []string) ([]*domain.Installment, error)
	UpdateStatusBySaleIDs(ctx context.Context, saleIDs []string, status domain.InstallmentStatus, now time.Time) (int64, error)
	MarkOverdue(ctx context.Context, today time.Time, now time.Time) (int64, error)
	DeleteBySaleIDs(ctx context.Context, saleIDs []string) (int64, error)
	WithTx(tx *sql.Tx) InstallmentRepository
}

type installmentRepository struct {
	db database.Queryer
	ph squirrel.PlaceholderFormat
}

func NewInstallmentRepository(conn *database.Connection) InstallmentRepository {
	return &installmentRepository{
		db: conn,
		ph: conn.Placeholder(),
	}
}

func (r *installmentRepository) WithTx(tx *sql.Tx) InstallmentRepository {
	return &installmentRepository{db: tx, ph: r.ph}
}

func (r *installmentRepository) CreateBatch(ctx context.Context, installments []*domain.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	query := squirrel.
		Insert(installmentsTable).
		Columns(installmentColumns...).
		PlaceholderFormat(r.ph)

	for _, inst := range installments {
		query = query.Values(
			inst.ID,
			inst.SaleID,
			inst.InstallmentNumber,
			inst.TotalInstallments,
			inst.Value,
			inst.DueDate,
			string(inst.Status),
			inst.PaidAt,
			inst.CreatedAt,
			inst.UpdatedAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir parcelas: %w", err)
	}

	return nil
}

func (r *installmentRepository) ListBySaleIDs(ctx context.Context, saleIDs []string) ([]*domain.Installment, error) {
	if len(saleIDs) == 0 {
		return []*domain.Installment{}, nil
	}

	query, args, err := squirrel.
		Select(installmentColumns...).
		From(installmentsTable).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		OrderBy("sale_id ASC", "installment_number ASC").
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar parcelas: %w", err)
	}
	defer rows.Close()

	installments := make([]*domain.Installment, 0)
	for rows.Next() {
		inst := &domain.Installment{}
		if err := rows.Scan(
			&inst.ID,
			&inst.SaleID,
			&inst.InstallmentNumber,
			&inst.TotalInstallments,
			&inst.Value,
			&inst.DueDate,
			&inst.Status,
			&inst.PaidAt,
			&inst.CreatedAt,
			&inst.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler parcela: %w", err)
		}
		installments = append(installments, inst)
	}

	return installments, rows.Err()
}

func (r *installmentRepository) UpdateStatusBySaleIDs(ctx context.Context, saleIDs []string, status domain.InstallmentStatus, now time.Time) (int64, error) {
	if len(saleIDs) == 0 {
		return 0, nil
	}

	return r.exec(ctx, squirrel.
		Update(installmentsTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		PlaceholderFormat(r.ph))
}

// MarkOverdue marca como vencidas as parcelas pendentes com vencimento anterior a today
func (r *installmentRepository) MarkOverdue(ctx context.Context, today time.Time, now time.Time) (int64, error) {
	return r.exec(ctx, squirrel.
		Update(installmentsTable).
		Set("status", string(domain.InstallmentStatusOverdue)).
		Set("updated_at", now).
		Where(squirrel.Eq{"status": string(domain.InstallmentStatusPending)}).
		Where(squirrel.Lt{"due_date": today}).
		PlaceholderFormat(r.ph))
}

func (r *installmentRepository) DeleteBySaleIDs(ctx context.Context, saleIDs []string) (int64, error) {
	if len(saleIDs) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Delete(installmentsTable).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir parcelas: %w", err)
	}

	return result.RowsAffected()
}

func (r *installmentRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar parcelas: %w", err)
	}

	return result.RowsAffected()
}
