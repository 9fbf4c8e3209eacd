package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	commissionsTable = "commissions"
)

var commissionColumns = []string{
	"id",
	"installment_id",
	"sale_id",
	"seller_id",
	"commission_percent",
	"commission_value",
	"competence_month",
	"status",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=commission.go -destination=mocks/commission.go -package=mocks

type CommissionRepository interface {
	CreateBatch(ctx context.Context, commissions []*domain.Commission) error
	ListBySaleIDs(ctx context.Context, saleIDs []string) ([]*domain.Commission, error)
	ListPendingBySaleIDs(ctx context.Context, saleIDs []string) ([]*domain.PendingCommission, error)
	ListDetails(ctx context.Context, filters domain.ReportFilters) ([]*domain.CommissionDetail, error)
	UpdateAssignment(ctx context.Context, id string, sellerID string, percent, value decimal.Decimal, now time.Time) error
	UpdateStatus(ctx context.Context, ids []string, status domain.CommissionStatus, now time.Time) (int64, error)
	UpdateStatusBySaleIDs(ctx context.Context, saleIDs []string, status domain.CommissionStatus, now time.Time) (int64, error)
	DeleteBySaleIDs(ctx context.Context, saleIDs []string) (int64, error)
	WithTx(tx *sql.Tx) CommissionRepository
}

type commissionRepository struct {
	db database.Queryer
	ph squirrel.PlaceholderFormat
}

func NewCommissionRepository(conn *database.Connection) CommissionRepository {
	return &commissionRepository{
		db: conn,
		ph: conn.Placeholder(),
	}
}

func (r *commissionRepository) WithTx(tx *sql.Tx) CommissionRepository {
	return &commissionRepository{db: tx, ph: r.ph}
}

func (r *commissionRepository) CreateBatch(ctx context.Context, commissions []*domain.Commission) error {
	if len(commissions) == 0 {
		return nil
	}

	query := squirrel.
		Insert(commissionsTable).
		Columns(commissionColumns...).
		PlaceholderFormat(r.ph)

	for _, c := range commissions {
		query = query.Values(
			c.ID,
			c.InstallmentID,
			c.SaleID,
			c.SellerID,
			c.CommissionPercent,
			c.CommissionValue,
			c.CompetenceMonth,
			string(c.Status),
			c.CreatedAt,
			c.UpdatedAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir comissões: %w", err)
	}

	return nil
}

func (r *commissionRepository) ListBySaleIDs(ctx context.Context, saleIDs []string) ([]*domain.Commission, error) {
	if len(saleIDs) == 0 {
		return []*domain.Commission{}, nil
	}

	query, args, err := squirrel.
		Select(commissionColumns...).
		From(commissionsTable).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		OrderBy("sale_id ASC", "competence_month ASC").
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar comissões: %w", err)
	}
	defer rows.Close()

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler comissão: %w", err)
		}
		commissions = append(commissions, c)
	}

	return commissions, rows.Err()
}

// ListPendingBySaleIDs retorna as comissões pendentes com o valor da parcela de origem
func (r *commissionRepository) ListPendingBySaleIDs(ctx context.Context, saleIDs []string) ([]*domain.PendingCommission, error) {
	if len(saleIDs) == 0 {
		return []*domain.PendingCommission{}, nil
	}

	columns := make([]string, 0, len(commissionColumns)+1)
	for _, col := range commissionColumns {
		columns = append(columns, "c."+col)
	}
	columns = append(columns, "i.value")

	query, args, err := squirrel.
		Select(columns...).
		From("commissions c").
		Join("installments i ON i.id = c.installment_id").
		Where(squirrel.Eq{"c.sale_id": saleIDs}).
		Where(squirrel.Eq{"c.status": string(domain.CommissionStatusPending)}).
		OrderBy("c.sale_id ASC", "i.installment_number ASC").
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar comissões pendentes: %w", err)
	}
	defer rows.Close()

	pending := make([]*domain.PendingCommission, 0)
	for rows.Next() {
		c := &domain.Commission{}
		var installmentValue decimal.Decimal
		if err := rows.Scan(
			&c.ID,
			&c.InstallmentID,
			&c.SaleID,
			&c.SellerID,
			&c.CommissionPercent,
			&c.CommissionValue,
			&c.CompetenceMonth,
			&c.Status,
			&c.CreatedAt,
			&c.UpdatedAt,
			&installmentValue,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler comissão pendente: %w", err)
		}
		pending = append(pending, &domain.PendingCommission{Commission: c, InstallmentValue: installmentValue})
	}

	return pending, rows.Err()
}

// ListDetails retorna as comissões achatadas com parcela, venda e vendedor para os relatórios
func (r *commissionRepository) ListDetails(ctx context.Context, filters domain.ReportFilters) ([]*domain.CommissionDetail, error) {
	queryBuilder := squirrel.
		Select(
			"c.id",
			"c.sale_id",
			"s.external_id",
			"s.client_name",
			"s.product_name",
			"s.platform",
			"s.total_value",
			"s.sale_date",
			"COALESCE(c.seller_id, '')",
			"COALESCE(NULLIF(p.display_name, ''), p.full_name, '')",
			"i.installment_number",
			"i.total_installments",
			"i.value",
			"i.due_date",
			"i.status",
			"c.commission_percent",
			"c.commission_value",
			"c.competence_month",
			"c.status",
		).
		From("commissions c").
		Join("installments i ON i.id = c.installment_id").
		Join("sales s ON s.id = c.sale_id").
		LeftJoin("profiles p ON p.id = c.seller_id").
		OrderBy("c.competence_month ASC", "s.sale_date ASC", "s.external_id ASC", "i.installment_number ASC").
		PlaceholderFormat(r.ph)

	if !filters.StartMonth.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"c.competence_month": filters.StartMonth})
	}
	if !filters.EndMonth.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"c.competence_month": filters.EndMonth})
	}
	if filters.Platform != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.platform": string(*filters.Platform)})
	}
	if filters.SellerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.seller_id": *filters.SellerID})
	}
	if filters.Product != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.product_name": *filters.Product})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar detalhes de comissões: %w", err)
	}
	defer rows.Close()

	details := make([]*domain.CommissionDetail, 0)
	for rows.Next() {
		d := &domain.CommissionDetail{}
		if err := rows.Scan(
			&d.CommissionID,
			&d.SaleID,
			&d.ExternalID,
			&d.ClientName,
			&d.ProductName,
			&d.Platform,
			&d.SaleTotalValue,
			&d.SaleDate,
			&d.SellerID,
			&d.SellerName,
			&d.InstallmentNumber,
			&d.TotalInstallments,
			&d.InstallmentValue,
			&d.DueDate,
			&d.InstallmentStatus,
			&d.CommissionPercent,
			&d.CommissionValue,
			&d.CompetenceMonth,
			&d.CommissionStatus,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler detalhe de comissão: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *commissionRepository) UpdateAssignment(ctx context.Context, id string, sellerID string, percent, value decimal.Decimal, now time.Time) error {
	query, args, err := squirrel.
		Update(commissionsTable).
		Set("seller_id", sellerID).
		Set("commission_percent", percent).
		Set("commission_value", value).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar comissão: %w", err)
	}

	return nil
}

// UpdateStatus altera o status das comissões informadas, ignorando as canceladas
func (r *commissionRepository) UpdateStatus(ctx context.Context, ids []string, status domain.CommissionStatus, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	return r.exec(ctx, squirrel.
		Update(commissionsTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"status": string(domain.CommissionStatusCancelled)}).
		PlaceholderFormat(r.ph))
}

func (r *commissionRepository) UpdateStatusBySaleIDs(ctx context.Context, saleIDs []string, status domain.CommissionStatus, now time.Time) (int64, error) {
	if len(saleIDs) == 0 {
		return 0, nil
	}

	return r.exec(ctx, squirrel.
		Update(commissionsTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		PlaceholderFormat(r.ph))
}

func (r *commissionRepository) DeleteBySaleIDs(ctx context.Context, saleIDs []string) (int64, error) {
	if len(saleIDs) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Delete(commissionsTable).
		Where(squirrel.Eq{"sale_id": saleIDs}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir comissões: %w", err)
	}

	return result.RowsAffected()
}

func (r *commissionRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar comissões: %w", err)
	}

	return result.RowsAffected()
}

func scanCommission(row scanner) (*domain.Commission, error) {
	c := &domain.Commission{}

	if err := row.Scan(
		&c.ID,
		&c.InstallmentID,
		&c.SaleID,
		&c.SellerID,
		&c.CommissionPercent,
		&c.CommissionValue,
		&c.CompetenceMonth,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return c, nil
}
