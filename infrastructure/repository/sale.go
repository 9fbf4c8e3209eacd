package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	salesTable = "sales"
)

var saleColumns = []string{
	"id",
	"external_id",
	"client_name",
	"client_email",
	"client_phone",
	"product_name",
	"total_value",
	"installments_count",
	"sale_date",
	"platform",
	"seller_id",
	"commission_percent",
	"status",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Sale, error)
	List(ctx context.Context, filters domain.SaleFilters) ([]*domain.Sale, error)
	UpdateImported(ctx context.Context, id string, update domain.SaleImportUpdate, now time.Time) error
	UpdateStatus(ctx context.Context, ids []string, status domain.SaleStatus, now time.Time) (int64, error)
	UpdateSeller(ctx context.Context, ids []string, sellerID string, percent *decimal.Decimal, now time.Time) (int64, error)
	Delete(ctx context.Context, ids []string) (int64, error)
	WithTx(tx *sql.Tx) SaleRepository
}

type saleRepository struct {
	db database.Queryer
	ph squirrel.PlaceholderFormat
}

func NewSaleRepository(conn *database.Connection) SaleRepository {
	return &saleRepository{
		db: conn,
		ph: conn.Placeholder(),
	}
}

func (r *saleRepository) WithTx(tx *sql.Tx) SaleRepository {
	return &saleRepository{db: tx, ph: r.ph}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns(saleColumns...).
		Values(
			sale.ID,
			sale.ExternalID,
			sale.ClientName,
			sale.ClientEmail,
			sale.ClientPhone,
			sale.ProductName,
			sale.TotalValue,
			sale.InstallmentsCount,
			sale.SaleDate,
			string(sale.Platform),
			sale.SellerID,
			sale.CommissionPercent,
			string(sale.Status),
			sale.UTMSource,
			sale.UTMMedium,
			sale.UTMCampaign,
			sale.CreatedAt,
			sale.UpdatedAt,
		).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateExternalID
		}
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	return r.get(ctx, squirrel.Eq{"id": id})
}

func (r *saleRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Sale, error) {
	return r.get(ctx, squirrel.Eq{"external_id": externalID})
}

func (r *saleRepository) get(ctx context.Context, where squirrel.Eq) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(where).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) List(ctx context.Context, filters domain.SaleFilters) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy("sale_date DESC", "created_at DESC").
		PlaceholderFormat(r.ph)

	if filters.Platform != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"platform": string(*filters.Platform)})
	}
	if filters.SellerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"seller_id": *filters.SellerID})
	}
	if filters.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": string(*filters.Status)})
	}
	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": *filters.StartDate})
	}
	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"sale_date": *filters.EndDate})
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.Expr("LOWER(client_name) LIKE ?", pattern),
			squirrel.Expr("LOWER(external_id) LIKE ?", pattern),
			squirrel.Expr("LOWER(COALESCE(client_email, '')) LIKE ?", pattern),
		})
	}
	if filters.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filters.Limit).Offset(filters.Offset)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func (r *saleRepository) UpdateImported(ctx context.Context, id string, update domain.SaleImportUpdate, now time.Time) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("client_name", update.ClientName).
		Set("client_email", update.ClientEmail).
		Set("client_phone", update.ClientPhone).
		Set("product_name", update.ProductName).
		Set("total_value", update.TotalValue).
		Set("installments_count", update.InstallmentsCount).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	return nil
}

func (r *saleRepository) UpdateStatus(ctx context.Context, ids []string, status domain.SaleStatus, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	return r.exec(ctx, squirrel.
		Update(salesTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(r.ph))
}

func (r *saleRepository) UpdateSeller(ctx context.Context, ids []string, sellerID string, percent *decimal.Decimal, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Update(salesTable).
		Set("seller_id", sellerID).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(r.ph)

	if percent != nil {
		builder = builder.Set("commission_percent", *percent)
	}

	return r.exec(ctx, builder)
}

func (r *saleRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir vendas: %w", err)
	}

	return result.RowsAffected()
}

func (r *saleRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar vendas: %w", err)
	}

	return result.RowsAffected()
}

func scanSale(row scanner) (*domain.Sale, error) {
	sale := &domain.Sale{}

	if err := row.Scan(
		&sale.ID,
		&sale.ExternalID,
		&sale.ClientName,
		&sale.ClientEmail,
		&sale.ClientPhone,
		&sale.ProductName,
		&sale.TotalValue,
		&sale.InstallmentsCount,
		&sale.SaleDate,
		&sale.Platform,
		&sale.SellerID,
		&sale.CommissionPercent,
		&sale.Status,
		&sale.UTMSource,
		&sale.UTMMedium,
		&sale.UTMCampaign,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return sale, nil
}
