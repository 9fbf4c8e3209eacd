package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	productsTable = "products"
)

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Product, error)
}

type productRepository struct {
	db database.Queryer
	ph squirrel.PlaceholderFormat
}

func NewProductRepository(conn *database.Connection) ProductRepository {
	return &productRepository{
		db: conn,
		ph: conn.Placeholder(),
	}
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "name", "default_commission_percent", "active").
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Product, error) {
	builder := squirrel.
		Select("id", "name", "default_commission_percent", "active").
		From(productsTable).
		OrderBy("name ASC").
		PlaceholderFormat(r.ph)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func scanProduct(row scanner) (*domain.Product, error) {
	product := &domain.Product{}
	var percent decimal.NullDecimal

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&percent,
		&product.Active,
	); err != nil {
		return nil, err
	}

	if percent.Valid {
		product.DefaultCommissionPercent = &percent.Decimal
	}

	return product, nil
}
