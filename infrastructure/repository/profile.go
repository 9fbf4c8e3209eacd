package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	profilesTable = "profiles"
)

//go:generate mockgen -source=profile.go -destination=mocks/profile.go -package=mocks

// ProfileRepository lê os vendedores; o cadastro é feito pela plataforma de autenticação
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Profile, error)
}

type profileRepository struct {
	db database.Queryer
	ph squirrel.PlaceholderFormat
}

func NewProfileRepository(conn *database.Connection) ProfileRepository {
	return &profileRepository{
		db: conn,
		ph: conn.Placeholder(),
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select("id", "full_name", "display_name", "email", "active").
		From(profilesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.ph).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile := &domain.Profile{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.DisplayName,
		&profile.Email,
		&profile.Active,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar vendedor: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Profile, error) {
	builder := squirrel.
		Select("id", "full_name", "display_name", "email", "active").
		From(profilesTable).
		OrderBy("full_name ASC").
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
		return nil, fmt.Errorf("erro ao listar vendedores: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile := &domain.Profile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.FullName,
			&profile.DisplayName,
			&profile.Email,
			&profile.Active,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler vendedor: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
