package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/competitor-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

const (
	brandsTable = "brands b"
)

type BrandRepository interface {
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	GetByName(ctx context.Context, name string) (*domain.Brand, error)
	ListBrands(ctx context.Context, availableStatus []domain.BrandStatus) ([]*domain.Brand, error)
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	return r.getBrand(ctx, squirrel.Eq{"b.id": brandID})
}

func (r *brandRepository) GetByName(ctx context.Context, name string) (*domain.Brand, error) {
	return r.getBrand(ctx, squirrel.Eq{"b.name": name})
}

func (r *brandRepository) getBrand(ctx context.Context, whereClause map[string]interface{}) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.ads_library_url, b.status, b.created_at, b.updated_at").
		From(brandsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	brand, err := r.scanBrand(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear marca: %w", err)
	}

	return brand, nil
}

func (r *brandRepository) ListBrands(ctx context.Context, availableStatus []domain.BrandStatus) ([]*domain.Brand, error) {
	queryBuilder := squirrel.
		Select("b.id, b.name, b.ads_library_url, b.status, b.created_at, b.updated_at").
		From(brandsTable).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand := &domain.Brand{}
		if err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&brand.AdsLibraryURL,
			&brand.Status,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear marca: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}

func (r *brandRepository) scanBrand(row *sql.Row) (*domain.Brand, error) {
	brand := &domain.Brand{}

	err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.AdsLibraryURL,
		&brand.Status,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return brand, nil
}
