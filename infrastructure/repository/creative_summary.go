package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/competitor-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

const (
	creativeSummariesTable = "creative_summaries cs"
)

type CreativeSummaryRepository interface {
	SaveOrUpdate(ctx context.Context, summary *domain.CreativeSummary) error
	GetByBrandAndMonth(ctx context.Context, brandID string, month time.Time) (*domain.CreativeSummary, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.CreativeSummary, error)
}

type creativeSummaryRepository struct {
	conn *postgres.Connection
}

func NewCreativeSummaryRepository(conn *postgres.Connection) CreativeSummaryRepository {
	return &creativeSummaryRepository{
		conn: conn,
	}
}

// SaveOrUpdate substitui a linha inteira em caso de conflito em
// (brand_id, month). Sumários são projeções recomputadas, nunca contadores
// incrementados.
func (r *creativeSummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.CreativeSummary) error {
	query := squirrel.StatementBuilder.
		Insert("creative_summaries").
		Columns("brand_id", "month", "creatives_count", "total_active_days", "ads_library_url").
		Values(
			summary.BrandID,
			summary.Month,
			summary.CreativesCount,
			summary.TotalActiveDays,
			summary.AdsLibraryURL,
		).
		Suffix(`
			ON CONFLICT (brand_id, month) DO UPDATE SET
				creatives_count = EXCLUDED.creatives_count,
				total_active_days = EXCLUDED.total_active_days,
				ads_library_url = EXCLUDED.ads_library_url,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *creativeSummaryRepository) GetByBrandAndMonth(ctx context.Context, brandID string, month time.Time) (*domain.CreativeSummary, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.brand_id, cs.month, cs.creatives_count, cs.total_active_days, cs.ads_library_url, cs.created_at, cs.updated_at").
		From(creativeSummariesTable).
		Where(squirrel.Eq{"cs.brand_id": brandID, "cs.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	summary := &domain.CreativeSummary{}
	err = row.Scan(
		&summary.ID,
		&summary.BrandID,
		&summary.Month,
		&summary.CreativesCount,
		&summary.TotalActiveDays,
		&summary.AdsLibraryURL,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear creative summary: %w", err)
	}

	return summary, nil
}

func (r *creativeSummaryRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.CreativeSummary, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.brand_id, cs.month, cs.creatives_count, cs.total_active_days, cs.ads_library_url, cs.created_at, cs.updated_at").
		From(creativeSummariesTable).
		Where(squirrel.Eq{"cs.brand_id": brandID}).
		OrderBy("cs.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	summaries := make([]*domain.CreativeSummary, 0)
	for rows.Next() {
		summary := &domain.CreativeSummary{}
		if err := rows.Scan(
			&summary.ID,
			&summary.BrandID,
			&summary.Month,
			&summary.CreativesCount,
			&summary.TotalActiveDays,
			&summary.AdsLibraryURL,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear creative summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
