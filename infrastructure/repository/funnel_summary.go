package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/competitor-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

const (
	funnelSummariesTable = "funnel_summaries fs"
)

type FunnelSummaryRepository interface {
	SaveOrUpdate(ctx context.Context, summary *domain.FunnelSummary) error
	ListByBrand(ctx context.Context, brandID string) ([]*domain.FunnelSummary, error)
}

type funnelSummaryRepository struct {
	conn *postgres.Connection
}

func NewFunnelSummaryRepository(conn *postgres.Connection) FunnelSummaryRepository {
	return &funnelSummaryRepository{
		conn: conn,
	}
}

// SaveOrUpdate substitui a linha inteira em caso de conflito em
// (brand_id, month, funnel_url), com campaign_info serializado em jsonb.
func (r *funnelSummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.FunnelSummary) error {
	var campaignInfoJSON []byte
	var err error

	if summary.CampaignInfo != nil {
		campaignInfoJSON, err = json.Marshal(summary.CampaignInfo)
		if err != nil {
			return fmt.Errorf("erro ao serializar campaign_info para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("funnel_summaries").
		Columns("brand_id", "month", "funnel_url", "funnel_domain", "funnel_path", "funnel_type", "campaign_info", "creatives_count", "ads_library_url").
		Values(
			summary.BrandID,
			summary.Month,
			summary.FunnelURL,
			summary.FunnelDomain,
			summary.FunnelPath,
			summary.FunnelType,
			campaignInfoJSON,
			summary.CreativesCount,
			summary.AdsLibraryURL,
		).
		Suffix(`
			ON CONFLICT (brand_id, month, funnel_url) DO UPDATE SET
				funnel_domain = EXCLUDED.funnel_domain,
				funnel_path = EXCLUDED.funnel_path,
				funnel_type = EXCLUDED.funnel_type,
				campaign_info = EXCLUDED.campaign_info,
				creatives_count = EXCLUDED.creatives_count,
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

func (r *funnelSummaryRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.FunnelSummary, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.brand_id, fs.month, fs.funnel_url, fs.funnel_domain, fs.funnel_path, fs.funnel_type, fs.campaign_info, fs.creatives_count, fs.ads_library_url, fs.created_at, fs.updated_at").
		From(funnelSummariesTable).
		Where(squirrel.Eq{"fs.brand_id": brandID}).
		OrderBy("fs.month ASC, fs.funnel_url ASC").
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

	summaries := make([]*domain.FunnelSummary, 0)
	for rows.Next() {
		summary, err := r.scanFunnelSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear funnel summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *funnelSummaryRepository) scanFunnelSummary(rows *sql.Rows) (*domain.FunnelSummary, error) {
	summary := &domain.FunnelSummary{}
	var campaignInfoJSON []byte

	err := rows.Scan(
		&summary.ID,
		&summary.BrandID,
		&summary.Month,
		&summary.FunnelURL,
		&summary.FunnelDomain,
		&summary.FunnelPath,
		&summary.FunnelType,
		&campaignInfoJSON,
		&summary.CreativesCount,
		&summary.AdsLibraryURL,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if campaignInfoJSON != nil {
		campaignInfo := map[string]string{}
		if err := json.Unmarshal(campaignInfoJSON, &campaignInfo); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de campaign_info: %w", err)
		}
		summary.CampaignInfo = campaignInfo
	}

	return summary, nil
}
