package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/competitor-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

const (
	rawAdsTable = "raw_ads ra"
)

type RawAdRepository interface {
	UpsertBatch(ctx context.Context, ads []*domain.RawAd) (int64, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.RawAd, error)
	ListByBrandAndPeriod(ctx context.Context, brandID string, startDate, endDate time.Time) ([]*domain.RawAd, error)
}

type rawAdRepository struct {
	conn *postgres.Connection
}

func NewRawAdRepository(conn *postgres.Connection) RawAdRepository {
	return &rawAdRepository{
		conn: conn,
	}
}

// UpsertBatch grava o lote inteiro dentro de uma única transação: ou todos os
// anúncios são aplicados, ou nenhum. O conflito é resolvido apenas por
// ad_archive_id (last-write-wins, substituição da linha inteira).
func (r *rawAdRepository) UpsertBatch(ctx context.Context, ads []*domain.RawAd) (int64, error) {
	if len(ads) == 0 {
		return 0, nil
	}

	var affected int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sqlQuery, args, err := buildRawAdUpsert(ads)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// buildRawAdUpsert monta o INSERT multi-VALUES com resolução de conflito por
// ad_archive_id: toda coluna de valor é substituída pela linha mais recente,
// o que torna a ingestão idempotente sobre o mesmo conjunto de anúncios.
func buildRawAdUpsert(ads []*domain.RawAd) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert("raw_ads").
		Columns("ad_archive_id", "brand_id", "page_id", "page_name", "link_url", "start_date", "end_date", "creation_date", "media", "source").
		PlaceholderFormat(squirrel.Dollar)

	for _, ad := range ads {
		var mediaJSON []byte
		if ad.Media != nil {
			serialized, err := json.Marshal(ad.Media)
			if err != nil {
				return "", nil, fmt.Errorf("erro ao serializar media para JSON: %w", err)
			}
			mediaJSON = serialized
		}

		query = query.Values(
			ad.AdArchiveID,
			ad.BrandID,
			ad.PageID,
			ad.PageName,
			ad.LinkURL,
			ad.StartDate,
			ad.EndDate,
			ad.CreationDate,
			mediaJSON,
			ad.Source,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (ad_archive_id) DO UPDATE SET
			brand_id = EXCLUDED.brand_id,
			page_id = EXCLUDED.page_id,
			page_name = EXCLUDED.page_name,
			link_url = EXCLUDED.link_url,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			creation_date = EXCLUDED.creation_date,
			media = EXCLUDED.media,
			source = EXCLUDED.source,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

func (r *rawAdRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.RawAd, error) {
	return r.listAds(ctx, squirrel.Eq{"ra.brand_id": brandID}, nil)
}

// ListByBrandAndPeriod retorna os anúncios com qualquer sobreposição com o
// período: start_date <= fim E (end_date nulo OU end_date >= início).
func (r *rawAdRepository) ListByBrandAndPeriod(ctx context.Context, brandID string, startDate, endDate time.Time) ([]*domain.RawAd, error) {
	overlap := squirrel.And{
		squirrel.LtOrEq{"ra.start_date": endDate},
		squirrel.Or{
			squirrel.Eq{"ra.end_date": nil},
			squirrel.GtOrEq{"ra.end_date": startDate},
		},
	}

	return r.listAds(ctx, squirrel.Eq{"ra.brand_id": brandID}, overlap)
}

func (r *rawAdRepository) listAds(ctx context.Context, whereClause map[string]interface{}, extraClause squirrel.Sqlizer) ([]*domain.RawAd, error) {
	queryBuilder := squirrel.
		Select("ra.ad_archive_id, ra.brand_id, ra.page_id, ra.page_name, ra.link_url, ra.start_date, ra.end_date, ra.creation_date, ra.media, ra.source, ra.created_at, ra.updated_at").
		From(rawAdsTable).
		Where(whereClause).
		OrderBy("ra.start_date ASC NULLS LAST, ra.ad_archive_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if extraClause != nil {
		queryBuilder = queryBuilder.Where(extraClause)
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

	ads := make([]*domain.RawAd, 0)
	for rows.Next() {
		ad, err := r.scanRawAd(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear raw ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *rawAdRepository) scanRawAd(rows *sql.Rows) (*domain.RawAd, error) {
	ad := &domain.RawAd{}
	var mediaJSON []byte

	err := rows.Scan(
		&ad.AdArchiveID,
		&ad.BrandID,
		&ad.PageID,
		&ad.PageName,
		&ad.LinkURL,
		&ad.StartDate,
		&ad.EndDate,
		&ad.CreationDate,
		&mediaJSON,
		&ad.Source,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if mediaJSON != nil {
		media := map[string]string{}
		if err := json.Unmarshal(mediaJSON, &media); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de media: %w", err)
		}
		ad.Media = media
	}

	return ad, nil
}
