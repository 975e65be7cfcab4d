package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

func TestBuildRawAdUpsert(t *testing.T) {
	pageID := "PG001"
	pageName := "Loja A"
	linkURL := "https://loja.com/oferta"
	startDate := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	ads := []*domain.RawAd{
		{
			AdArchiveID: "AD001",
			BrandID:     "BRD001",
			PageID:      &pageID,
			PageName:    &pageName,
			LinkURL:     &linkURL,
			StartDate:   &startDate,
			EndDate:     &endDate,
			Media:       map[string]string{"image": "https://cdn.x/1.jpg"},
			Source:      "ads_library",
		},
		{
			AdArchiveID: "AD002",
			BrandID:     "BRD001",
			Source:      "ads_library",
		},
	}

	query, args, err := buildRawAdUpsert(ads)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO raw_ads")
	assert.Contains(t, query, "ON CONFLICT (ad_archive_id) DO UPDATE")

	// Reexecutar a ingestão sobre o mesmo lote precisa convergir para o mesmo
	// conjunto de linhas: toda coluna de valor é substituída pela linha nova
	for _, column := range []string{
		"brand_id", "page_id", "page_name", "link_url",
		"start_date", "end_date", "creation_date", "media", "source",
	} {
		assert.Contains(t, query, column+" = EXCLUDED."+column)
	}
	assert.Contains(t, query, "updated_at = NOW()")

	// Dois anúncios, dez colunas cada, placeholders em formato Dollar
	require.Len(t, args, 20)
	assert.Contains(t, query, "$20")
	assert.Equal(t, "AD001", args[0])
	assert.Equal(t, "AD002", args[10])

	mediaJSON, ok := args[8].([]byte)
	require.True(t, ok)
	assert.JSONEq(t, `{"image":"https://cdn.x/1.jpg"}`, string(mediaJSON))

	// Media ausente vira NULL, não um objeto vazio
	assert.Nil(t, args[18])
}

func TestBuildRawAdUpsert_Deterministic(t *testing.T) {
	startDate := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	ads := []*domain.RawAd{
		{AdArchiveID: "AD001", BrandID: "BRD001", StartDate: &startDate, Source: "ads_library"},
		{AdArchiveID: "AD002", BrandID: "BRD001", Source: "ads_library"},
	}

	firstQuery, firstArgs, err := buildRawAdUpsert(ads)
	require.NoError(t, err)

	secondQuery, secondArgs, err := buildRawAdUpsert(ads)
	require.NoError(t, err)

	assert.Equal(t, firstQuery, secondQuery)
	assert.Equal(t, firstArgs, secondArgs)
}

func TestRawAdRepository_UpsertBatch_EmptyBatch(t *testing.T) {
	repo := &rawAdRepository{}

	affected, err := repo.UpsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
