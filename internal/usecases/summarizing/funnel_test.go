package summarizing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestFunnelService_RecomputeBrand(t *testing.T) {
	brand := &domain.Brand{ID: "BRD001", Name: "Loja A"}

	tests := []struct {
		name     string
		ads      []*domain.RawAd
		validate func(t *testing.T, written []*domain.FunnelSummary)
	}{
		{
			name: "URLs que diferem só em tracking colapsam na mesma linha",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD001",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("https://loja.com/oferta?utm_source=facebook&fbclid=AAA"),
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 10),
				},
				{
					AdArchiveID: "AD002",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("https://www.loja.com/oferta/?utm_source=instagram"),
					StartDate:   datePtr(2025, time.January, 8),
					EndDate:     datePtr(2025, time.January, 12),
				},
			},
			validate: func(t *testing.T, written []*domain.FunnelSummary) {
				require.Len(t, written, 1)

				row := written[0]
				assert.Equal(t, "https://loja.com/oferta", row.FunnelURL)
				assert.Equal(t, "loja.com", row.FunnelDomain)
				require.NotNil(t, row.FunnelPath)
				assert.Equal(t, "/oferta", *row.FunnelPath)
				assert.Equal(t, 2, row.CreativesCount)
				require.NotNil(t, row.FunnelType)
				assert.Equal(t, domain.FunnelTypeLandingPage, *row.FunnelType)
			},
		},
		{
			name: "campaign_info mesclado é o do primeiro anúncio em ordem de archive id",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD020",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("https://loja.com/oferta?utm_campaign=segunda"),
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 6),
				},
				{
					AdArchiveID: "AD010",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("https://loja.com/oferta?utm_campaign=primeira"),
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 6),
				},
			},
			validate: func(t *testing.T, written []*domain.FunnelSummary) {
				require.Len(t, written, 1)
				assert.Equal(t, map[string]string{"utm_campaign": "primeira"}, written[0].CampaignInfo)
			},
		},
		{
			name: "anúncios sem link_url ou com URL inválida ficam fora do sumário",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD030",
					BrandID:     "BRD001",
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 6),
				},
				{
					AdArchiveID: "AD031",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("/caminho/sem/host"),
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 6),
				},
				{
					AdArchiveID: "AD032",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("https://loja.com/valida"),
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 6),
				},
			},
			validate: func(t *testing.T, written []*domain.FunnelSummary) {
				require.Len(t, written, 1)
				assert.Equal(t, "https://loja.com/valida", written[0].FunnelURL)
				assert.Equal(t, 1, written[0].CreativesCount)
			},
		},
		{
			name: "anúncio que cruza o mês gera uma linha por mês para a mesma URL",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD040",
					BrandID:     "BRD001",
					LinkURL:     stringPtr("https://bit.ly/abc"),
					StartDate:   datePtr(2025, time.January, 20),
					EndDate:     datePtr(2025, time.February, 10),
				},
			},
			validate: func(t *testing.T, written []*domain.FunnelSummary) {
				require.Len(t, written, 2)

				assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), written[0].Month)
				assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), written[1].Month)

				for _, row := range written {
					require.NotNil(t, row.FunnelType)
					assert.Equal(t, domain.FunnelTypeTrackingLink, *row.FunnelType)
					require.NotNil(t, row.FunnelPath)
					assert.Equal(t, "/abc", *row.FunnelPath)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRawAdRepo := mocks.NewMockRawAdRepository(ctrl)
			mockSummaryRepo := mocks.NewMockFunnelSummaryRepository(ctrl)

			mockRawAdRepo.EXPECT().
				ListByBrand(gomock.Any(), "BRD001").
				Return(tt.ads, nil)

			var written []*domain.FunnelSummary
			mockSummaryRepo.EXPECT().
				SaveOrUpdate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, summary *domain.FunnelSummary) error {
					written = append(written, summary)
					return nil
				}).
				AnyTimes()

			service := &FunnelService{
				rawAdRepo:   mockRawAdRepo,
				summaryRepo: mockSummaryRepo,
				now:         fixedNow,
			}

			count, err := service.RecomputeBrand(context.Background(), brand)
			require.NoError(t, err)
			assert.Equal(t, len(written), count)

			tt.validate(t, written)
		})
	}
}

func TestFunnelService_RecomputeBrand_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRawAdRepo := mocks.NewMockRawAdRepository(ctrl)
	mockSummaryRepo := mocks.NewMockFunnelSummaryRepository(ctrl)

	mockRawAdRepo.EXPECT().
		ListByBrand(gomock.Any(), "BRD001").
		Return(nil, errors.New("timeout"))

	service := &FunnelService{
		rawAdRepo:   mockRawAdRepo,
		summaryRepo: mockSummaryRepo,
		now:         fixedNow,
	}

	_, err := service.RecomputeBrand(context.Background(), &domain.Brand{ID: "BRD001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
