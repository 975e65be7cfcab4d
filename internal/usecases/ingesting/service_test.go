package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/adlibraryclient"
	adlibrarymocks "github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/mocks"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AdLibrary.DefaultLookbackMonths = 12
	return cfg
}

func TestService_IngestBrandAds(t *testing.T) {
	brand := &domain.Brand{
		ID:            "BRD001",
		Name:          "Loja A",
		AdsLibraryURL: stringPtr("https://www.facebook.com/ads/library/?view_all_page_id=123"),
		Status:        domain.BrandStatusActive,
	}

	sampleAds := []*domain.RawAd{
		{AdArchiveID: "AD001", BrandID: "BRD001"},
		{AdArchiveID: "AD002", BrandID: "BRD001"},
	}

	tests := []struct {
		name     string
		req      *domain.IngestionRequest
		setup    func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator)
		wantErr  error
		validate func(t *testing.T, result *domain.IngestionResult)
	}{
		{
			name: "datas explícitas são repassadas como filtros para a fonte",
			req: &domain.IngestionRequest{
				BrandID:   stringPtr("BRD001"),
				StartDate: stringPtr("2025-01-01"),
				EndDate:   stringPtr("2025-01-31"),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)

				integrator.EXPECT().
					FetchBrandAds(gomock.Any(), brand, *brand.AdsLibraryURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *domain.Brand, _ string, filters *adlibraryclient.FetchFilters) (*adlibrary.FetchResult, error) {
						require.NotNil(t, filters.StartDate)
						require.NotNil(t, filters.EndDate)
						assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
						assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), *filters.EndDate)
						assert.Nil(t, filters.Count)

						return &adlibrary.FetchResult{Ads: sampleAds, Processed: 2, Rejected: 0}, nil
					})

				rawAdRepo.EXPECT().UpsertBatch(gomock.Any(), sampleAds).Return(int64(2), nil)
			},
			validate: func(t *testing.T, result *domain.IngestionResult) {
				assert.Equal(t, "BRD001", result.BrandID)
				assert.Equal(t, int64(2), result.Inserted)
				assert.Equal(t, 2, result.Processed)
				assert.Equal(t, 0, result.Rejected)
			},
		},
		{
			name: "count é usado quando não há datas",
			req: &domain.IngestionRequest{
				BrandID: stringPtr("BRD001"),
				Count:   intPtr(50),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)

				integrator.EXPECT().
					FetchBrandAds(gomock.Any(), brand, *brand.AdsLibraryURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *domain.Brand, _ string, filters *adlibraryclient.FetchFilters) (*adlibrary.FetchResult, error) {
						assert.Nil(t, filters.StartDate)
						assert.Nil(t, filters.EndDate)
						require.NotNil(t, filters.Count)
						assert.Equal(t, 50, *filters.Count)

						return &adlibrary.FetchResult{Ads: nil, Processed: 0, Rejected: 0}, nil
					})

				rawAdRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Nil()).Return(int64(0), nil)
			},
			validate: func(t *testing.T, result *domain.IngestionResult) {
				assert.Equal(t, int64(0), result.Inserted)
			},
		},
		{
			name: "sem datas nem count aplica o lookback padrão",
			req: &domain.IngestionRequest{
				BrandID: stringPtr("BRD001"),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)

				integrator.EXPECT().
					FetchBrandAds(gomock.Any(), brand, *brand.AdsLibraryURL, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *domain.Brand, _ string, filters *adlibraryclient.FetchFilters) (*adlibrary.FetchResult, error) {
						require.NotNil(t, filters.StartDate)
						require.NotNil(t, filters.EndDate)

						// Janela de 12 meses terminando hoje
						expected := filters.EndDate.AddDate(0, -12, 0)
						assert.Equal(t, expected, *filters.StartDate)

						return &adlibrary.FetchResult{Ads: sampleAds, Processed: 2}, nil
					})

				rawAdRepo.EXPECT().UpsertBatch(gomock.Any(), sampleAds).Return(int64(2), nil)
			},
			validate: func(t *testing.T, result *domain.IngestionResult) {
				assert.Equal(t, int64(2), result.Inserted)
			},
		},
		{
			name: "marca sem ads_library_url é erro de configuração",
			req: &domain.IngestionRequest{
				BrandID: stringPtr("BRD002"),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().
					GetByID(gomock.Any(), "BRD002").
					Return(&domain.Brand{ID: "BRD002", Name: "Loja B"}, nil)
			},
			wantErr: domain.ErrConfiguration,
		},
		{
			name: "marca inexistente",
			req: &domain.IngestionRequest{
				BrandID: stringPtr("BRD404"),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD404").Return(nil, nil)
			},
			wantErr: domain.ErrBrandNotFound,
		},
		{
			name: "resolução por nome da marca",
			req: &domain.IngestionRequest{
				BrandName: stringPtr("Loja A"),
				Count:     intPtr(10),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().GetByName(gomock.Any(), "Loja A").Return(brand, nil)

				integrator.EXPECT().
					FetchBrandAds(gomock.Any(), brand, *brand.AdsLibraryURL, gomock.Any()).
					Return(&adlibrary.FetchResult{Ads: sampleAds, Processed: 2}, nil)

				rawAdRepo.EXPECT().UpsertBatch(gomock.Any(), sampleAds).Return(int64(2), nil)
			},
			validate: func(t *testing.T, result *domain.IngestionResult) {
				assert.Equal(t, "BRD001", result.BrandID)
			},
		},
		{
			name: "start_date mal formatada é rejeitada antes de chamar a fonte",
			req: &domain.IngestionRequest{
				BrandID:   stringPtr("BRD001"),
				StartDate: stringPtr("31/01/2025"),
				EndDate:   stringPtr("2025-02-28"),
			},
			setup: func(brandRepo *mocks.MockBrandRepository, rawAdRepo *mocks.MockRawAdRepository, integrator *adlibrarymocks.MockIntegrator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)
			},
			wantErr: domain.ErrMalformedSourceData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBrandRepo := mocks.NewMockBrandRepository(ctrl)
			mockRawAdRepo := mocks.NewMockRawAdRepository(ctrl)
			mockIntegrator := adlibrarymocks.NewMockIntegrator(ctrl)

			tt.setup(mockBrandRepo, mockRawAdRepo, mockIntegrator)

			service := NewService(testConfig(), mockBrandRepo, mockRawAdRepo, mockIntegrator)

			result, err := service.IngestBrandAds(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}
