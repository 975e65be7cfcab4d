package pipelining

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository/mocks"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	ingestingmocks "github.com/vfg2006/competitor-ads-api/internal/usecases/ingesting/mocks"
	summarizingmocks "github.com/vfg2006/competitor-ads-api/internal/usecases/summarizing/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pipeline.MaxConcurrentBrands = 2
	return cfg
}

func TestService_RunBrand(t *testing.T) {
	brand := &domain.Brand{
		ID:            "BRD001",
		Name:          "Loja A",
		AdsLibraryURL: stringPtr("https://www.facebook.com/ads/library/?view_all_page_id=123"),
		Status:        domain.BrandStatusActive,
	}

	tests := []struct {
		name     string
		opts     RunOptions
		setup    func(brandRepo *mocks.MockBrandRepository, ingestor *ingestingmocks.MockIngestor, creative *summarizingmocks.MockCreativeAggregator, funnel *summarizingmocks.MockFunnelAggregator)
		wantErr  bool
		wantStep domain.PipelineStep
		validate func(t *testing.T, result *domain.BrandPipelineResult)
	}{
		{
			name: "execução completa com ingestão",
			opts: RunOptions{WithIngest: true},
			setup: func(brandRepo *mocks.MockBrandRepository, ingestor *ingestingmocks.MockIngestor, creative *summarizingmocks.MockCreativeAggregator, funnel *summarizingmocks.MockFunnelAggregator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)
				ingestor.EXPECT().
					IngestBrandAds(gomock.Any(), gomock.Any()).
					Return(&domain.IngestionResult{BrandID: "BRD001", Inserted: 10, Processed: 10}, nil)
				creative.EXPECT().RecomputeBrand(gomock.Any(), brand).Return(3, nil)
				funnel.EXPECT().RecomputeBrand(gomock.Any(), brand).Return(7, nil)
			},
			wantStep: domain.PipelineStepDone,
			validate: func(t *testing.T, result *domain.BrandPipelineResult) {
				require.NotNil(t, result.Ingestion)
				assert.Equal(t, int64(10), result.Ingestion.Inserted)
				assert.Equal(t, 3, result.CreativeCount)
				assert.Equal(t, 7, result.FunnelCount)
				assert.True(t, result.Succeeded())
			},
		},
		{
			name: "sem ingestão recomputa só os sumários",
			opts: RunOptions{WithIngest: false},
			setup: func(brandRepo *mocks.MockBrandRepository, ingestor *ingestingmocks.MockIngestor, creative *summarizingmocks.MockCreativeAggregator, funnel *summarizingmocks.MockFunnelAggregator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)
				creative.EXPECT().RecomputeBrand(gomock.Any(), brand).Return(2, nil)
				funnel.EXPECT().RecomputeBrand(gomock.Any(), brand).Return(4, nil)
			},
			wantStep: domain.PipelineStepDone,
			validate: func(t *testing.T, result *domain.BrandPipelineResult) {
				assert.Nil(t, result.Ingestion)
				assert.True(t, result.Succeeded())
			},
		},
		{
			name: "falha na ingestão para na etapa ingesting",
			opts: RunOptions{WithIngest: true},
			setup: func(brandRepo *mocks.MockBrandRepository, ingestor *ingestingmocks.MockIngestor, creative *summarizingmocks.MockCreativeAggregator, funnel *summarizingmocks.MockFunnelAggregator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)
				ingestor.EXPECT().
					IngestBrandAds(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrSourceUnavailable)
			},
			wantErr:  true,
			wantStep: domain.PipelineStepIngesting,
		},
		{
			name: "falha no agregador de funil preserva o resultado do criativo",
			opts: RunOptions{WithIngest: false},
			setup: func(brandRepo *mocks.MockBrandRepository, ingestor *ingestingmocks.MockIngestor, creative *summarizingmocks.MockCreativeAggregator, funnel *summarizingmocks.MockFunnelAggregator) {
				brandRepo.EXPECT().GetByID(gomock.Any(), "BRD001").Return(brand, nil)
				creative.EXPECT().RecomputeBrand(gomock.Any(), brand).Return(5, nil)
				funnel.EXPECT().RecomputeBrand(gomock.Any(), brand).Return(0, errors.New("boom"))
			},
			wantErr:  true,
			wantStep: domain.PipelineStepAggregatingFunnel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBrandRepo := mocks.NewMockBrandRepository(ctrl)
			mockIngestor := ingestingmocks.NewMockIngestor(ctrl)
			mockCreative := summarizingmocks.NewMockCreativeAggregator(ctrl)
			mockFunnel := summarizingmocks.NewMockFunnelAggregator(ctrl)

			tt.setup(mockBrandRepo, mockIngestor, mockCreative, mockFunnel)

			service := NewService(testConfig(), mockBrandRepo, mockIngestor, mockCreative, mockFunnel)

			result, err := service.RunBrand(context.Background(), "BRD001", tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tt.wantStep, result.Step)
				assert.NotEmpty(t, result.Error)
				assert.False(t, result.Succeeded())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStep, result.Step)
			tt.validate(t, result)
		})
	}
}

func TestService_RunBrand_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBrandRepo := mocks.NewMockBrandRepository(ctrl)
	mockBrandRepo.EXPECT().GetByID(gomock.Any(), "BRD404").Return(nil, nil)

	service := NewService(
		testConfig(),
		mockBrandRepo,
		ingestingmocks.NewMockIngestor(ctrl),
		summarizingmocks.NewMockCreativeAggregator(ctrl),
		summarizingmocks.NewMockFunnelAggregator(ctrl),
	)

	_, err := service.RunBrand(context.Background(), "BRD404", RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestService_RunAllActiveBrands_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brandA := &domain.Brand{ID: "BRDA", Name: "Loja A", Status: domain.BrandStatusActive}
	brandB := &domain.Brand{ID: "BRDB", Name: "Loja B", Status: domain.BrandStatusActive}
	brandC := &domain.Brand{ID: "BRDC", Name: "Loja C", Status: domain.BrandStatusActive}

	mockBrandRepo := mocks.NewMockBrandRepository(ctrl)
	mockIngestor := ingestingmocks.NewMockIngestor(ctrl)
	mockCreative := summarizingmocks.NewMockCreativeAggregator(ctrl)
	mockFunnel := summarizingmocks.NewMockFunnelAggregator(ctrl)

	mockBrandRepo.EXPECT().
		ListBrands(gomock.Any(), []domain.BrandStatus{domain.BrandStatusActive}).
		Return([]*domain.Brand{brandA, brandB, brandC}, nil)

	// Marca B falha no agregador criativo; A e C completam normalmente
	mockCreative.EXPECT().
		RecomputeBrand(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, brand *domain.Brand) (int, error) {
			if brand.ID == "BRDB" {
				return 0, errors.New("deadlock detected")
			}
			return 2, nil
		}).
		Times(3)

	mockFunnel.EXPECT().
		RecomputeBrand(gomock.Any(), gomock.Any()).
		Return(3, nil).
		Times(2)

	service := NewService(testConfig(), mockBrandRepo, mockIngestor, mockCreative, mockFunnel)

	batch, err := service.RunAllActiveBrands(context.Background(), RunOptions{WithIngest: false})
	require.NoError(t, err)

	assert.Equal(t, 2, batch.Succeeded)
	assert.Equal(t, 1, batch.Failed)
	assert.Equal(t, 4, batch.TotalCreativeCount)
	assert.Equal(t, 6, batch.TotalFunnelCount)
	require.Len(t, batch.Brands, 3)

	// A ordem dos resultados segue a ordem das marcas, independente da
	// concorrência dos workers
	assert.Equal(t, "BRDA", batch.Brands[0].BrandID)
	assert.Equal(t, "BRDB", batch.Brands[1].BrandID)
	assert.Equal(t, "BRDC", batch.Brands[2].BrandID)

	assert.True(t, batch.Brands[0].Succeeded())
	assert.False(t, batch.Brands[1].Succeeded())
	// No modo batch o estado terminal de falha é por marca, distinto do
	// "failed" do modo direcionado
	assert.Equal(t, domain.PipelineStepFailedForBrand, batch.Brands[1].Step)
	assert.NotEmpty(t, batch.Brands[1].Error)
	assert.True(t, batch.Brands[2].Succeeded())
}

func TestService_RunAllActiveBrands_NoBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBrandRepo := mocks.NewMockBrandRepository(ctrl)
	mockBrandRepo.EXPECT().
		ListBrands(gomock.Any(), []domain.BrandStatus{domain.BrandStatusActive}).
		Return(nil, nil)

	service := NewService(
		testConfig(),
		mockBrandRepo,
		ingestingmocks.NewMockIngestor(ctrl),
		summarizingmocks.NewMockCreativeAggregator(ctrl),
		summarizingmocks.NewMockFunnelAggregator(ctrl),
	)

	batch, err := service.RunAllActiveBrands(context.Background(), RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, batch.Brands)
	assert.Equal(t, 0, batch.Succeeded)
	assert.Equal(t, 0, batch.Failed)
}
