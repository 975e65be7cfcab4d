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

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestCreativeService_RecomputeBrand(t *testing.T) {
	brand := &domain.Brand{ID: "BRD001", Name: "Loja A"}

	tests := []struct {
		name     string
		ads      []*domain.RawAd
		validate func(t *testing.T, written []*domain.CreativeSummary)
	}{
		{
			name: "anúncio que cruza a virada do mês contribui para os dois meses",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD001",
					BrandID:     "BRD001",
					StartDate:   datePtr(2025, time.January, 20),
					EndDate:     datePtr(2025, time.February, 10),
				},
			},
			validate: func(t *testing.T, written []*domain.CreativeSummary) {
				require.Len(t, written, 2)

				jan := written[0]
				assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), jan.Month)
				assert.Equal(t, 1, jan.CreativesCount)
				assert.Equal(t, 11, jan.TotalActiveDays)

				feb := written[1]
				assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), feb.Month)
				assert.Equal(t, 1, feb.CreativesCount)
				assert.Equal(t, 10, feb.TotalActiveDays)
			},
		},
		{
			name: "anúncio sem end_date conta até hoje",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD002",
					BrandID:     "BRD001",
					StartDate:   datePtr(2025, time.March, 10),
				},
			},
			validate: func(t *testing.T, written []*domain.CreativeSummary) {
				require.Len(t, written, 1)
				assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), written[0].Month)
				// 10/mar até now (15/mar 12h) = 5 dias completos
				assert.Equal(t, 5, written[0].TotalActiveDays)
			},
		},
		{
			name: "criativos distintos no mesmo mês são contados uma vez cada",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD003",
					BrandID:     "BRD001",
					StartDate:   datePtr(2025, time.January, 5),
					EndDate:     datePtr(2025, time.January, 8),
				},
				{
					AdArchiveID: "AD004",
					BrandID:     "BRD001",
					StartDate:   datePtr(2025, time.January, 10),
					EndDate:     datePtr(2025, time.January, 12),
				},
			},
			validate: func(t *testing.T, written []*domain.CreativeSummary) {
				require.Len(t, written, 1)
				assert.Equal(t, 2, written[0].CreativesCount)
				assert.Equal(t, 5, written[0].TotalActiveDays)
			},
		},
		{
			name: "fallback para creation_date quando start_date é nulo",
			ads: []*domain.RawAd{
				{
					AdArchiveID:  "AD005",
					BrandID:      "BRD001",
					CreationDate: datePtr(2025, time.February, 1),
					EndDate:      datePtr(2025, time.February, 4),
				},
			},
			validate: func(t *testing.T, written []*domain.CreativeSummary) {
				require.Len(t, written, 1)
				assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), written[0].Month)
				assert.Equal(t, 3, written[0].TotalActiveDays)
			},
		},
		{
			name: "anúncio sem nenhuma data é ignorado",
			ads: []*domain.RawAd{
				{AdArchiveID: "AD006", BrandID: "BRD001"},
			},
			validate: func(t *testing.T, written []*domain.CreativeSummary) {
				assert.Empty(t, written)
			},
		},
		{
			name: "end_date anterior ao start_date rende zero dias mas conta o criativo",
			ads: []*domain.RawAd{
				{
					AdArchiveID: "AD007",
					BrandID:     "BRD001",
					StartDate:   datePtr(2025, time.January, 10),
					EndDate:     datePtr(2025, time.January, 5),
				},
			},
			validate: func(t *testing.T, written []*domain.CreativeSummary) {
				require.Len(t, written, 1)
				assert.Equal(t, 1, written[0].CreativesCount)
				assert.Equal(t, 0, written[0].TotalActiveDays)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRawAdRepo := mocks.NewMockRawAdRepository(ctrl)
			mockSummaryRepo := mocks.NewMockCreativeSummaryRepository(ctrl)

			mockRawAdRepo.EXPECT().
				ListByBrand(gomock.Any(), "BRD001").
				Return(tt.ads, nil)

			var written []*domain.CreativeSummary
			mockSummaryRepo.EXPECT().
				SaveOrUpdate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, summary *domain.CreativeSummary) error {
					written = append(written, summary)
					return nil
				}).
				AnyTimes()

			service := &CreativeService{
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

func TestCreativeService_RecomputeBrand_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brand := &domain.Brand{ID: "BRD001", Name: "Loja A"}
	ads := []*domain.RawAd{
		{
			AdArchiveID: "AD001",
			BrandID:     "BRD001",
			StartDate:   datePtr(2025, time.January, 20),
			EndDate:     datePtr(2025, time.February, 10),
		},
		{
			AdArchiveID: "AD002",
			BrandID:     "BRD001",
			StartDate:   datePtr(2025, time.January, 2),
			EndDate:     datePtr(2025, time.January, 30),
		},
	}

	mockRawAdRepo := mocks.NewMockRawAdRepository(ctrl)
	mockSummaryRepo := mocks.NewMockCreativeSummaryRepository(ctrl)

	mockRawAdRepo.EXPECT().
		ListByBrand(gomock.Any(), "BRD001").
		Return(ads, nil).
		Times(2)

	var runs [][]*domain.CreativeSummary
	var current []*domain.CreativeSummary
	mockSummaryRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, summary *domain.CreativeSummary) error {
			current = append(current, summary)
			return nil
		}).
		AnyTimes()

	service := &CreativeService{
		rawAdRepo:   mockRawAdRepo,
		summaryRepo: mockSummaryRepo,
		now:         fixedNow,
	}

	for i := 0; i < 2; i++ {
		current = nil
		_, err := service.RecomputeBrand(context.Background(), brand)
		require.NoError(t, err)
		runs = append(runs, current)
	}

	require.Len(t, runs[0], 2)
	require.Len(t, runs[1], 2)

	// Mesmos dados de entrada produzem exatamente as mesmas linhas, na mesma ordem
	for i := range runs[0] {
		assert.Equal(t, runs[0][i].Month, runs[1][i].Month)
		assert.Equal(t, runs[0][i].CreativesCount, runs[1][i].CreativesCount)
		assert.Equal(t, runs[0][i].TotalActiveDays, runs[1][i].TotalActiveDays)
	}
}

func TestCreativeService_RecomputeBrand_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRawAdRepo := mocks.NewMockRawAdRepository(ctrl)
	mockSummaryRepo := mocks.NewMockCreativeSummaryRepository(ctrl)

	mockRawAdRepo.EXPECT().
		ListByBrand(gomock.Any(), "BRD001").
		Return(nil, errors.New("connection refused"))

	service := &CreativeService{
		rawAdRepo:   mockRawAdRepo,
		summaryRepo: mockSummaryRepo,
		now:         fixedNow,
	}

	_, err := service.RecomputeBrand(context.Background(), &domain.Brand{ID: "BRD001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
