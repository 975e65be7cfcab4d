package summarizing

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

// CreativeAggregator recomputa o sumário de cadência criativa de uma marca:
// uma linha por (marca, mês) com contagem de criativos distintos e total de
// dias ativos recortado nas bordas do mês.
type CreativeAggregator interface {
	RecomputeBrand(ctx context.Context, brand *domain.Brand) (int, error)
}

type CreativeService struct {
	rawAdRepo   repository.RawAdRepository
	summaryRepo repository.CreativeSummaryRepository
	now         func() time.Time
}

func NewCreativeService(
	rawAdRepo repository.RawAdRepository,
	summaryRepo repository.CreativeSummaryRepository,
) *CreativeService {
	return &CreativeService{
		rawAdRepo:   rawAdRepo,
		summaryRepo: summaryRepo,
		now:         time.Now,
	}
}

// RecomputeBrand é idempotente: com os mesmos dados brutos, duas execuções
// produzem linhas idênticas, substituídas por inteiro via upsert. Retorna o
// número de linhas gravadas.
func (s *CreativeService) RecomputeBrand(ctx context.Context, brand *domain.Brand) (int, error) {
	ads, err := s.rawAdRepo.ListByBrand(ctx, brand.ID)
	if err != nil {
		return 0, errors.Wrap(domain.ErrPersistence, err.Error())
	}

	now := s.now().UTC()

	type bucket struct {
		creatives  map[string]struct{}
		activeDays int
	}
	buckets := map[time.Time]*bucket{}

	for _, ad := range ads {
		start, end, ok := adSpan(ad, now)
		if !ok {
			// Sem start_date nem creation_date não há mês para ancorar
			continue
		}

		for _, month := range overlappedMonths(start, end) {
			b, exists := buckets[month]
			if !exists {
				b = &bucket{creatives: map[string]struct{}{}}
				buckets[month] = b
			}

			b.creatives[ad.AdArchiveID] = struct{}{}
			b.activeDays += activeDaysInMonth(month, start, end)
		}
	}

	months := make([]time.Time, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	written := 0
	for _, month := range months {
		b := buckets[month]

		summary := &domain.CreativeSummary{
			BrandID:         brand.ID,
			Month:           month,
			CreativesCount:  len(b.creatives),
			TotalActiveDays: b.activeDays,
			AdsLibraryURL:   brand.AdsLibraryURL,
		}

		if err := s.summaryRepo.SaveOrUpdate(ctx, summary); err != nil {
			return written, errors.Wrap(domain.ErrPersistence, err.Error())
		}
		written++
	}

	logrus.WithFields(logrus.Fields{
		"brand_id": brand.ID,
		"ads":      len(ads),
		"months":   written,
	}).Info("sumário criativo recomputado")

	return written, nil
}
