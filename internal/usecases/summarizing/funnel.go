package summarizing

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/funneling"
)

// FunnelAggregator recomputa o sumário de funil de destino de uma marca:
// uma linha por (marca, mês, funnel_url normalizada), com classificação da
// URL pela tabela de regras de funneling.
type FunnelAggregator interface {
	RecomputeBrand(ctx context.Context, brand *domain.Brand) (int, error)
}

type FunnelService struct {
	rawAdRepo   repository.RawAdRepository
	summaryRepo repository.FunnelSummaryRepository
	now         func() time.Time
}

func NewFunnelService(
	rawAdRepo repository.RawAdRepository,
	summaryRepo repository.FunnelSummaryRepository,
) *FunnelService {
	return &FunnelService{
		rawAdRepo:   rawAdRepo,
		summaryRepo: summaryRepo,
		now:         time.Now,
	}
}

type funnelKey struct {
	month     time.Time
	funnelURL string
}

type funnelBucket struct {
	url       *funneling.FunnelURL
	creatives map[string]struct{}
	// campaign_info do primeiro anúncio (em ordem de archive id), para que a
	// linha mesclada seja determinística entre execuções
	campaignByAd map[string]map[string]string
}

// RecomputeBrand segue a mesma regra de sobreposição de meses do sumário
// criativo. Anúncios sem link_url ou com URL que não parseia ficam fora
// deste sumário (mas continuam contando no de criativos).
func (s *FunnelService) RecomputeBrand(ctx context.Context, brand *domain.Brand) (int, error) {
	ads, err := s.rawAdRepo.ListByBrand(ctx, brand.ID)
	if err != nil {
		return 0, errors.Wrap(domain.ErrPersistence, err.Error())
	}

	now := s.now().UTC()
	buckets := map[funnelKey]*funnelBucket{}
	skipped := 0

	for _, ad := range ads {
		if ad.LinkURL == nil || *ad.LinkURL == "" {
			skipped++
			continue
		}

		funnelURL, err := funneling.Normalize(*ad.LinkURL)
		if err != nil {
			skipped++
			continue
		}

		start, end, ok := adSpan(ad, now)
		if !ok {
			continue
		}

		for _, month := range overlappedMonths(start, end) {
			key := funnelKey{month: month, funnelURL: funnelURL.Normalized}

			b, exists := buckets[key]
			if !exists {
				b = &funnelBucket{
					url:          funnelURL,
					creatives:    map[string]struct{}{},
					campaignByAd: map[string]map[string]string{},
				}
				buckets[key] = b
			}

			b.creatives[ad.AdArchiveID] = struct{}{}
			b.campaignByAd[ad.AdArchiveID] = funneling.CampaignInfo(funnelURL)
		}
	}

	keys := make([]funnelKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].month.Equal(keys[j].month) {
			return keys[i].month.Before(keys[j].month)
		}
		return keys[i].funnelURL < keys[j].funnelURL
	})

	written := 0
	for _, key := range keys {
		b := buckets[key]
		funnelType := funneling.Classify(b.url)

		summary := &domain.FunnelSummary{
			BrandID:        brand.ID,
			Month:          key.month,
			FunnelURL:      key.funnelURL,
			FunnelDomain:   b.url.Domain,
			FunnelPath:     funnelPath(b.url),
			FunnelType:     &funnelType,
			CampaignInfo:   mergedCampaignInfo(b),
			CreativesCount: len(b.creatives),
			AdsLibraryURL:  brand.AdsLibraryURL,
		}

		if err := s.summaryRepo.SaveOrUpdate(ctx, summary); err != nil {
			return written, errors.Wrap(domain.ErrPersistence, err.Error())
		}
		written++
	}

	logrus.WithFields(logrus.Fields{
		"brand_id": brand.ID,
		"ads":      len(ads),
		"skipped":  skipped,
		"rows":     written,
	}).Info("sumário de funil recomputado")

	return written, nil
}

func funnelPath(u *funneling.FunnelURL) *string {
	if u.Path == "" || u.Path == "/" {
		return nil
	}
	path := u.Path
	return &path
}

// mergedCampaignInfo escolhe os parâmetros de campanha do primeiro anúncio
// do grupo em ordem de archive id: determinístico e estável entre execuções.
func mergedCampaignInfo(b *funnelBucket) map[string]string {
	ids := make([]string, 0, len(b.campaignByAd))
	for id := range b.campaignByAd {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if info := b.campaignByAd[id]; len(info) > 0 {
			return info
		}
	}

	return map[string]string{}
}
