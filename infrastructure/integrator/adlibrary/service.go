package adlibrary

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/adlibraryclient"
	adlibdomain "github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/domain"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

const sourceTag = "ads_library"

// FetchResult carrega os anúncios já normalizados e os números reportados
// pela fonte, usados para observabilidade da ingestão.
type FetchResult struct {
	Ads       []*domain.RawAd
	Processed int
	Rejected  int
}

// Integrator busca anúncios na fonte externa e os normaliza para o domínio
// do pipeline. Registros com campos malformados não derrubam a ingestão:
// os campos viram nulos e o registro segue adiante.
type Integrator interface {
	FetchBrandAds(ctx context.Context, brand *domain.Brand, libraryURL string, filters *adlibraryclient.FetchFilters) (*FetchResult, error)
}

type AdLibraryIntegrator struct {
	cfg    *config.Config
	Client adlibraryclient.Client
}

func New(cfg *config.Config, client adlibraryclient.Client) *AdLibraryIntegrator {
	return &AdLibraryIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdLibraryIntegrator) FetchBrandAds(
	ctx context.Context,
	brand *domain.Brand,
	libraryURL string,
	filters *adlibraryclient.FetchFilters,
) (*FetchResult, error) {
	response, err := s.Client.FetchAds(ctx, libraryURL, filters)
	if err != nil {
		return nil, err
	}

	result := &FetchResult{
		Ads:       make([]*domain.RawAd, 0, len(response.Data)),
		Processed: response.Count,
	}

	if result.Processed == 0 {
		result.Processed = len(response.Data)
	}

	for _, record := range response.Data {
		ad := s.normalizeAd(brand.ID, record)
		if ad == nil {
			result.Rejected++
			continue
		}
		result.Ads = append(result.Ads, ad)
	}

	logrus.WithFields(logrus.Fields{
		"brand_id":  brand.ID,
		"fetched":   len(response.Data),
		"processed": result.Processed,
		"rejected":  result.Rejected,
	}).Info("adlibrary: anúncios buscados e normalizados")

	return result, nil
}

// normalizeAd converte um registro bruto da fonte. Sem ad_archive_id não há
// identidade para o upsert: o registro é rejeitado. Todo o resto é tolerado
// como nulo.
func (s *AdLibraryIntegrator) normalizeAd(brandID string, record adlibdomain.Ad) *domain.RawAd {
	if record.AdArchiveID == "" {
		logrus.WithField("brand_id", brandID).Warn("adlibrary: registro sem ad_archive_id descartado")
		return nil
	}

	ad := &domain.RawAd{
		AdArchiveID:  record.AdArchiveID,
		BrandID:      brandID,
		PageID:       nilIfEmpty(record.PageID),
		PageName:     nilIfEmpty(record.PageName),
		LinkURL:      nilIfEmpty(record.LinkURL),
		StartDate:    parseSourceDate(record.StartDate),
		EndDate:      parseSourceDate(record.EndDate),
		CreationDate: parseSourceDate(record.CreationDate),
		Media:        record.Media,
		Source:       sourceTag,
	}

	return ad
}

// parseSourceDate aceita YYYY-MM-DD; qualquer outra coisa vira nulo, porque
// data malformada não pode derrubar a ingestão.
func parseSourceDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("adlibrary: data malformada ignorada")
		return nil
	}

	parsed = parsed.UTC()
	return &parsed
}

func nilIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
