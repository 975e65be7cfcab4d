package ingesting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"github.com/vfg2006/competitor-ads-api/pkg/utils"
)

// Ingestor busca anúncios na fonte externa para uma marca e os grava por
// upsert de ad_archive_id. Re-ingestão do mesmo anúncio substitui a linha,
// nunca duplica.
type Ingestor interface {
	IngestBrandAds(ctx context.Context, req *domain.IngestionRequest) (*domain.IngestionResult, error)
}

type Service struct {
	cfg        *config.Config
	brandRepo  repository.BrandRepository
	rawAdRepo  repository.RawAdRepository
	integrator adlibrary.Integrator
}

func NewService(
	cfg *config.Config,
	brandRepo repository.BrandRepository,
	rawAdRepo repository.RawAdRepository,
	integrator adlibrary.Integrator,
) *Service {
	return &Service{
		cfg:        cfg,
		brandRepo:  brandRepo,
		rawAdRepo:  rawAdRepo,
		integrator: integrator,
	}
}

func (s *Service) IngestBrandAds(ctx context.Context, req *domain.IngestionRequest) (*domain.IngestionResult, error) {
	brand, err := s.resolveBrand(ctx, req)
	if err != nil {
		return nil, err
	}

	libraryURL := req.AdsLibraryURL
	if libraryURL == "" && brand.AdsLibraryURL != nil {
		libraryURL = *brand.AdsLibraryURL
	}
	if libraryURL == "" {
		return nil, errors.Wrapf(domain.ErrConfiguration, "marca %s sem ads_library_url", brand.ID)
	}

	filters, err := s.resolveFilters(req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"brand_id":   brand.ID,
		"brand_name": brand.Name,
	}).Info("ingestão: buscando anúncios na fonte externa")

	fetched, err := s.integrator.FetchBrandAds(ctx, brand, libraryURL, filters)
	if err != nil {
		return nil, err
	}

	// Lote inteiro em uma transação: ou tudo, ou nada
	inserted, err := s.rawAdRepo.UpsertBatch(ctx, fetched.Ads)
	if err != nil {
		return nil, errors.Wrap(domain.ErrPersistence, err.Error())
	}

	result := &domain.IngestionResult{
		BrandID:   brand.ID,
		Inserted:  inserted,
		Processed: fetched.Processed,
		Rejected:  fetched.Rejected,
	}

	logrus.WithFields(logrus.Fields{
		"brand_id":  brand.ID,
		"inserted":  result.Inserted,
		"processed": result.Processed,
		"rejected":  result.Rejected,
	}).Info("ingestão: lote de anúncios gravado")

	return result, nil
}

func (s *Service) resolveBrand(ctx context.Context, req *domain.IngestionRequest) (*domain.Brand, error) {
	var brand *domain.Brand
	var err error

	switch {
	case req.BrandID != nil && *req.BrandID != "":
		brand, err = s.brandRepo.GetByID(ctx, *req.BrandID)
	case req.BrandName != nil && *req.BrandName != "":
		brand, err = s.brandRepo.GetByName(ctx, *req.BrandName)
	default:
		return nil, errors.Wrap(domain.ErrBrandNotFound, "brand_id ou brand_name é obrigatório")
	}

	if err != nil {
		return nil, errors.Wrap(domain.ErrPersistence, err.Error())
	}
	if brand == nil {
		return nil, domain.ErrBrandNotFound
	}

	return brand, nil
}

// resolveFilters aplica a política de resolução de janela, em ordem de
// prioridade: datas explícitas, depois count, senão os últimos 12 meses
// (configurável) terminando hoje.
func (s *Service) resolveFilters(req *domain.IngestionRequest) (*adlibraryclient.FetchFilters, error) {
	startDate, err := utils.ParseOptionalDate(req.StartDate)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedSourceData, "start_date inválida: %v", err)
	}

	endDate, err := utils.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedSourceData, "end_date inválida: %v", err)
	}

	if startDate != nil && endDate != nil {
		return &adlibraryclient.FetchFilters{StartDate: startDate, EndDate: endDate}, nil
	}

	// Compatibilidade com gatilhos antigos: count = N anúncios mais recentes
	if req.Count != nil && *req.Count > 0 {
		return &adlibraryclient.FetchFilters{Count: req.Count}, nil
	}

	lookback := s.cfg.AdLibrary.DefaultLookbackMonths
	if lookback <= 0 {
		lookback = 12
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	defaultStart := now.AddDate(0, -lookback, 0)

	return &adlibraryclient.FetchFilters{StartDate: &defaultStart, EndDate: &now}, nil
}
