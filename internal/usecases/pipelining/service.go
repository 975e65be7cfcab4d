package pipelining

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/ingesting"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/summarizing"
	"github.com/vfg2006/competitor-ads-api/pkg/utils"
)

const runIDLength = 10

// RunOptions controla uma execução do pipeline. WithIngest falso pula a
// ingestão e apenas recomputa os sumários a partir dos dados brutos já
// gravados.
type RunOptions struct {
	WithIngest bool
}

// Orchestrator sequencia ingestão → agregador criativo → agregador de funil
// para uma marca, ou varre todas as marcas ativas com isolamento de falha
// por marca.
type Orchestrator interface {
	RunBrand(ctx context.Context, brandID string, opts RunOptions) (*domain.BrandPipelineResult, error)
	RunAllActiveBrands(ctx context.Context, opts RunOptions) (*domain.PipelineBatchResult, error)
}

type Service struct {
	cfg                *config.Config
	brandRepo          repository.BrandRepository
	ingestor           ingesting.Ingestor
	creativeAggregator summarizing.CreativeAggregator
	funnelAggregator   summarizing.FunnelAggregator

	// serializa execuções sobrepostas para a mesma marca: dois writers não
	// podem disputar a substituição das mesmas linhas de sumário
	brandLocks sync.Map // brandID -> *sync.Mutex
}

func NewService(
	cfg *config.Config,
	brandRepo repository.BrandRepository,
	ingestor ingesting.Ingestor,
	creativeAggregator summarizing.CreativeAggregator,
	funnelAggregator summarizing.FunnelAggregator,
) *Service {
	return &Service{
		cfg:                cfg,
		brandRepo:          brandRepo,
		ingestor:           ingestor,
		creativeAggregator: creativeAggregator,
		funnelAggregator:   funnelAggregator,
	}
}

// RunBrand executa o modo direcionado: o primeiro erro aborta e é reportado
// imediatamente, com a etapa em que a execução parou.
func (s *Service) RunBrand(ctx context.Context, brandID string, opts RunOptions) (*domain.BrandPipelineResult, error) {
	brand, err := s.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrPersistence, err.Error())
	}
	if brand == nil {
		return nil, domain.ErrBrandNotFound
	}

	return s.runBrandPipeline(ctx, brand, opts)
}

// RunAllActiveBrands executa o modo batch: todas as marcas ativas, workers
// limitados por semáforo, e a falha de uma marca é registrada no resultado
// sem abortar as demais.
func (s *Service) RunAllActiveBrands(ctx context.Context, opts RunOptions) (*domain.PipelineBatchResult, error) {
	brands, err := s.brandRepo.ListBrands(ctx, []domain.BrandStatus{domain.BrandStatusActive})
	if err != nil {
		return nil, errors.Wrap(domain.ErrPersistence, err.Error())
	}

	batch := &domain.PipelineBatchResult{
		RunID:     newRunID(),
		Brands:    make([]*domain.BrandPipelineResult, len(brands)),
		StartedAt: time.Now().UTC(),
	}

	if len(brands) == 0 {
		logrus.Info("pipeline: nenhuma marca ativa para processar")
		batch.FinishedAt = time.Now().UTC()
		return batch, nil
	}

	logrus.WithFields(logrus.Fields{
		"run_id": batch.RunID,
		"brands": len(brands),
	}).Info("pipeline: iniciando batch para marcas ativas")

	maxWorkers := s.cfg.Pipeline.MaxConcurrentBrands
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	// Canal-semáforo limita os workers concorrentes por marca
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, brand := range brands {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(idx int, b *domain.Brand) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			result, err := s.runBrandPipeline(ctx, b, opts)
			if err != nil {
				// Isolamento de falha: registra e segue para as outras marcas
				result = &domain.BrandPipelineResult{
					BrandID:   b.ID,
					BrandName: b.Name,
					Step:      domain.PipelineStepFailedForBrand,
					Error:     err.Error(),
				}

				logrus.WithFields(logrus.Fields{
					"run_id":   batch.RunID,
					"brand_id": b.ID,
					"error":    err.Error(),
				}).Error("pipeline: falha ao processar marca no batch")
			}

			batch.Brands[idx] = result
		}(i, brand)
	}

	wg.Wait()

	for _, result := range batch.Brands {
		if result.Succeeded() {
			batch.Succeeded++
		} else {
			batch.Failed++
		}
		batch.TotalCreativeCount += result.CreativeCount
		batch.TotalFunnelCount += result.FunnelCount
	}

	batch.FinishedAt = time.Now().UTC()

	logrus.WithFields(logrus.Fields{
		"run_id":    batch.RunID,
		"succeeded": batch.Succeeded,
		"failed":    batch.Failed,
		"duration":  batch.FinishedAt.Sub(batch.StartedAt).String(),
	}).Info("pipeline: batch concluído")

	return batch, nil
}

// runBrandPipeline percorre a máquina de estados de uma marca:
// pending → ingesting → aggregating_creative → aggregating_funnel → done.
// Cada etapa que falha devolve o resultado parcial com a etapa alcançada.
func (s *Service) runBrandPipeline(ctx context.Context, brand *domain.Brand, opts RunOptions) (*domain.BrandPipelineResult, error) {
	lock := s.lockForBrand(brand.ID)
	lock.Lock()
	defer lock.Unlock()

	result := &domain.BrandPipelineResult{
		RunID:     newRunID(),
		BrandID:   brand.ID,
		BrandName: brand.Name,
		Step:      domain.PipelineStepPending,
		StartedAt: time.Now().UTC(),
	}

	if opts.WithIngest {
		result.Step = domain.PipelineStepIngesting

		ingestion, err := s.ingestor.IngestBrandAds(ctx, &domain.IngestionRequest{
			BrandID: &brand.ID,
		})
		if err != nil {
			return s.failResult(result, err)
		}
		result.Ingestion = ingestion
	}

	result.Step = domain.PipelineStepAggregatingCreative
	creativeCount, err := s.creativeAggregator.RecomputeBrand(ctx, brand)
	if err != nil {
		return s.failResult(result, err)
	}
	result.CreativeCount = creativeCount

	result.Step = domain.PipelineStepAggregatingFunnel
	funnelCount, err := s.funnelAggregator.RecomputeBrand(ctx, brand)
	if err != nil {
		return s.failResult(result, err)
	}
	result.FunnelCount = funnelCount

	result.Step = domain.PipelineStepDone
	result.FinishedAt = time.Now().UTC()

	logrus.WithFields(logrus.Fields{
		"run_id":         result.RunID,
		"brand_id":       brand.ID,
		"creative_count": result.CreativeCount,
		"funnel_count":   result.FunnelCount,
	}).Info("pipeline: marca processada com sucesso")

	return result, nil
}

func (s *Service) failResult(result *domain.BrandPipelineResult, err error) (*domain.BrandPipelineResult, error) {
	result.Error = err.Error()
	result.FinishedAt = time.Now().UTC()

	return result, errors.Wrapf(err, "pipeline falhou na etapa %s", result.Step)
}

func (s *Service) lockForBrand(brandID string) *sync.Mutex {
	lock, _ := s.brandLocks.LoadOrStore(brandID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func newRunID() string {
	id, err := utils.GenerateID(runIDLength)
	if err != nil {
		// nanoid só falha se o leitor de entropia falhar
		return "unknown"
	}
	return id
}
