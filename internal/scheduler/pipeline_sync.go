package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/pipelining"
)

// PipelineSyncConfig representa a configuração do agendador do pipeline
type PipelineSyncConfig struct {
	CronSchedule string
	WithIngest   bool
	SyncEnabled  bool
}

// PipelineSyncService gerencia o agendamento e execução periódica do pipeline
// de ingestão e sumarização para todas as marcas ativas
type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              PipelineSyncConfig
	orchestrator        pipelining.Orchestrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastSucceeded       int
	lastFailed          int
}

// NewPipelineSyncService cria uma nova instância do serviço de sincronização do pipeline
func NewPipelineSyncService(
	orchestrator pipelining.Orchestrator,
	appConfig *config.Config,
) *PipelineSyncService {
	// Criar a configuração com base na config global
	syncConfig := PipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		WithIngest:   appConfig.PipelineSync.WithIngest,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"with_ingest":   syncConfig.WithIngest,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		orchestrator: orchestrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do pipeline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline")

	// Agendar a execução do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o pipeline: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// runPipeline executa o pipeline completo para todas as marcas ativas.
// Execuções sobrepostas do agendador são ignoradas, não enfileiradas.
func (s *PipelineSyncService) runPipeline(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando execução agendada do pipeline para todas as marcas ativas")

	batch, err := s.orchestrator.RunAllActiveBrands(ctx, pipelining.RunOptions{
		WithIngest: s.config.WithIngest,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar o pipeline agendado")
		return
	}

	// GetStatus lê esses campos sob o mesmo mutex
	s.syncMutex.Lock()
	s.lastRunID = batch.RunID
	s.lastSucceeded = batch.Succeeded
	s.lastFailed = batch.Failed
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":    batch.RunID,
		"succeeded": batch.Succeeded,
		"failed":    batch.Failed,
		"duration":  time.Since(startTime).String(),
	}).Info("Execução agendada do pipeline concluída")
}

// TriggerManualSync inicia manualmente uma execução do pipeline
func (s *PipelineSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pipeline já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline")
	go s.runPipeline(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_with_ingest":       s.config.WithIngest,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_succeeded":         s.lastSucceeded,
		"last_failed":            s.lastFailed,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
