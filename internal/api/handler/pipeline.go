package handler

import (
	"net/http"

	"github.com/vfg2006/competitor-ads-api/internal/scheduler"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/pipelining"
	"github.com/vfg2006/competitor-ads-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-ads-api/pkg/log"
)

// PipelineRunRequest é o corpo aceito pelo gatilho manual do pipeline
type PipelineRunRequest struct {
	BrandID    *string `json:"brand_id,omitempty"`
	WithIngest *bool   `json:"with_ingest,omitempty"`
}

// RunPipeline dispara o pipeline completo. Com brand_id executa de forma
// síncrona para uma marca e devolve o resultado; sem brand_id delega ao
// serviço agendado, que processa todas as marcas ativas em background.
func RunPipeline(orchestrator pipelining.Orchestrator, syncService *scheduler.PipelineSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req PipelineRunRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logger.WithError(err).Warn("pipeline: invalid request body")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
				return
			}
		}

		withIngest := true
		if req.WithIngest != nil {
			withIngest = *req.WithIngest
		}

		if req.BrandID != nil && *req.BrandID != "" {
			logger.WithField("brand_id", *req.BrandID).Info("pipeline: manual run for single brand")

			result, err := orchestrator.RunBrand(r.Context(), *req.BrandID, pipelining.RunOptions{
				WithIngest: withIngest,
			})
			if err != nil {
				logger.WithError(err).Error("pipeline: manual run failed")
				apiErrors.WriteDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(result); err != nil {
				logger.WithError(err).Error("pipeline: failed to encode response")
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do pipeline não disponível", nil)
			return
		}

		logger.Info("pipeline: manual run for all active brands")
		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Pipeline iniciado com sucesso",
		})
	})
}

// GetPipelineStatus retorna o status do agendador do pipeline
func GetPipelineStatus(syncService *scheduler.PipelineSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do pipeline não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(syncService.GetStatus()); err != nil {
			logger.WithError(err).Error("pipeline: failed to encode status response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
