package handler

import (
	"net/http"

	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/ingesting"
	"github.com/vfg2006/competitor-ads-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-ads-api/pkg/log"
)

// RunIngestion dispara a ingestão de anúncios de uma marca a partir da fonte
// externa. A marca pode vir por brand_id ou brand_name e a janela por
// start_date/end_date, count, ou o lookback padrão.
func RunIngestion(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.IngestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("ingestion: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		if (req.BrandID == nil || *req.BrandID == "") && (req.BrandName == nil || *req.BrandName == "") {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand_id ou brand_name é obrigatório", nil)
			return
		}

		result, err := service.IngestBrandAds(r.Context(), &req)
		if err != nil {
			logger.WithError(err).Error("ingestion: failed to ingest brand ads")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"brand_id": result.BrandID,
		}).Info("ingestion: completed successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("ingestion: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
