package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/domain"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/pipelining"
	"github.com/vfg2006/competitor-ads-api/pkg/apiErrors"
	"github.com/vfg2006/competitor-ads-api/pkg/log"
	"github.com/vfg2006/competitor-ads-api/pkg/utils"
)

// RefreshSummaries recomputa os sumários (criativo e funil) sem nova
// ingestão. Com brand_id no corpo recomputa uma marca; sem corpo ou sem
// brand_id recomputa todas as marcas ativas.
func RefreshSummaries(orchestrator pipelining.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SummaryRefreshRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logger.WithError(err).Warn("summaries: invalid request body")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
				return
			}
		}

		opts := pipelining.RunOptions{WithIngest: false}

		var payload any
		var err error

		if req.BrandID != nil && *req.BrandID != "" {
			logger.WithField("brand_id", *req.BrandID).Info("summaries: refreshing single brand")
			payload, err = orchestrator.RunBrand(r.Context(), *req.BrandID, opts)
		} else {
			logger.Info("summaries: refreshing all active brands")
			payload, err = orchestrator.RunAllActiveBrands(r.Context(), opts)
		}

		if err != nil {
			logger.WithError(err).Error("summaries: refresh failed")
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.WithError(err).Error("summaries: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetCreativeSummaries lista o sumário de cadência criativa de uma marca,
// uma linha por mês, em ordem cronológica.
func GetCreativeSummaries(repo repository.CreativeSummaryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("brand_id", brandID).Info("summaries: fetching creative summaries")

		summaries, err := repo.ListByBrand(r.Context(), brandID)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"error":    err.Error(),
			}).Error("summaries: failed to list creative summaries")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logger.WithError(err).Error("summaries: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFunnelSummaries lista o sumário de funil de destino de uma marca, uma
// linha por mês e URL normalizada.
func GetFunnelSummaries(repo repository.FunnelSummaryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("brand_id", brandID).Info("summaries: fetching funnel summaries")

		summaries, err := repo.ListByBrand(r.Context(), brandID)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"error":    err.Error(),
			}).Error("summaries: failed to list funnel summaries")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logger.WithError(err).Error("summaries: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetBrandAds lista os anúncios brutos de uma marca, opcionalmente filtrados
// por período de atividade (start_date/end_date na query string).
func GetBrandAds(repo repository.RawAdRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseOptionalDate(queryParam(r, "start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id":   brandID,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("ads: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseOptionalDate(queryParam(r, "end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("ads: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use YYYY-MM-DD", nil)
			return
		}

		var ads []*domain.RawAd
		if startDate != nil && endDate != nil {
			ads, err = repo.ListByBrandAndPeriod(r.Context(), brandID, *startDate, *endDate)
		} else {
			ads, err = repo.ListByBrand(r.Context(), brandID)
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"error":    err.Error(),
			}).Error("ads: failed to list raw ads")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ads); err != nil {
			logger.WithError(err).Error("ads: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func queryParam(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}
