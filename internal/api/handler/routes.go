package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/api/handler/router"
	"github.com/vfg2006/competitor-ads-api/internal/scheduler"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/ingesting"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/pipelining"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Ingestion(service ingesting.Ingestor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ingestion/run",
			Method:  http.MethodPost,
			Handler: RunIngestion(service),
		},
	}
}

func Summaries(
	orchestrator pipelining.Orchestrator,
	creativeRepo repository.CreativeSummaryRepository,
	funnelRepo repository.FunnelSummaryRepository,
	rawAdRepo repository.RawAdRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summaries/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSummaries(orchestrator),
		},
		{
			Path:    "/v1/brands/:id/summaries/creative",
			Method:  http.MethodGet,
			Handler: GetCreativeSummaries(creativeRepo),
		},
		{
			Path:    "/v1/brands/:id/summaries/funnel",
			Method:  http.MethodGet,
			Handler: GetFunnelSummaries(funnelRepo),
		},
		{
			Path:    "/v1/brands/:id/ads",
			Method:  http.MethodGet,
			Handler: GetBrandAds(rawAdRepo),
		},
	}
}

func Pipeline(orchestrator pipelining.Orchestrator, syncService *scheduler.PipelineSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pipeline/run",
			Method:  http.MethodPost,
			Handler: RunPipeline(orchestrator, syncService),
		},
		{
			Path:    "/v1/pipeline/status",
			Method:  http.MethodGet,
			Handler: GetPipelineStatus(syncService),
		},
	}
}
