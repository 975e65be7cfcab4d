package domain

import (
	"time"
)

// PipelineStep identifica a etapa em que uma execução do pipeline está (ou falhou).
type PipelineStep string

const (
	PipelineStepPending             PipelineStep = "pending"
	PipelineStepIngesting           PipelineStep = "ingesting"
	PipelineStepAggregatingCreative PipelineStep = "aggregating_creative"
	PipelineStepAggregatingFunnel   PipelineStep = "aggregating_funnel"
	PipelineStepDone                PipelineStep = "done"
	PipelineStepFailed              PipelineStep = "failed"

	// PipelineStepFailedForBrand é o estado terminal de uma marca dentro de um
	// batch: a falha fica registrada no slot da marca e o batch continua.
	PipelineStepFailedForBrand PipelineStep = "failed_for_brand"
)

// BrandPipelineResult é o resultado de uma execução direcionada (uma marca).
type BrandPipelineResult struct {
	RunID         string           `json:"run_id"`
	BrandID       string           `json:"brand_id"`
	BrandName     string           `json:"brand_name,omitempty"`
	Step          PipelineStep     `json:"step"`
	Ingestion     *IngestionResult `json:"ingestion,omitempty"`
	CreativeCount int              `json:"creative_count"`
	FunnelCount   int              `json:"funnel_count"`
	Error         string           `json:"error,omitempty"`
	StartedAt     time.Time        `json:"started_at"`
	FinishedAt    time.Time        `json:"finished_at"`
}

func (r *BrandPipelineResult) Succeeded() bool {
	return r != nil && r.Step == PipelineStepDone
}

// PipelineBatchResult agrega os resultados de um batch sobre todas as marcas
// ativas. A falha de uma marca é registrada e não aborta o batch.
type PipelineBatchResult struct {
	RunID              string                 `json:"run_id"`
	Brands             []*BrandPipelineResult `json:"brands"`
	Succeeded          int                    `json:"succeeded"`
	Failed             int                    `json:"failed"`
	TotalCreativeCount int                    `json:"total_creative_count"`
	TotalFunnelCount   int                    `json:"total_funnel_count"`
	StartedAt          time.Time              `json:"started_at"`
	FinishedAt         time.Time              `json:"finished_at"`
}

// SummaryRefreshRequest é o gatilho de recomputação de sumários: com BrandID
// executa no modo direcionado, sem BrandID varre todas as marcas ativas.
type SummaryRefreshRequest struct {
	BrandID *string `json:"brand_id,omitempty"`
}
