package domain

import (
	"time"
)

// CreativeSummary representa uma linha agregada de cadência criativa para
// (marca, mês). Linhas são projeções descartáveis: recomputadas por inteiro
// a cada execução do agregador e substituídas via upsert.
type CreativeSummary struct {
	ID              int64     `json:"id"`
	BrandID         string    `json:"brand_id"`
	Month           time.Time `json:"month"` // primeiro dia do mês, UTC
	CreativesCount  int       `json:"creatives_count"`
	TotalActiveDays int       `json:"total_active_days"`
	AdsLibraryURL   *string   `json:"ads_library_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
