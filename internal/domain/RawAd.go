package domain

import (
	"time"
)

// RawAd representa uma instância de criativo observada na biblioteca de anúncios.
// A chave natural é AdArchiveID, atribuída pela fonte externa: re-ingestão do
// mesmo anúncio substitui a linha inteira, nunca duplica.
type RawAd struct {
	AdArchiveID  string            `json:"ad_archive_id"`
	BrandID      string            `json:"brand_id"`
	PageID       *string           `json:"page_id,omitempty"`
	PageName     *string           `json:"page_name,omitempty"`
	LinkURL      *string           `json:"link_url,omitempty"`
	StartDate    *time.Time        `json:"start_date,omitempty"`
	EndDate      *time.Time        `json:"end_date,omitempty"`
	CreationDate *time.Time        `json:"creation_date,omitempty"`
	Media        map[string]string `json:"media,omitempty"`
	Source       string            `json:"source"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ReferenceDate retorna a data usada para ancorar o anúncio em um mês:
// start_date quando presente, senão creation_date.
func (a *RawAd) ReferenceDate() *time.Time {
	if a.StartDate != nil {
		return a.StartDate
	}
	return a.CreationDate
}

// IngestionRequest é o gatilho de ingestão bruta recebido pela API.
type IngestionRequest struct {
	AdsLibraryURL string  `json:"ads_library_url"`
	BrandID       *string `json:"brand_id,omitempty"`
	BrandName     *string `json:"brand_name,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Count         *int    `json:"count,omitempty"`
}

// IngestionResult reporta o resultado de uma ingestão para uma marca.
// Inserted e Processed podem legitimamente divergir: a fonte pode aplicar
// filtragem e deduplicação do lado dela.
type IngestionResult struct {
	BrandID   string `json:"brand_id"`
	Inserted  int64  `json:"inserted"`
	Processed int    `json:"processed"`
	Rejected  int    `json:"rejected"`
}
