package domain

import (
	"time"
)

// FunnelType é a categoria fixa que descreve o tipo de destino de um funil.
type FunnelType string

const (
	FunnelTypeTrackingLink FunnelType = "tracking_link"
	FunnelTypeAppStore     FunnelType = "app_store"
	FunnelTypeQuizFunnel   FunnelType = "quiz_funnel"
	FunnelTypeLandingPage  FunnelType = "landing_page"
	FunnelTypeUnknown      FunnelType = "unknown"
)

// FunnelSummary representa uma linha agregada de funil de destino para
// (marca, mês, funnel_url). FunnelURL é a URL de destino normalizada, com
// parâmetros de tracking removidos para não fragmentar a agregação.
type FunnelSummary struct {
	ID             int64             `json:"id"`
	BrandID        string            `json:"brand_id"`
	Month          time.Time         `json:"month"` // primeiro dia do mês, UTC
	FunnelURL      string            `json:"funnel_url"`
	FunnelDomain   string            `json:"funnel_domain"`
	FunnelPath     *string           `json:"funnel_path,omitempty"`
	FunnelType     *FunnelType       `json:"funnel_type,omitempty"`
	CampaignInfo   map[string]string `json:"campaign_info,omitempty"`
	CreativesCount int               `json:"creatives_count"`
	AdsLibraryURL  *string           `json:"ads_library_url,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
