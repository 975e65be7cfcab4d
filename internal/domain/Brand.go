package domain

import (
	"time"
)

type BrandStatus string

const (
	BrandStatusActive   BrandStatus = "ACTIVE"
	BrandStatusPaused   BrandStatus = "PAUSED"
	BrandStatusArchived BrandStatus = "ARCHIVED"
)

// Brand representa uma marca concorrente monitorada pelo pipeline.
// Marcas são criadas por ação administrativa; o pipeline apenas as lê.
type Brand struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	AdsLibraryURL *string     `json:"ads_library_url,omitempty"`
	Status        BrandStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (b *Brand) IsActive() bool {
	return b != nil && b.Status == BrandStatusActive
}
