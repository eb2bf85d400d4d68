package dto

import "time"

// BrandRequest describes brand creation payload.
type BrandRequest struct {
	Name string `json:"name"`
}

// BrandResponse describes a brand.
type BrandResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
