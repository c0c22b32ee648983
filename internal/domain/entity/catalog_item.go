package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatalogItem is an ingredient definition from the global catalog.
// Items are immutable once created, so stores and bowls hold value copies.
type CatalogItem struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	WeightPerServing float64   `json:"weight_per_serving"` // grams
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
}
