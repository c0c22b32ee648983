package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Bowl is a customer's builder session against one store.
// Items are kept in insertion order and may repeat.
type Bowl struct {
	ID        uuid.UUID     `json:"id"`
	StoreID   uuid.UUID     `json:"store_id"`
	Items     []CatalogItem `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Add appends an item to the end of the selection.
func (b *Bowl) Add(item CatalogItem) {
	b.Items = append(b.Items, item)
}

// RemoveAt removes the item at index. Out-of-range indexes are ignored and
// RemoveAt reports whether anything was removed.
func (b *Bowl) RemoveAt(index int) bool {
	if index < 0 || index >= len(b.Items) {
		return false
	}
	b.Items = slices.Delete(b.Items, index, index+1)

	return true
}

// Clone returns a copy with its own item slice.
func (b *Bowl) Clone() *Bowl {
	if b == nil {
		return nil
	}
	out := *b
	out.Items = slices.Clone(b.Items)

	return &out
}
