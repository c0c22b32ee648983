package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the approval status of a store.
type StoreStatus string

const (
	// StoreStatusPending is the initial status after store setup.
	StoreStatusPending StoreStatus = "pending"
	// StoreStatusApproved stores are publicly listed.
	StoreStatusApproved StoreStatus = "approved"
	// StoreStatusRejected is terminal; there is no resubmission path.
	StoreStatusRejected StoreStatus = "rejected"
)

// String returns the string representation of the StoreStatus.
func (s StoreStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further approval transitions are possible.
func (s StoreStatus) IsTerminal() bool {
	return s == StoreStatusApproved || s == StoreStatusRejected
}

// DeliveryType is how a store charges for delivery.
type DeliveryType string

const (
	DeliveryFree     DeliveryType = "FREE"
	DeliveryFixed    DeliveryType = "FIXED"
	DeliveryDistance DeliveryType = "DISTANCE"
)

// IsValid checks if the DeliveryType is a known value.
func (d DeliveryType) IsValid() bool {
	switch d {
	case DeliveryFree, DeliveryFixed, DeliveryDistance:
		return true
	default:
		return false
	}
}

// StoreProfile holds the descriptive fields filled in during store setup.
type StoreProfile struct {
	Name         string `json:"name"`
	CNPJ         string `json:"cnpj"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	Instagram    string `json:"instagram"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
	LogoURL      string `json:"logo_url"`
}

// Store is a seller's record: profile, pricing, delivery policy and the
// subset of the global catalog it offers.
//
// IsPublic is only ever true while Status is approved.
type Store struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	StoreProfile               // embedded profile fields
	Location     *Coordinates  `json:"location,omitempty"`
	DeliveryType DeliveryType  `json:"delivery_type"`
	DeliveryFee  float64       `json:"delivery_fee"`
	PricePerKg   float64       `json:"price_per_kg"`
	Components   []CatalogItem `json:"components"`
	IsPublic     bool          `json:"is_public"`
	Status       StoreStatus   `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsListed reports whether the store may appear in the public directory.
func (s *Store) IsListed() bool {
	return s.Status == StoreStatusApproved && s.IsPublic
}

// Component returns the offered catalog item with the given id.
func (s *Store) Component(itemID uuid.UUID) (CatalogItem, bool) {
	idx := slices.IndexFunc(s.Components, func(c CatalogItem) bool {
		return c.ID == itemID
	})
	if idx < 0 {
		return CatalogItem{}, false
	}

	return s.Components[idx], true
}

// Clone returns a deep copy so callers can't mutate repository state.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	out := *s
	out.Components = slices.Clone(s.Components)
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}

	return &out
}

// DedupeComponents keeps the first occurrence of every catalog item id.
func DedupeComponents(items []CatalogItem) []CatalogItem {
	seen := make(map[uuid.UUID]struct{}, len(items))
	out := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}

	return out
}
