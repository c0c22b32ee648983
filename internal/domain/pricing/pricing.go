// Package pricing computes bowl weight and price from a selection of catalog items.
package pricing

import (
	"math"
	"strconv"

	"acai/internal/domain/entity"
)

const gramsPerKg = 1000

// Money is an amount in reais. It renders with exactly two decimal places.
type Money float64

// String formats the amount with two decimal places.
func (m Money) String() string {
	return strconv.FormatFloat(float64(m), 'f', 2, 64)
}

// MarshalJSON encodes the amount as a JSON number with two decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// Cents rounds the amount half away from zero to whole cents.
func (m Money) Cents() int64 {
	return int64(math.Round(float64(m) * 100))
}

// Totals is the result of pricing a bowl.
type Totals struct {
	WeightGrams float64 `json:"weight_grams"`
	Subtotal    Money   `json:"subtotal"`
	DeliveryFee Money   `json:"delivery_fee"`
	Total       Money   `json:"total"`
}

// Rate is the store pricing used for a bowl.
type Rate struct {
	PricePerKg  float64
	DeliveryFee float64
}

// RateOf extracts the pricing of a store.
func RateOf(store *entity.Store) Rate {
	return Rate{PricePerKg: store.PricePerKg, DeliveryFee: store.DeliveryFee}
}

// Weight sums the per-serving weight of every item. Repeated items count once per occurrence.
func Weight(items []entity.CatalogItem) float64 {
	var total float64
	for _, item := range items {
		total += item.WeightPerServing
	}

	return total
}

// Compute prices a selection. An empty selection costs only the delivery fee.
func Compute(items []entity.CatalogItem, rate Rate) Totals {
	weight := Weight(items)
	subtotal := weight / gramsPerKg * rate.PricePerKg

	return Totals{
		WeightGrams: weight,
		Subtotal:    Money(subtotal),
		DeliveryFee: Money(rate.DeliveryFee),
		Total:       Money(subtotal + rate.DeliveryFee),
	}
}
