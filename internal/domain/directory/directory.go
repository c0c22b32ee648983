// Package directory filters and orders the publicly listed stores.
package directory

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"acai/internal/domain/entity"

	"github.com/paulmach/orb/geo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the listing.
type SortKey string

const (
	SortPrice        SortKey = "price"
	SortAlphabetical SortKey = "alphabetical"
	SortProximity    SortKey = "proximity"
)

// DefaultSort is used when the caller doesn't pick one.
const DefaultSort = SortProximity

// ParseSortKey accepts the sort keys plus the short "alpha" form.
// An empty string yields DefaultSort.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultSort, true
	case "price":
		return SortPrice, true
	case "alpha", "alphabetical":
		return SortAlphabetical, true
	case "proximity":
		return SortProximity, true
	default:
		return "", false
	}
}

// Filter narrows the listing. Empty fields match everything.
type Filter struct {
	State string // exact match
	City  string // case-insensitive substring
}

// Query is a full listing request.
type Query struct {
	Filter Filter
	Sort   SortKey
	Origin *entity.Coordinates // customer location, required for real proximity ordering
}

// Result is the ordered listing plus whether proximity ordering was skipped.
type Result struct {
	Stores              []*entity.Store
	LocationUnavailable bool
}

// List returns the eligible stores in the requested order.
// The input slice and the stores it points to are never modified.
func List(stores []*entity.Store, q Query) Result {
	out := make([]*entity.Store, 0, len(stores))
	for _, s := range stores {
		if s.IsListed() && q.Filter.matches(s) {
			out = append(out, s)
		}
	}

	res := Result{Stores: out}
	switch q.Sort {
	case SortPrice:
		slices.SortStableFunc(out, func(a, b *entity.Store) int {
			return cmp.Compare(a.PricePerKg, b.PricePerKg)
		})
	case SortAlphabetical:
		sortByName(out)
	case SortProximity, "":
		if q.Origin == nil {
			res.LocationUnavailable = true

			break
		}
		sortByDistance(out, *q.Origin)
	}

	return res
}

func (f Filter) matches(s *entity.Store) bool {
	if f.State != "" && s.State != f.State {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(s.City), strings.ToLower(f.City)) {
		return false
	}

	return true
}

// collator is not safe for concurrent use.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
)

func sortByName(stores []*entity.Store) {
	collatorMu.Lock()
	defer collatorMu.Unlock()

	slices.SortStableFunc(stores, func(a, b *entity.Store) int {
		return collator.CompareString(a.Name, b.Name)
	})
}

// sortByDistance orders by great-circle distance; stores without coordinates go last.
func sortByDistance(stores []*entity.Store, origin entity.Coordinates) {
	from := origin.Point()
	dist := make(map[*entity.Store]float64, len(stores))
	for _, s := range stores {
		if s.Location != nil {
			dist[s] = geo.DistanceHaversine(from, s.Location.Point())
		}
	}

	slices.SortStableFunc(stores, func(a, b *entity.Store) int {
		da, aok := dist[a]
		db, bok := dist[b]
		switch {
		case aok && bok:
			return cmp.Compare(da, db)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}
