package carrier

import (
	"slices"
	"sort"
	"strings"

	"github.com/BruksfildServices01/sling-library/internal/models"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey accepts the storefront sort values and falls back to newest.
func ParseSortKey(v string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(v))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNewest
	}
}

// Query is the set of predicates picked on the browse page. Predicates are
// AND-combined; each multi-select set matches any of its members, and an
// empty set matches everything.
type Query struct {
	Search        string
	Categories    []string
	Brands        []string
	AgeRanges     []string
	AvailableOnly bool
	Sort          SortKey
}

// Active reports whether any filter (not the sort) narrows the list.
func (q Query) Active() bool {
	return strings.TrimSpace(q.Search) != "" ||
		len(q.Categories) > 0 ||
		len(q.Brands) > 0 ||
		len(q.AgeRanges) > 0 ||
		q.AvailableOnly
}

// Apply returns the carriers matching q in q.Sort order. The input slice is
// left untouched and ties keep their input order. Search is matched as typed,
// surrounding spaces included.
func Apply(carriers []models.Carrier, q Query) []models.Carrier {
	search := strings.ToLower(q.Search)

	out := make([]models.Carrier, 0, len(carriers))
	for _, c := range carriers {
		if !matchesSearch(c, search) {
			continue
		}
		if !inSet(q.Categories, c.Category) {
			continue
		}
		if !inSet(q.Brands, c.BrandName) {
			continue
		}
		if !inSet(q.AgeRanges, c.AgeRange) {
			continue
		}
		if q.AvailableOnly && c.AvailabilityStatus != string(StatusAvailable) {
			continue
		}
		out = append(out, c)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].WeeklyRent < out[j].WeeklyRent })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].WeeklyRent > out[j].WeeklyRent })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	return out
}

func matchesSearch(c models.Carrier, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.BrandName), search) ||
		strings.Contains(strings.ToLower(c.ModelName), search) {
		return true
	}
	return c.Description != nil && strings.Contains(strings.ToLower(*c.Description), search)
}

func inSet(set []string, v string) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

// Toggle adds value to selected, or removes it when already present. A new
// slice is always returned.
func Toggle(selected []string, value string) []string {
	if slices.Contains(selected, value) {
		out := make([]string, 0, len(selected))
		for _, v := range selected {
			if v != value {
				out = append(out, v)
			}
		}
		return out
	}
	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, value)
}

type FilterOptions struct {
	Brands    []string `json:"brands"`
	AgeRanges []string `json:"age_ranges"`
}

// Options lists the distinct brands and age ranges present, sorted.
func Options(carriers []models.Carrier) FilterOptions {
	brands := map[string]struct{}{}
	ages := map[string]struct{}{}
	for _, c := range carriers {
		brands[c.BrandName] = struct{}{}
		ages[c.AgeRange] = struct{}{}
	}
	return FilterOptions{
		Brands:    sortedKeys(brands),
		AgeRanges: sortedKeys(ages),
	}
}

// Facet is one selectable filter value. Next is the selection that results
// from picking it, so a client can build the follow-up query directly.
type Facet struct {
	Value    string   `json:"value"`
	Selected bool     `json:"selected"`
	Next     []string `json:"next"`
}

type Facets struct {
	Categories []Facet `json:"categories"`
	Brands     []Facet `json:"brands"`
	AgeRanges  []Facet `json:"age_ranges"`
}

// FacetsFor describes every option against the current selection of q.
func FacetsFor(opts FilterOptions, q Query) Facets {
	categories := make([]string, 0, len(Categories))
	for _, c := range Categories {
		categories = append(categories, string(c.Slug))
	}
	return Facets{
		Categories: facets(categories, q.Categories),
		Brands:     facets(opts.Brands, q.Brands),
		AgeRanges:  facets(opts.AgeRanges, q.AgeRanges),
	}
}

func facets(values, selected []string) []Facet {
	out := make([]Facet, 0, len(values))
	for _, v := range values {
		out = append(out, Facet{
			Value:    v,
			Selected: slices.Contains(selected, v),
			Next:     Toggle(selected, v),
		})
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Featured returns up to n of the newest carriers.
func Featured(carriers []models.Carrier, n int) []models.Carrier {
	newest := Apply(carriers, Query{Sort: SortNewest})
	if n >= 0 && len(newest) > n {
		newest = newest[:n]
	}
	return newest
}
