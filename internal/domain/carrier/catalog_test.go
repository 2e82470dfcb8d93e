package carrier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/models"
)

func strPtr(s string) *string { return &s }

func carrierFixture(brand, model, category, age string, rent float64, status Availability, created time.Time) models.Carrier {
	c := models.Carrier{
		BrandName:          brand,
		ModelName:          model,
		Category:           category,
		AgeRange:           age,
		WeeklyRent:         rent,
		AvailabilityStatus: string(status),
	}
	c.CreatedAt = created
	return c
}

func catalogFixture() []models.Carrier {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	a := carrierFixture("Sakura Bloom", "Linen", "ring-slings", "0-24 months", 500, StatusAvailable, base)
	a.Description = strPtr("Soft linen ring sling")
	b := carrierFixture("Tula", "Explore", "buckle-carriers", "4-48 months", 800, StatusRented, base.Add(time.Hour))
	c := carrierFixture("Didymos", "Indio", "wraps", "0-36 months", 500, StatusAvailable, base.Add(2*time.Hour))
	d := carrierFixture("Tula", "Free to Grow", "buckle-carriers", "0-48 months", 650, StatusAvailable, base.Add(3*time.Hour))
	return []models.Carrier{a, b, c, d}
}

func modelNames(cs []models.Carrier) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ModelName)
	}
	return out
}

func TestApplyDefaultsToNewestFirst(t *testing.T) {
	got := Apply(catalogFixture(), Query{})
	assert.Equal(t, []string{"Free to Grow", "Indio", "Explore", "Linen"}, modelNames(got))
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	cs := catalogFixture()

	assert.Equal(t, []string{"Free to Grow", "Explore"}, modelNames(Apply(cs, Query{Search: "TULA"})))
	assert.Equal(t, []string{"Indio"}, modelNames(Apply(cs, Query{Search: "ind"})))
	assert.Equal(t, []string{"Linen"}, modelNames(Apply(cs, Query{Search: "soft LINEN ring"})))
	assert.Empty(t, Apply(cs, Query{Search: "nothing like this"}))
}

func TestApplySearchKeepsSurroundingSpaces(t *testing.T) {
	cs := catalogFixture()

	assert.Empty(t, Apply(cs, Query{Search: "   "}))
	assert.Empty(t, Apply(cs, Query{Search: "tula "}))
	assert.Equal(t, []string{"Free to Grow"}, modelNames(Apply(cs, Query{Search: "free to "})))
	assert.Equal(t, []string{"Linen"}, modelNames(Apply(cs, Query{Search: " linen"})))
}

func TestApplySearchSkipsMissingDescription(t *testing.T) {
	cs := catalogFixture()
	// Only the first carrier has a description.
	assert.Equal(t, []string{"Linen"}, modelNames(Apply(cs, Query{Search: "soft"})))
}

func TestApplyCombinesFiltersWithAnd(t *testing.T) {
	cs := catalogFixture()

	got := Apply(cs, Query{Brands: []string{"Tula"}, AvailableOnly: true})
	assert.Equal(t, []string{"Free to Grow"}, modelNames(got))

	got = Apply(cs, Query{Categories: []string{"wraps", "ring-slings"}})
	assert.Equal(t, []string{"Indio", "Linen"}, modelNames(got))

	got = Apply(cs, Query{Categories: []string{"wraps"}, Brands: []string{"Tula"}})
	assert.Empty(t, got)

	got = Apply(cs, Query{AgeRanges: []string{"0-48 months", "4-48 months"}})
	assert.Equal(t, []string{"Free to Grow", "Explore"}, modelNames(got))
}

func TestApplyPriceSortIsStable(t *testing.T) {
	cs := catalogFixture()

	asc := Apply(cs, Query{Sort: SortPriceAsc})
	assert.Equal(t, []string{"Linen", "Indio", "Free to Grow", "Explore"}, modelNames(asc))

	desc := Apply(cs, Query{Sort: SortPriceDesc})
	assert.Equal(t, []string{"Explore", "Free to Grow", "Linen", "Indio"}, modelNames(desc))
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	cs := catalogFixture()
	before := modelNames(cs)

	Apply(cs, Query{Sort: SortPriceDesc, AvailableOnly: true})

	assert.Equal(t, before, modelNames(cs))
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, Query{Search: "tula"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortKey(" PRICE-DESC "))
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("rating"))
}

func TestToggle(t *testing.T) {
	selected := []string{"wraps"}

	added := Toggle(selected, "onbuhimo")
	assert.Equal(t, []string{"wraps", "onbuhimo"}, added)
	assert.Equal(t, []string{"wraps"}, selected)

	removed := Toggle(added, "wraps")
	assert.Equal(t, []string{"onbuhimo"}, removed)

	assert.Equal(t, []string{"wraps"}, Toggle(Toggle(selected, "x"), "x"))
}

func TestFacetsForTogglesSelection(t *testing.T) {
	q := Query{Brands: []string{"Tula"}}
	f := FacetsFor(Options(catalogFixture()), q)

	require.Len(t, f.Brands, 3)
	tula := f.Brands[2]
	assert.Equal(t, "Tula", tula.Value)
	assert.True(t, tula.Selected)
	assert.Empty(t, tula.Next)

	didymos := f.Brands[0]
	assert.False(t, didymos.Selected)
	assert.Equal(t, []string{"Tula", "Didymos"}, didymos.Next)

	assert.Len(t, f.Categories, len(Categories))
	assert.Equal(t, []string{"ring-slings"}, f.Categories[0].Next)
}

func TestQueryActive(t *testing.T) {
	assert.False(t, Query{}.Active())
	assert.False(t, Query{Search: "  ", Sort: SortPriceAsc}.Active())
	assert.True(t, Query{Search: "tula"}.Active())
	assert.True(t, Query{AvailableOnly: true}.Active())
	assert.True(t, Query{Brands: []string{"Tula"}}.Active())
}

func TestOptionsAreUniqueAndSorted(t *testing.T) {
	opts := Options(catalogFixture())

	assert.Equal(t, []string{"Didymos", "Sakura Bloom", "Tula"}, opts.Brands)
	assert.Equal(t, []string{"0-24 months", "0-36 months", "0-48 months", "4-48 months"}, opts.AgeRanges)

	empty := Options(nil)
	assert.Empty(t, empty.Brands)
	assert.NotNil(t, empty.AgeRanges)
}

func TestFeatured(t *testing.T) {
	cs := catalogFixture()

	assert.Equal(t, []string{"Free to Grow", "Indio", "Explore"}, modelNames(Featured(cs, 3)))
	assert.Len(t, Featured(cs, 10), 4)
	assert.Empty(t, Featured(cs, 0))
}
