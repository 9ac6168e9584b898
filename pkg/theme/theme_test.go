package theme_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/offerkit/pkg/theme"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	all := theme.Catalog()
	require.Len(t, all, 1+15+6+1)
	assert.Equal(t, theme.Classic, all[0].ID)
	assert.Equal(t, theme.Custom, all[len(all)-1].ID)
	assert.Len(t, theme.Brands(), 15)
	assert.Len(t, theme.Seasonal(), 6)

	seen := map[string]bool{}
	for _, v := range all {
		assert.False(t, seen[v.ID], "duplicate id %s", v.ID)
		seen[v.ID] = true
	}

	// callers get copies
	all[0].PrimaryColor = "#000000"
	v, ok := theme.Find(theme.Classic)
	require.True(t, ok)
	assert.Equal(t, "#EB0A1E", v.PrimaryColor)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("catalog variation paints all slots with primary", func(t *testing.T) {
		p := theme.Resolve("summer", nil)
		assert.Equal(t, theme.Colors{VehicleTitle: "#3B82F6", Offers: "#3B82F6", CTA: "#3B82F6"}, p.Colors)
		assert.Equal(t, "#f8fbff", p.Background)
	})

	t.Run("custom colors used verbatim", func(t *testing.T) {
		custom := &theme.Colors{VehicleTitle: "#111111", Offers: "#222222", CTA: "#333333"}
		p := theme.Resolve(theme.Custom, custom)
		assert.Equal(t, *custom, p.Colors)
		assert.Equal(t, "#f8f8f8", p.Background)
	})

	t.Run("custom colors ignored for other variations", func(t *testing.T) {
		custom := &theme.Colors{VehicleTitle: "#111111", Offers: "#222222", CTA: "#333333"}
		p := theme.Resolve("honda", custom)
		assert.Equal(t, "#0066CC", p.CTA)
	})

	t.Run("custom without colors uses custom defaults", func(t *testing.T) {
		p := theme.Resolve(theme.Custom, nil)
		assert.Equal(t, "#EB0A1E", p.VehicleTitle)
	})

	t.Run("unknown id falls back to classic", func(t *testing.T) {
		for _, id := range []string{"nonexistent-id", "", theme.Default} {
			p := theme.Resolve(id, nil)
			assert.Equal(t, "#EB0A1E", p.CTA, id)
			assert.Equal(t, "#f8f8f8", p.Background, id)
		}
	})
}

func TestBrandByMake(t *testing.T) {
	t.Parallel()

	v, ok := theme.BrandByMake("  Toyota ")
	require.True(t, ok)
	assert.Equal(t, "toyota", v.ID)

	v, ok = theme.BrandByMake("Mercedes-Benz")
	require.True(t, ok)
	assert.Equal(t, "mercedes", v.ID)

	_, ok = theme.BrandByMake("Tesla")
	assert.False(t, ok)
	_, ok = theme.BrandByMake("")
	assert.False(t, ok)
}

func TestResolveSelection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ford", theme.ResolveSelection(theme.Default, "Ford"))
	assert.Equal(t, theme.Classic, theme.ResolveSelection(theme.Default, "Tesla"))
	assert.Equal(t, theme.Classic, theme.ResolveSelection("", ""))
	assert.Equal(t, "winter", theme.ResolveSelection("winter", "Ford"))
	assert.Equal(t, theme.Custom, theme.ResolveSelection(theme.Custom, "Ford"))
}

func TestDropdownOptions(t *testing.T) {
	t.Parallel()

	opts := theme.DropdownOptions()
	require.Len(t, opts, len(theme.Catalog())+1)
	assert.Equal(t, theme.Default, opts[0].Value)
	assert.Equal(t, theme.Classic, opts[1].Value)
	assert.Equal(t, "toyota", opts[2].Value)
	assert.Equal(t, theme.Custom, opts[len(opts)-1].Value)
	assert.Equal(t, "Custom Colors", opts[len(opts)-1].Label)
}

func TestDarken(t *testing.T) {
	t.Parallel()

	t.Run("override table", func(t *testing.T) {
		assert.Equal(t, "#ff1c32", theme.Darken("#EB0A1E"))
		assert.Equal(t, "#16A34A", theme.Darken("#22C55E"))
		assert.Equal(t, "#7C3AED", theme.Darken("#8b5cf6"))
	})

	t.Run("formula for other colors", func(t *testing.T) {
		for _, in := range []string{"#0066CC", "#ffffff", "#010203", "#123456", "#000000"} {
			r, _ := strconv.ParseUint(in[1:3], 16, 8)
			g, _ := strconv.ParseUint(in[3:5], 16, 8)
			b, _ := strconv.ParseUint(in[5:7], 16, 8)
			want := fmt.Sprintf("#%02x%02x%02x", int(float64(r)*0.8), int(float64(g)*0.8), int(float64(b)*0.8))
			assert.Equal(t, want, theme.Darken(in), in)
		}
		assert.Equal(t, "#cccccc", theme.Darken("#ffffff"))
	})

	t.Run("malformed input unchanged", func(t *testing.T) {
		for _, in := range []string{"", "red", "#fff", "#GGGGGG", "0066CC", "#0066CC0"} {
			assert.Equal(t, in, theme.Darken(in))
		}
	})
}
