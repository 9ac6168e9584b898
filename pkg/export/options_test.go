package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/offerkit/pkg/export"
	"github.com/dmitrymomot/offerkit/pkg/offer"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	opts := export.DefaultOptions()
	assert.Equal(t, export.FormatHTML, opts.Format)
	assert.True(t, opts.IncludeInlineCSS)
	assert.True(t, opts.IncludeTimestamp)
	assert.NoError(t, opts.Validate())

	assert.ErrorIs(t, export.Options{Format: "pdf"}.Validate(), export.ErrInvalidOptions)
	assert.ErrorIs(t, export.Options{}.Validate(), export.ErrInvalidOptions)
}

func TestFilename(t *testing.T) {
	t.Parallel()

	dated := export.Options{IncludeTimestamp: true}
	plain := export.Options{}

	tests := []struct {
		name  string
		offer offer.Offer
		ext   string
		opts  export.Options
		want  string
	}{
		{"make and model", offer.Offer{Make: "Honda", Model: "Civic"}, "html", plain, "honda-civic.html"},
		{"dated", offer.Offer{Make: "Honda", Model: "Civic"}, "txt", dated, "honda-civic-2025-03-04.txt"},
		{"fallbacks", offer.Offer{}, "html", plain, "vehicle-offer.html"},
		{"slugified", offer.Offer{Make: "Mercedes-Benz", Model: "C 300 4MATIC"}, "html", plain, "mercedes-benz-c-300-4matic.html"},
		{"custom name", offer.Offer{Make: "Honda"}, "html", export.Options{CustomFilename: "spring/promo"}, "spring_promo.html"},
		{"custom name with extension", offer.Offer{}, "html", export.Options{CustomFilename: "promo.html", IncludeTimestamp: true}, "promo-2025-03-04.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, export.Filename(tt.offer, tt.ext, tt.opts, fixedNow()))
		})
	}

	assert.Equal(t, "automotive-offers-collection.html", export.CollectionFilename("html", plain, fixedNow()))
	assert.Equal(t, "automotive-offers-collection-2025-03-04.txt", export.CollectionFilename("txt", dated, fixedNow()))
}
