package offer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
	"github.com/dmitrymomot/offerkit/pkg/validator"
)

func completeOffer() offer.Offer {
	o := offer.New()
	return offer.Update(o,
		offer.SetVehicle("2025", "Honda", "Civic"),
		offer.SetPricing("$299", "", ""),
		offer.SetDisclaimer("Offer expires 12/31/2025."),
		offer.UpdateCTAButton(o.CTAButtons[0].ID, func(b *offer.CTAButton) { b.Link = "https://dealer.example.com" }),
	)
}

func clearButtonLinks(o offer.Offer) offer.Change {
	return offer.UpdateCTAButton(o.CTAButtons[0].ID, func(b *offer.CTAButton) { b.Link = "" })
}

func TestValidateForDownload(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()
		v := offer.ValidateForDownload(completeOffer())
		assert.True(t, v.IsValid)
		assert.Empty(t, v.MissingFields)
	})

	t.Run("empty keeps field order", func(t *testing.T) {
		t.Parallel()
		v := offer.ValidateForDownload(offer.New())
		assert.False(t, v.IsValid)
		assert.Equal(t, []string{
			"Model Year", "Make", "Model", "Price or APR", "Full Disclaimer", "CTA Button Link",
		}, v.MissingFields)
	})

	t.Run("apr satisfies pricing", func(t *testing.T) {
		t.Parallel()
		o := offer.Update(completeOffer(), offer.SetPricing("", "1.9%", ""))
		assert.True(t, offer.ValidateForDownload(o).IsValid)
	})

	t.Run("button link satisfies link", func(t *testing.T) {
		t.Parallel()
		o := completeOffer()
		o = offer.Update(o,
			offer.SetCTALink(""),
			offer.UpdateCTAButton(o.CTAButtons[0].ID, func(b *offer.CTAButton) { b.Link = "https://x.example" }),
		)
		assert.True(t, offer.ValidateForDownload(o).IsValid)
	})

	tests := []struct {
		name   string
		change func(o offer.Offer) []offer.Change
		want   []string
	}{
		{
			name: "legacy link alone is not enough",
			change: func(o offer.Offer) []offer.Change {
				return []offer.Change{clearButtonLinks(o), offer.SetCTALink("https://legacy.example.com")}
			},
			want: []string{"CTA Button Link"},
		},
		{
			name: "button without link",
			change: func(o offer.Offer) []offer.Change {
				return []offer.Change{clearButtonLinks(o)}
			},
			want: []string{"CTA Button Link"},
		},
		{
			name: "blank values count as missing",
			change: func(o offer.Offer) []offer.Change {
				return []offer.Change{
					offer.SetVehicle("  ", "Honda", "Civic"),
					offer.UpdateCTAButton(o.CTAButtons[0].ID, func(b *offer.CTAButton) { b.Link = " " }),
				}
			},
			want: []string{"Model Year", "CTA Button Link"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := completeOffer()
			v := offer.ValidateForDownload(offer.Update(o, tt.change(o)...))
			assert.False(t, v.IsValid)
			assert.Equal(t, tt.want, v.MissingFields)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, offer.Validate(completeOffer()))
	})

	t.Run("structural problems", func(t *testing.T) {
		t.Parallel()
		o := completeOffer()
		o.LayoutTemplate = "sideways"
		o.SelectedVariation = theme.Custom
		o.CustomColors = &theme.Colors{VehicleTitle: "red", Offers: "#123456", CTA: "#12345"}
		o.CTAButtons = append(o.CTAButtons, offer.CTAButton{ID: o.CTAButtons[0].ID, Style: "round", Size: offer.CTASmall, Link: "javascript:alert(1)"})
		o.Typography = &typography.Settings{HeaderSize: "huge"}
		o.DisclaimerSettings = &offer.DisclaimerSettings{DisplayMode: "hidden"}

		err := offer.Validate(o)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		errs := validator.ExtractValidationErrors(err)
		for _, field := range []string{
			"layoutTemplate",
			"customColors.vehicleTitle",
			"customColors.cta",
			"ctaButtons[1].id",
			"ctaButtons[1].style",
			"ctaButtons[1].link",
			"typography.headerSize",
			"disclaimerSettings.displayMode",
		} {
			assert.True(t, errs.Has(field), field)
		}
		assert.False(t, errs.Has("customColors.offers"))
		assert.False(t, errs.Has("ctaButtons[0].id"))
	})

	t.Run("unknown variation", func(t *testing.T) {
		t.Parallel()
		o := completeOffer()
		o.SelectedVariation = "neon"
		errs := validator.ExtractValidationErrors(offer.Validate(o))
		assert.True(t, errs.Has("selectedVariation"))
	})

	t.Run("custom colors ignored unless selected", func(t *testing.T) {
		t.Parallel()
		o := completeOffer()
		o.CustomColors = &theme.Colors{VehicleTitle: "bad"}
		assert.NoError(t, offer.Validate(o))
	})
}
