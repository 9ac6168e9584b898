package render_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/render"
	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
)

func camry() offer.Offer {
	return offer.Update(offer.New(),
		offer.SetVehicle("2025", "Toyota", "Camry"),
		offer.SetPricing("$299", "", ""),
		offer.SetDisclaimer("Offer expires 12/31/2025. See dealer for details."),
		offer.SetCTALink("https://dealer.example.com/camry"),
	)
}

func TestOfferHTML_Deterministic(t *testing.T) {
	t.Parallel()

	o := camry()
	first := render.OfferHTML(o, "toyota", nil)
	for range 3 {
		assert.Equal(t, first, render.OfferHTML(o, "toyota", nil))
	}
}

func TestOfferHTML_Document(t *testing.T) {
	t.Parallel()

	out := render.OfferHTML(camry(), "toyota", nil)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(out, "</html>"))
	assert.Contains(t, out, "<title>2025 Toyota Camry Models</title>")
	assert.Contains(t, out, `<div class="model-name">NEW 2025 Toyota Camry MODELS</div>`)
	assert.Contains(t, out, "btn.classList.remove('pulse'),5000")
	assert.Contains(t, out, "},1000);")
	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "src=")
}

func TestOfferHTML_HeaderPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		offer  offer.Offer
		header string
	}{
		{"unset fields use placeholder words", offer.Offer{}, "NEW YEAR MAKE MODEL MODELS"},
		{"custom header", offer.Offer{Make: "Ford", HeaderText: "{MAKE} DAYS"}, "Ford DAYS"},
		{"every occurrence", offer.Offer{Make: "Jeep", HeaderText: "{MAKE} {MAKE}"}, "Jeep Jeep"},
		{"escaped", offer.Offer{Make: "A&B", HeaderText: "<i>{MAKE}</i>"}, "&lt;i&gt;A&amp;B&lt;/i&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := render.OfferHTML(tt.offer, theme.Classic, nil)
			assert.Contains(t, out, `<div class="model-name">`+tt.header+`</div>`)
		})
	}
}

func TestOfferHTML_AdaptiveBranching(t *testing.T) {
	t.Parallel()

	priceOnly := render.OfferHTML(camry(), theme.Classic, nil)
	assert.Contains(t, priceOnly, `<div class="price large-single">$299</div>`)
	assert.NotContains(t, priceOnly, `class="or"`)

	both := render.OfferHTML(offer.Update(camry(), offer.SetPricing("$299", "2.9%", "")), theme.Classic, nil)
	assert.Contains(t, both, "$299")
	assert.Contains(t, both, `<div class="or">OR</div>`)
	assert.Contains(t, both, "2.9%")
	assert.Less(t, strings.Index(both, "$299"), strings.Index(both, `<div class="or">`))
	assert.Less(t, strings.Index(both, `<div class="or">`), strings.Index(both, "2.9%"))
}

func TestOfferHTML_Colors(t *testing.T) {
	t.Parallel()

	t.Run("custom colors take precedence", func(t *testing.T) {
		t.Parallel()
		custom := &theme.Colors{VehicleTitle: "#111111", Offers: "#222222", CTA: "#333333"}
		out := render.OfferHTML(camry(), theme.Custom, custom)

		assert.Contains(t, out, "color:#111111;margin-bottom:8px")
		assert.Contains(t, out, ".price{font-size:24px;font-weight:800;color:#222222")
		assert.Contains(t, out, "background:#333333;text-decoration:none")
		assert.Contains(t, out, ".cta:hover{transform:translateY(-2px);box-shadow:0 5px 10px rgba(0,0,0,0.3);background:#282828}")
		assert.NotContains(t, out, "#EB0A1E")
	})

	t.Run("custom colors ignored for other variations", func(t *testing.T) {
		t.Parallel()
		custom := &theme.Colors{VehicleTitle: "#111111", Offers: "#222222", CTA: "#333333"}
		out := render.OfferHTML(camry(), "ford", custom)
		assert.NotContains(t, out, "#111111")
		assert.Contains(t, out, "color:#003478")
	})

	t.Run("unknown variation falls back to classic", func(t *testing.T) {
		t.Parallel()
		classic, ok := theme.Find(theme.Classic)
		require.True(t, ok)

		out := render.OfferHTML(camry(), "nonexistent-id", nil)
		assert.Contains(t, out, "color:"+classic.PrimaryColor)
		assert.Contains(t, out, "background:"+classic.BackgroundColor+"}")
		assert.Equal(t, render.OfferHTML(camry(), theme.Classic, nil), out)
	})

	t.Run("hover uses darken table", func(t *testing.T) {
		t.Parallel()
		out := render.OfferHTML(camry(), "toyota", nil)
		assert.Contains(t, out, "background:#ff1c32}")
	})
}

func TestOfferHTML_Typography(t *testing.T) {
	t.Parallel()

	o := camry()
	o.Typography = &typography.Settings{HeaderSize: typography.Small, HeaderWeight: typography.Normal, CTASize: "giant"}
	out := render.OfferHTML(o, theme.Classic, nil)

	assert.Contains(t, out, ".model-name{font-size:12px;font-weight:400;")
	assert.Contains(t, out, ".price{font-size:24px;font-weight:800;")
	assert.Contains(t, out, ".cta-medium{padding:10px 22px;font-size:16px}")
	assert.Contains(t, out, ".cta-small{padding:6px 12px;font-size:calc(16px * 0.8)}")
	assert.Contains(t, out, ".large-single{font-size:calc(24px * 1.3) !important}")
}

func TestOfferHTML_CTA(t *testing.T) {
	t.Parallel()

	t.Run("legacy link fallback", func(t *testing.T) {
		t.Parallel()
		o := offer.Offer{Make: "Honda", Model: "Civic", CTALink: "https://example.com"}
		out := render.OfferHTML(o, theme.Classic, nil)

		assert.Equal(t, 1, strings.Count(out, "<a href="))
		assert.Contains(t, out, `<a href="https://example.com" class="cta cta-medium cta-rounded pulse">`)
		assert.Contains(t, out, "View Honda Civic")
	})

	t.Run("legacy link without vehicle", func(t *testing.T) {
		t.Parallel()
		out := render.OfferHTML(offer.Offer{CTALink: "https://example.com"}, theme.Classic, nil)
		assert.Contains(t, out, "View Inventory")
	})

	t.Run("no buttons and no link", func(t *testing.T) {
		t.Parallel()
		out := render.OfferHTML(offer.Offer{}, theme.Classic, nil)
		assert.NotContains(t, out, "<a href=")
	})

	t.Run("buttons", func(t *testing.T) {
		t.Parallel()
		o := offer.Offer{
			CTALink: "https://legacy.example.com",
			CTAButtons: []offer.CTAButton{
				{ID: "1", Text: "APPLY", Link: "https://apply.example.com?a=1&b=2", Style: offer.CTASquare, Size: offer.CTALarge},
				{ID: "2", Style: offer.CTARounded, Size: offer.CTASmall},
				{ID: "3", Text: "BAD", Link: "javascript:alert(1)", Style: "wavy", Size: "huge"},
			},
		}
		out := render.OfferHTML(o, theme.Classic, nil)

		assert.Equal(t, 3, strings.Count(out, "<a href="))
		assert.Contains(t, out, `<a href="https://apply.example.com?a=1&amp;b=2" class="cta cta-large cta-square pulse">`)
		assert.Contains(t, out, `<a href="https://legacy.example.com" class="cta cta-small cta-rounded pulse">`)
		assert.Contains(t, out, "SHOP NOW")
		assert.NotContains(t, out, "javascript:")
		assert.Contains(t, out, `class="cta cta-medium cta-rounded pulse"`)
		assert.Contains(t, out, `<span class="icon">→</span>`)
	})

	t.Run("links are trimmed and sms survives", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			o    offer.Offer
			want string
		}{
			{
				name: "padded button link",
				o:    offer.Offer{CTAButtons: []offer.CTAButton{{ID: "1", Link: "  https://dealer.example.com/civic \n"}}},
				want: `<a href="https://dealer.example.com/civic" class=`,
			},
			{
				name: "blank button falls back to padded legacy link",
				o:    offer.Offer{CTALink: " https://legacy.example.com ", CTAButtons: []offer.CTAButton{{ID: "1", Link: "   "}}},
				want: `<a href="https://legacy.example.com" class=`,
			},
			{
				name: "padded legacy link",
				o:    offer.Offer{Make: "Honda", CTALink: "\thttps://legacy.example.com "},
				want: `<a href="https://legacy.example.com" class=`,
			},
			{
				name: "sms link",
				o:    offer.Offer{CTAButtons: []offer.CTAButton{{ID: "1", Link: "sms:+15551234567"}}},
				want: `<a href="sms:+15551234567" class=`,
			},
			{
				name: "padded sms link",
				o:    offer.Offer{CTAButtons: []offer.CTAButton{{ID: "1", Link: " SMS:+15551234567 "}}},
				want: `<a href="SMS:+15551234567" class=`,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				out := render.OfferHTML(tt.o, theme.Classic, nil)
				assert.Contains(t, out, tt.want)
				assert.NotContains(t, out, "TemplFailedSanitizationURL")
			})
		}
	})

	t.Run("unknown schemes are neutralized", func(t *testing.T) {
		t.Parallel()
		o := offer.Offer{CTAButtons: []offer.CTAButton{{ID: "1", Link: "data:text/html,hi"}, {ID: "2", Link: "sms:"}}}
		out := render.OfferHTML(o, theme.Classic, nil)
		assert.Equal(t, 2, strings.Count(out, "TemplFailedSanitizationURL"))
	})

	t.Run("hash when nothing links", func(t *testing.T) {
		t.Parallel()
		out := render.OfferHTML(offer.New(), theme.Classic, nil)
		assert.Contains(t, out, `<a href="#" class="cta cta-medium cta-rounded pulse">`)
	})
}

func TestOfferHTML_OptionalFragments(t *testing.T) {
	t.Parallel()

	bare := render.OfferHTML(camry(), theme.Classic, nil)
	assert.NotContains(t, bare, `<div class="promotional-badge">`)
	assert.NotContains(t, bare, `<div class="dealer-info">`)
	assert.NotContains(t, bare, `<div class="footer-text">`)

	blank := render.OfferHTML(offer.Update(camry(), offer.SetPromotionalBadge("  "), offer.SetFooterText(" ")), theme.Classic, nil)
	assert.NotContains(t, blank, `<div class="promotional-badge">`)
	assert.NotContains(t, blank, `<div class="footer-text">`)

	full := render.OfferHTML(offer.Update(camry(),
		offer.SetPromotionalBadge("HOT DEAL"),
		offer.SetDealer("", "Springfield"),
		offer.SetFooterText("While supplies last"),
	), theme.Classic, nil)
	assert.Contains(t, full, `<div class="promotional-badge">HOT DEAL</div>`)
	assert.Contains(t, full, `<div class="dealer-location">Springfield</div>`)
	assert.NotContains(t, full, `<div class="dealer-name">`)
	assert.Contains(t, full, `<div class="footer-text">While supplies last</div>`)
}

func TestOfferHTML_Disclaimer(t *testing.T) {
	t.Parallel()

	out := render.OfferHTML(camry(), theme.Classic, nil)
	assert.Contains(t, out, "Expires 12/31/2025.")
	assert.Contains(t, out, "See Details")
}

func TestOfferHTML_DegradesOnEmptyOffer(t *testing.T) {
	t.Parallel()

	out := render.OfferHTML(offer.Offer{}, "", nil)
	assert.Contains(t, out, "NEW YEAR MAKE MODEL MODELS")
	assert.Contains(t, out, `<div class="price">PRICE</div>`)
	assert.Contains(t, out, "Disclaimer text will appear here.")
}

func fixedClock() time.Time {
	return time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
}

func TestMultipleOffersHTML(t *testing.T) {
	t.Parallel()

	offers := []offer.Offer{
		offer.Update(camry(), offer.SetVehicle("2025", "Toyota", "Camry")),
		offer.Update(camry(), offer.SetVehicle("2025", "Toyota", "RAV4")),
		offer.Update(camry(), offer.SetVehicle("2025", "Toyota", "Tacoma")),
	}
	out := render.MultipleOffersHTML(offers, "toyota", nil, render.WithClock(fixedClock))

	assert.Equal(t, len(offers)+1, strings.Count(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<h1 class="collection-title">Automotive Offers Collection</h1>`)
	assert.Contains(t, out, "Generated on 3/4/2025")

	camryAt := strings.Index(out, "2025 Toyota Camry Models")
	rav4At := strings.Index(out, "2025 Toyota RAV4 Models")
	tacomaAt := strings.Index(out, "2025 Toyota Tacoma Models")
	assert.Less(t, camryAt, rav4At)
	assert.Less(t, rav4At, tacomaAt)

	for _, o := range offers {
		assert.Contains(t, out, render.OfferHTML(o, "toyota", nil))
	}

	assert.Equal(t, out, render.MultipleOffersHTML(offers, "toyota", nil, render.WithClock(fixedClock)))
}

func TestMultipleOffersHTML_Empty(t *testing.T) {
	t.Parallel()

	out := render.MultipleOffersHTML(nil, theme.Classic, nil, render.WithClock(fixedClock))
	assert.Equal(t, 1, strings.Count(out, "<!DOCTYPE html>"))
}

func TestMultipleOffersHTML_Locale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale language.Tag
		want   string
	}{
		{language.AmericanEnglish, "Generated on 3/4/2025"},
		{language.BritishEnglish, "Generated on 04/03/2025"},
		{language.German, "Generated on 4.3.2025"},
		{language.Japanese, "Generated on 2025/3/4"},
		{language.Und, "Generated on 3/4/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.locale.String(), func(t *testing.T) {
			t.Parallel()
			out := render.MultipleOffersHTML(nil, theme.Classic, nil,
				render.WithClock(fixedClock), render.WithLocale(tt.locale), render.WithClock(nil))
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestComponents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	o := camry()

	got, err := render.ToString(ctx, render.OfferComponent(o, "toyota", nil))
	require.NoError(t, err)
	assert.Equal(t, render.OfferHTML(o, "toyota", nil), got)

	got, err = render.ToString(ctx, render.CollectionComponent([]offer.Offer{o}, "toyota", nil, render.WithClock(fixedClock)))
	require.NoError(t, err)
	assert.Equal(t, render.MultipleOffersHTML([]offer.Offer{o}, "toyota", nil, render.WithClock(fixedClock)), got)
}

func TestOfferHTML_Concurrent(t *testing.T) {
	t.Parallel()

	o := camry()
	want := render.OfferHTML(o, "honda", nil)

	done := make(chan string)
	for range 8 {
		go func() { done <- render.OfferHTML(o, "honda", nil) }()
	}
	for range 8 {
		assert.Equal(t, want, <-done)
	}
}
