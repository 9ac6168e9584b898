package render

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/offerkit/pkg/disclaimer"
	"github.com/dmitrymomot/offerkit/pkg/layout"
	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
)

// OfferHTML renders o as a standalone HTML document using the given color
// variation. custom is only used when variationID is theme.Custom. Unknown
// variations render with the classic colors.
func OfferHTML(o offer.Offer, variationID string, custom *theme.Colors) string {
	palette := theme.Resolve(variationID, custom)
	fonts := typography.Resolve(o.TypographySettings())
	v := o.Vehicle()

	var b strings.Builder
	b.Grow(8 << 10)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <title>" + templ.EscapeString(v.String()+" Models") + "</title>\n")
	b.WriteString("  <style>" + stylesheet(palette, fonts) + "  </style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("  <div class=\"offer-container\">")
	b.WriteString(badge(o))
	b.WriteString("\n    <div class=\"offer-header\">")
	b.WriteString("\n      <div class=\"model-name\">" + header(o) + "</div>")
	b.WriteString("\n      <div class=\"offer-details\">" + layout.Render(o, layout.Detect(o)) + "\n      </div>")
	b.WriteString("\n    </div>")
	b.WriteString("\n    <div class=\"cta-container\">")
	b.WriteString("\n      " + ctaButtons(o))
	b.WriteString(dealerInfo(o))
	b.WriteString(footer(o))
	b.WriteString(disclaimer.Render(o))
	b.WriteString("\n    </div>")
	b.WriteString("\n  </div>\n")
	b.WriteString("  <script>" + pulseScript + "  </script>\n")
	b.WriteString("</body>\n</html>")

	return b.String()
}

// header substitutes every {YEAR}, {MAKE} and {MODEL} in the header text.
func header(o offer.Offer) string {
	v := o.Vehicle()
	return strings.NewReplacer(
		"{YEAR}", templ.EscapeString(v.Year),
		"{MAKE}", templ.EscapeString(v.Make),
		"{MODEL}", templ.EscapeString(v.Model),
	).Replace(templ.EscapeString(o.Header()))
}

func badge(o offer.Offer) string {
	if strings.TrimSpace(o.PromotionalBadge) == "" {
		return ""
	}
	return "\n    <div class=\"promotional-badge\">" + templ.EscapeString(o.PromotionalBadge) + "</div>"
}

func dealerInfo(o offer.Offer) string {
	name, location := strings.TrimSpace(o.DealerName), strings.TrimSpace(o.DealerLocation)
	if name == "" && location == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n      <div class=\"dealer-info\">")
	if name != "" {
		b.WriteString("\n        <div class=\"dealer-name\">" + templ.EscapeString(o.DealerName) + "</div>")
	}
	if location != "" {
		b.WriteString("\n        <div class=\"dealer-location\">" + templ.EscapeString(o.DealerLocation) + "</div>")
	}
	b.WriteString("\n      </div>")
	return b.String()
}

func footer(o offer.Offer) string {
	if strings.TrimSpace(o.FooterText) == "" {
		return ""
	}
	return "\n      <div class=\"footer-text\">" + templ.EscapeString(o.FooterText) + "</div>"
}
