package render

import (
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

// ctaButtons renders one anchor per button. Without buttons, a legacy link
// becomes a single "View {make model}" anchor.
func ctaButtons(o offer.Offer) string {
	legacy := strings.TrimSpace(o.CTALink)
	if len(o.CTAButtons) == 0 {
		if legacy == "" {
			return ""
		}
		label := strings.Join(slices.DeleteFunc([]string{o.Make, o.Model}, func(s string) bool { return s == "" }), " ")
		if label == "" {
			label = "Inventory"
		}
		return anchor(legacy, "View "+label, offer.CTAMedium, offer.CTARounded)
	}

	anchors := make([]string, 0, len(o.CTAButtons))
	for _, btn := range o.CTAButtons {
		link := strings.TrimSpace(btn.Link)
		if link == "" {
			link = legacy
		}
		if link == "" {
			link = "#"
		}
		text := btn.Text
		if text == "" {
			text = offer.DefaultCTAText
		}
		anchors = append(anchors, anchor(link, text, btn.Size, btn.Style))
	}
	return strings.Join(anchors, " ")
}

func anchor(link, text string, size offer.CTASize, style offer.CTAStyle) string {
	switch size {
	case offer.CTASmall, offer.CTAMedium, offer.CTALarge:
	default:
		size = offer.CTAMedium
	}
	switch style {
	case offer.CTARounded, offer.CTASquare:
	default:
		style = offer.CTARounded
	}
	href := templ.EscapeString(string(safeURL(link)))
	return `<a href="` + href + `" class="cta cta-` + string(size) + ` cta-` + string(style) + ` pulse">` +
		"\n        " + templ.EscapeString(text) + ` <span class="icon">→</span>` +
		"\n      </a>"
}

// safeURL lets sms links through on top of the schemes templ allows.
// Anything else becomes templ's failed sanitization marker.
func safeURL(link string) templ.SafeURL {
	if scheme, rest, ok := strings.Cut(link, ":"); ok && strings.EqualFold(scheme, "sms") && rest != "" {
		return templ.SafeURL(link)
	}
	return templ.URL(link)
}
