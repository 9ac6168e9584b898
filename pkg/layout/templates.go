package layout

import (
	"slices"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

// Template describes a layout for pickers and listings.
type Template struct {
	ID          offer.Layout
	Name        string
	Description string
	Preview     string
}

var templates = []Template{
	{offer.LayoutClassicSide, "Classic Side-by-Side", "Traditional price OR APR side by side layout", "[$299] OR [2.9% APR]"},
	{offer.LayoutBonusFocus, "Bonus Focus", "Large bonus cash prominently displayed", "[BONUS CASH] + [$299/mo]"},
	{offer.LayoutStacked, "Stacked Layout", "Vertical arrangement of all offers", "[$299] \n [2.9% APR] \n [BONUS]"},
	{offer.LayoutMinimalSingle, "Minimal Single", "One main offer with clean design", "[$299/month]"},
	{offer.LayoutAdaptiveAuto, "Adaptive Auto", "Automatically adjusts layout based on content", "[Smart Layout]"},
}

// Templates returns the layout catalog.
func Templates() []Template {
	return slices.Clone(templates)
}

// Find returns the template with the given id.
func Find(id offer.Layout) (Template, bool) {
	i := slices.IndexFunc(templates, func(t Template) bool { return t.ID == id })
	if i < 0 {
		return Template{}, false
	}
	return templates[i], true
}
