package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/theme"
)

// OfferComponent returns the OfferHTML document as a templ component.
func OfferComponent(o offer.Offer, variationID string, custom *theme.Colors) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, OfferHTML(o, variationID, custom))
		return err
	})
}

// CollectionComponent returns the MultipleOffersHTML document as a templ
// component.
func CollectionComponent(offers []offer.Offer, variationID string, custom *theme.Colors, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, MultipleOffersHTML(offers, variationID, custom, opts...))
		return err
	})
}

// ToString renders a component into a string.
func ToString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
