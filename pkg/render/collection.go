package render

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/theme"
)

// CollectionTitle heads every multi-offer document.
const CollectionTitle = "Automotive Offers Collection"

type collectionOptions struct {
	now    func() time.Time
	locale language.Tag
}

// Option configures MultipleOffersHTML.
type Option func(*collectionOptions)

// WithClock sets the clock used for the generation date.
func WithClock(now func() time.Time) Option {
	return func(o *collectionOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLocale sets the locale of the generation date. US English is the
// default and the fallback for unsupported locales.
func WithLocale(tag language.Tag) Option {
	return func(o *collectionOptions) { o.locale = tag }
}

func newCollectionOptions(opts []Option) collectionOptions {
	o := collectionOptions{now: time.Now, locale: language.AmericanEnglish}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MultipleOffersHTML renders every offer with OfferHTML, in order, and wraps
// the documents in one collection page.
func MultipleOffersHTML(offers []offer.Offer, variationID string, custom *theme.Colors, opts ...Option) string {
	o := newCollectionOptions(opts)

	docs := make([]string, len(offers))
	for i, of := range offers {
		docs[i] = OfferHTML(of, variationID, custom)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <title>" + CollectionTitle + "</title>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("  <style>" + collectionStyles + "  </style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("  <div class=\"offers-collection\">\n")
	b.WriteString("    <div class=\"collection-header\">\n")
	b.WriteString("      <h1 class=\"collection-title\">" + CollectionTitle + "</h1>\n")
	b.WriteString("      <p class=\"collection-subtitle\">Generated on " + formatDate(o.now(), o.locale) + "</p>\n")
	b.WriteString("    </div>\n")
	b.WriteString("    " + strings.Join(docs, "\n\n") + "\n")
	b.WriteString("  </div>\n</body>\n</html>")
	return b.String()
}
