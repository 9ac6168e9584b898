package export

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/render"
)

const generatedLayout = "1/2/2006, 3:04:05 PM"

// PlainText renders the .txt form of one offer.
func PlainText(o offer.Offer, opts Options, now time.Time) string {
	var b strings.Builder

	title := o.Vehicle().String() + " Automotive Offer"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(title)) + "\n\n")

	if o.Price != "" {
		fmt.Fprintf(&b, "Price: %s %s\n", o.Price, o.PerMonth())
	}
	if o.APR != "" {
		fmt.Fprintf(&b, "APR: %s\n", o.APR)
	}
	if o.APRCash != "" {
		fmt.Fprintf(&b, "Bonus: %s\n", o.APRCash)
	}

	b.WriteString("\nCall-to-Action Buttons:\n")
	for i, btn := range o.CTAButtons {
		fmt.Fprintf(&b, "  %d. %s - %s\n", i+1, btn.Text, btn.Link)
	}

	if o.DealerName != "" {
		fmt.Fprintf(&b, "\nDealer: %s\n", o.DealerName)
	}
	if o.DealerLocation != "" {
		fmt.Fprintf(&b, "Location: %s\n", o.DealerLocation)
	}

	fmt.Fprintf(&b, "\nDisclaimer:\n%s\n", o.FullDisclaimer)

	if opts.IncludeTimestamp {
		fmt.Fprintf(&b, "\nGenerated: %s\n", now.Format(generatedLayout))
	}
	return b.String()
}

// PlainTextCollection renders the .txt form of several offers.
func PlainTextCollection(offers []offer.Offer, opts Options, now time.Time) string {
	var b strings.Builder
	b.WriteString(render.CollectionTitle + "\n" + strings.Repeat("=", 30) + "\n\n")
	for i, o := range offers {
		fmt.Fprintf(&b, "Offer #%d\n%s\n", i+1, strings.Repeat("-", 10))
		b.WriteString(PlainText(o, opts, now))
		b.WriteString("\n\n")
	}
	return b.String()
}
