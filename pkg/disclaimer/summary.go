package disclaimer

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

// Tried in order; the first match wins. No-break spaces count as whitespace.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)expires?[\s\x{00A0}]+(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)through[\s\x{00A0}]+(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)until[\s\x{00A0}]+(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)by[\s\x{00A0}]+(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)expires?[\s\x{00A0}]+(\w+[\s\x{00A0}]+\d{1,2},?[\s\x{00A0}]+\d{4})`),
	regexp.MustCompile(`(?i)through[\s\x{00A0}]+(\w+[\s\x{00A0}]+\d{1,2},?[\s\x{00A0}]+\d{4})`),
}

// ExpirationDate finds the expiration date mentioned in text. The date is
// returned exactly as written.
func ExpirationDate(text string) (string, bool) {
	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Summary returns the one line summary for o.
func Summary(o offer.Offer) string {
	s := "Available on select new " + vehicleDescription(o) + " models."
	if date, ok := ExpirationDate(o.FullDisclaimer); ok {
		s += " Expires " + date + "."
	}
	return s
}

// vehicleDescription joins the set descriptors. With none set it falls back
// to the placeholder words.
func vehicleDescription(o offer.Offer) string {
	v := o.Vehicle()
	var parts []string
	for _, p := range []struct{ value, placeholder string }{
		{v.Year, offer.PlaceholderYear},
		{v.Make, offer.PlaceholderMake},
		{v.Model, offer.PlaceholderModel},
	} {
		if p.value != p.placeholder {
			parts = append(parts, p.value)
		}
	}
	if len(parts) == 0 {
		return v.String()
	}
	return strings.Join(parts, " ")
}
