package disclaimer

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

// DefaultText stands in for a missing disclaimer.
const DefaultText = "Disclaimer text will appear here."

const toggle = `<span class="disclaimer-toggle" onclick="
      const c=this.closest('.disclaimer-container'),
            f=c.querySelector('.disclaimer-full');
      f.classList.toggle('active');
      this.textContent = f.classList.contains('active') ? 'Hide Details' : 'See Details';
    ">See Details</span>`

// Render returns the disclaimer fragment for o.
//
// Auto mode, also used for nil or unknown settings, shows the summary with
// the toggle unless ShowToggle is false. Full mode shows the whole text.
// Truncated mode shows the summary, or CustomTruncatedText when summary
// generation is off, and shows the toggle only when ShowToggle is set.
func Render(o offer.Offer) string {
	full := o.FullDisclaimer
	if full == "" {
		full = DefaultText
	}
	full = templ.EscapeString(full)

	s := o.DisclaimerSettings
	if s == nil {
		return summaryBlock(Summary(o), full, true)
	}

	switch s.DisplayMode {
	case offer.DisplayFull:
		return "\n<div class=\"disclaimer-container\">" +
			"\n  <div class=\"disclaimer-full active\" style=\"display: block;\">*" + full + "</div>" +
			"\n</div>"
	case offer.DisplayTruncated:
		text := Summary(o)
		if !s.AutoGenerateSummary && strings.TrimSpace(s.CustomTruncatedText) != "" {
			text = s.CustomTruncatedText
		}
		return summaryBlock(text, full, s.ShowToggle)
	case offer.DisplayAuto:
		return summaryBlock(Summary(o), full, s.ShowToggle)
	default:
		return summaryBlock(Summary(o), full, true)
	}
}

func summaryBlock(summary, full string, withToggle bool) string {
	var b strings.Builder
	b.WriteString("\n<div class=\"disclaimer-container\">")
	b.WriteString("\n  <div class=\"disclaimer-summary\">")
	b.WriteString("\n    *" + templ.EscapeString(summary))
	if withToggle {
		b.WriteString("\n    " + toggle)
	}
	b.WriteString("\n  </div>")
	if withToggle {
		b.WriteString("\n  <div class=\"disclaimer-full\">" + full + "</div>")
	}
	b.WriteString("\n</div>")
	return b.String()
}
