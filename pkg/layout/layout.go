package layout

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

// Presence records which pricing fields hold non-blank text.
type Presence struct {
	Price   bool
	APR     bool
	APRCash bool
}

// Detect computes presence for o.
func Detect(o offer.Offer) Presence {
	return Presence{Price: o.HasPrice(), APR: o.HasAPR(), APRCash: o.HasAPRCash()}
}

// Count returns how many fields are present.
func (p Presence) Count() int {
	n := 0
	for _, ok := range []bool{p.Price, p.APR, p.APRCash} {
		if ok {
			n++
		}
	}
	return n
}

// Placeholder values shown when nothing is filled in.
const (
	PlaceholderPrice   = "PRICE"
	PlaceholderAPR     = "APR"
	PlaceholderBonus   = "BONUS"
	PlaceholderSpecial = "SPECIAL OFFER"
	PlaceholderContact = "Contact for Details"
)

// Render returns the offer-details fragment for o.
func Render(o offer.Offer, p Presence) string {
	v := newValues(o)
	switch o.LayoutTemplate {
	case offer.LayoutClassicSide:
		return classicSide(v, p)
	case offer.LayoutBonusFocus:
		return bonusFocus(v, p)
	case offer.LayoutStacked:
		return stacked(v, p)
	case offer.LayoutMinimalSingle:
		return minimalSingle(v, p)
	default:
		return adaptive(v, p)
	}
}

// values holds the escaped text a layout may show.
type values struct {
	price, apr, aprCash        string
	perMonth, or, aprAvailable string
}

func newValues(o offer.Offer) values {
	return values{
		price:        templ.EscapeString(o.Price),
		apr:          templ.EscapeString(o.APR),
		aprCash:      templ.EscapeString(o.APRCash),
		perMonth:     templ.EscapeString(o.PerMonth()),
		or:           templ.EscapeString(o.Or()),
		aprAvailable: templ.EscapeString(o.APRAvailable()),
	}
}

// option renders one offer-option block. Each line is one inner div.
func option(classes string, lines ...string) string {
	var b strings.Builder
	b.WriteString("\n<div class=\"offer-option")
	if classes != "" {
		b.WriteString(" " + classes)
	}
	b.WriteString("\">")
	for _, l := range lines {
		if l != "" {
			b.WriteString("\n  " + l)
		}
	}
	b.WriteString("\n</div>")
	return b.String()
}

func div(class, text string) string {
	return "<div class=\"" + class + "\">" + text + "</div>"
}

func orSeparator(v values) string {
	return "\n<div class=\"or\">" + v.or + "</div>"
}

func bonusIf(ok bool, v values) string {
	if !ok {
		return ""
	}
	return div("loyalty-bonus", v.aprCash)
}

func wrap(class string, inner ...string) string {
	return "\n<div class=\"" + class + "\">" + strings.Join(inner, "") + "\n</div>"
}

func classicSide(v values, p Presence) string {
	switch {
	case p.Price && p.APR:
		return option("", div("price", v.price), div("price-detail", v.perMonth)) +
			orSeparator(v) +
			option("", div("price", v.apr), div("price-detail", v.aprAvailable), bonusIf(p.APRCash, v))
	case p.Price:
		return option("single-centered", div("price large-single", v.price), div("price-detail", v.perMonth))
	case p.APR:
		return option("single-centered", div("price large-single", v.apr), div("price-detail", v.aprAvailable), bonusIf(p.APRCash, v))
	}
	return option("single-centered", div("price", PlaceholderPrice), div("price-detail", v.perMonth))
}

func bonusFocus(v values, p Presence) string {
	if !p.APRCash {
		return classicSide(v, p)
	}
	blocks := []string{option("bonus-primary", div("loyalty-bonus large-bonus", v.aprCash))}
	switch {
	case p.Price:
		blocks = append(blocks, option("bonus-secondary", div("price", v.price), div("price-detail", v.perMonth)))
	case p.APR:
		blocks = append(blocks, option("bonus-secondary", div("price", v.apr), div("price-detail", v.aprAvailable)))
	}
	return wrap("bonus-focus-layout", blocks...)
}

func stacked(v values, p Presence) string {
	var items []string
	if p.Price {
		items = append(items, option("stacked-item", div("price", v.price), div("price-detail", v.perMonth)))
	}
	if p.APR {
		items = append(items, option("stacked-item", div("price", v.apr), div("price-detail", v.aprAvailable)))
	}
	if p.APRCash {
		items = append(items, option("stacked-item", div("loyalty-bonus", v.aprCash)))
	}
	if len(items) == 0 {
		items = append(items, option("stacked-item", div("price", PlaceholderPrice), div("price-detail", v.perMonth)))
	}
	return wrap("stacked-layout", items...)
}

func minimalSingle(v values, p Presence) string {
	var block string
	switch {
	case p.Price:
		block = option("single-centered", div("price minimal-large", v.price), div("price-detail", v.perMonth))
	case p.APR:
		block = option("single-centered", div("price minimal-large", v.apr), div("price-detail", v.aprAvailable))
	case p.APRCash:
		block = option("single-centered", div("loyalty-bonus minimal-large", v.aprCash))
	default:
		block = option("single-centered", div("price minimal-large", PlaceholderSpecial), div("price-detail", PlaceholderContact))
	}
	return wrap("minimal-single-layout", block)
}

func adaptive(v values, p Presence) string {
	switch p.Count() {
	case 0:
		return option("single-centered", div("price", PlaceholderPrice), div("price-detail", v.perMonth)) +
			orSeparator(v) +
			option("", div("price", PlaceholderAPR), div("price-detail", v.aprAvailable), div("loyalty-bonus", PlaceholderBonus))
	case 1:
		switch {
		case p.Price:
			return option("single-centered", div("price large-single", v.price), div("price-detail", v.perMonth))
		case p.APR:
			return option("single-centered", div("price large-single", v.apr), div("price-detail", v.aprAvailable))
		default:
			return option("single-centered", div("loyalty-bonus large-single", v.aprCash))
		}
	case 2:
		switch {
		case p.Price && p.APR:
			return option("", div("price", v.price), div("price-detail", v.perMonth)) +
				orSeparator(v) +
				option("", div("price", v.apr), div("price-detail", v.aprAvailable))
		case p.Price:
			return wrap("offer-stack",
				option("", div("price", v.price), div("price-detail", v.perMonth)),
				option("", div("loyalty-bonus", v.aprCash)))
		default:
			return wrap("offer-stack",
				option("", div("price", v.apr), div("price-detail", v.aprAvailable)),
				option("", div("loyalty-bonus", v.aprCash)))
		}
	}
	return option("", div("price", v.price), div("price-detail", v.perMonth)) +
		orSeparator(v) +
		option("", div("price", v.apr), div("price-detail", v.aprAvailable), div("loyalty-bonus", v.aprCash))
}
