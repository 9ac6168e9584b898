package offer

import (
	"slices"

	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
)

// Change edits a private copy of an offer inside Update.
type Change func(*Offer)

// Update returns a copy of o with changes applied in order. o is not
// modified.
func Update(o Offer, changes ...Change) Offer {
	c := Clone(o)
	for _, change := range changes {
		if change != nil {
			change(&c)
		}
	}
	return c
}

// Clone returns a deep copy of o.
func Clone(o Offer) Offer {
	c := o
	c.CTAButtons = slices.Clone(o.CTAButtons)
	if o.CustomColors != nil {
		v := *o.CustomColors
		c.CustomColors = &v
	}
	if o.Typography != nil {
		v := *o.Typography
		c.Typography = &v
	}
	if o.DisclaimerSettings != nil {
		v := *o.DisclaimerSettings
		c.DisclaimerSettings = &v
	}
	if o.VehicleImage != nil {
		v := *o.VehicleImage
		c.VehicleImage = &v
	}
	return c
}

// Duplicate copies o under a new id. Button ids are regenerated too.
func Duplicate(o Offer) Offer {
	c := Clone(o)
	c.ID = NewID()
	for i := range c.CTAButtons {
		c.CTAButtons[i].ID = NewID()
	}
	return c
}

func SetVehicle(year, vehicleMake, model string) Change {
	return func(o *Offer) {
		o.ModelYear, o.Make, o.Model = year, vehicleMake, model
	}
}

func SetPricing(price, apr, aprCash string) Change {
	return func(o *Offer) {
		o.Price, o.APR, o.APRCash = price, apr, aprCash
	}
}

func SetLayout(l Layout) Change {
	return func(o *Offer) { o.LayoutTemplate = l }
}

// SetVariation selects a color variation. Custom colors already on the
// record are kept so switching back to "custom" restores them.
func SetVariation(id string) Change {
	return func(o *Offer) { o.SelectedVariation = id }
}

// SetCustomColors stores the palette and selects the custom variation.
func SetCustomColors(c theme.Colors) Change {
	return func(o *Offer) {
		o.SelectedVariation = theme.Custom
		o.CustomColors = &c
	}
}

func SetTypography(s typography.Settings) Change {
	return func(o *Offer) { o.Typography = &s }
}

// ApplyPreset replaces typography with a named preset. Unknown ids leave
// the record unchanged.
func ApplyPreset(id string) Change {
	return func(o *Offer) {
		if p, ok := typography.FindPreset(id); ok {
			s := p.Settings
			o.Typography = &s
		}
	}
}

func SetDisclaimer(text string) Change {
	return func(o *Offer) { o.FullDisclaimer = text }
}

func SetDisclaimerSettings(s DisclaimerSettings) Change {
	return func(o *Offer) { o.DisclaimerSettings = &s }
}

func SetHeaderText(text string) Change {
	return func(o *Offer) { o.HeaderText = text }
}

func SetPromotionalBadge(text string) Change {
	return func(o *Offer) { o.PromotionalBadge = text }
}

func SetFooterText(text string) Change {
	return func(o *Offer) { o.FooterText = text }
}

func SetDealer(name, location string) Change {
	return func(o *Offer) { o.DealerName, o.DealerLocation = name, location }
}

// SetCaptions sets the per-month, "or" and APR captions.
func SetCaptions(perMonth, or, aprAvailable string) Change {
	return func(o *Offer) {
		o.PerMonthText, o.OrText, o.APRAvailableText = perMonth, or, aprAvailable
	}
}

// SetCTALink sets the legacy single link.
func SetCTALink(link string) Change {
	return func(o *Offer) { o.CTALink = link }
}

// SetVehicleImage stores a copy of img. Nil clears the image.
func SetVehicleImage(img *VehicleImage) Change {
	return func(o *Offer) {
		if img == nil {
			o.VehicleImage = nil
			return
		}
		v := *img
		o.VehicleImage = &v
	}
}

// AddCTAButton appends b. A missing or already used id is replaced.
func AddCTAButton(b CTAButton) Change {
	return func(o *Offer) {
		if b.ID == "" || slices.ContainsFunc(o.CTAButtons, func(x CTAButton) bool { return x.ID == b.ID }) {
			b.ID = NewID()
		}
		o.CTAButtons = append(o.CTAButtons, b)
	}
}

// UpdateCTAButton edits the button with the given id. The id itself cannot
// be changed.
func UpdateCTAButton(id string, edit func(*CTAButton)) Change {
	return func(o *Offer) {
		for i := range o.CTAButtons {
			if o.CTAButtons[i].ID == id {
				edit(&o.CTAButtons[i])
				o.CTAButtons[i].ID = id
				return
			}
		}
	}
}

// RemoveCTAButton drops the button with id. The last remaining button is
// kept.
func RemoveCTAButton(id string) Change {
	return func(o *Offer) {
		if len(o.CTAButtons) <= 1 {
			return
		}
		o.CTAButtons = slices.DeleteFunc(o.CTAButtons, func(b CTAButton) bool { return b.ID == id })
	}
}
