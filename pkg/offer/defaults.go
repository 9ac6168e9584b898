package offer

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
)

// DefaultCustomColor seeds the custom palette of a new offer.
const DefaultCustomColor = "#EB0A1E"

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}

// DefaultDisclaimerSettings returns auto mode with the toggle shown and a
// generated summary.
func DefaultDisclaimerSettings() DisclaimerSettings {
	return DisclaimerSettings{
		DisplayMode:         DisplayAuto,
		ShowToggle:          true,
		AutoGenerateSummary: true,
	}
}

// NewCTAButton returns a medium rounded "SHOP NOW" button with no link.
func NewCTAButton() CTAButton {
	return CTAButton{
		ID:    NewID(),
		Text:  DefaultCTAText,
		Style: CTARounded,
		Size:  CTAMedium,
	}
}

// NewPlaceholderImage returns the inert vehicle image record.
func NewPlaceholderImage() VehicleImage {
	return VehicleImage{
		ID:            NewID(),
		Filename:      "placeholder.jpg",
		AltText:       "Vehicle image placeholder",
		IsPlaceholder: true,
	}
}

// New returns an empty offer carrying every default a fresh form starts with.
func New() Offer {
	ty := typography.Default()
	ds := DefaultDisclaimerSettings()
	return Offer{
		ID:                NewID(),
		LayoutTemplate:    LayoutAdaptiveAuto,
		SelectedVariation: theme.Default,
		CustomColors: &theme.Colors{
			VehicleTitle: DefaultCustomColor,
			Offers:       DefaultCustomColor,
			CTA:          DefaultCustomColor,
		},
		CTAButtons:         []CTAButton{NewCTAButton()},
		Typography:         &ty,
		HeaderText:         DefaultHeaderText,
		PerMonthText:       DefaultPerMonthText,
		OrText:             DefaultOrText,
		APRAvailableText:   DefaultAPRAvailableText,
		DisclaimerSettings: &ds,
	}
}
