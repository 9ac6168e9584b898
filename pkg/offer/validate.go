package offer

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
	"github.com/dmitrymomot/offerkit/pkg/validator"
)

// Labels reported by ValidateForDownload.
const (
	FieldModelYear      = "Model Year"
	FieldMake           = "Make"
	FieldModel          = "Model"
	FieldPriceOrAPR     = "Price or APR"
	FieldFullDisclaimer = "Full Disclaimer"
	FieldCTALink        = "CTA Button Link"
)

// Validation is the download readiness of an offer.
type Validation struct {
	IsValid       bool
	MissingFields []string
}

// ValidateForDownload checks the fields an offer needs before it can be
// exported. MissingFields keeps a fixed order.
func ValidateForDownload(o Offer) Validation {
	err := validator.Apply(
		validator.RequiredString(FieldModelYear, o.ModelYear),
		validator.RequiredString(FieldMake, o.Make),
		validator.RequiredString(FieldModel, o.Model),
		validator.RequiredAny(FieldPriceOrAPR, o.Price, o.APR),
		validator.RequiredString(FieldFullDisclaimer, o.FullDisclaimer),
		hasCTALink(o),
	)
	missing := validator.ExtractValidationErrors(err).Fields()
	return Validation{IsValid: len(missing) == 0, MissingFields: missing}
}

// Only button links count. The legacy CTALink is a render fallback and does
// not make an offer ready on its own.
func hasCTALink(o Offer) validator.Rule {
	return validator.AnyOf(FieldCTALink, o.CTAButtons, func(b CTAButton) bool {
		return strings.TrimSpace(b.Link) != ""
	}, "at least one button needs a link")
}

// Validate checks the structure of a record: enum values, colors, links and
// button ids. It does not require content; see ValidateForDownload for that.
func Validate(o Offer) error {
	rules := []validator.Rule{
		validator.RequiredString("id", o.ID),
		validator.OneOfString("layoutTemplate", string(o.LayoutTemplate), strs(Layouts())),
		validator.URL("ctaLink", o.CTALink),
	}

	if o.SelectedVariation != "" && o.SelectedVariation != theme.Default {
		_, known := theme.Find(o.SelectedVariation)
		rules = append(rules, validator.Rule{
			Check: func() bool { return known },
			Error: validator.ValidationError{
				Field:          "selectedVariation",
				Message:        "unknown color variation",
				TranslationKey: "validation.unknown_variation",
				TranslationValues: map[string]any{
					"field": "selectedVariation",
					"value": o.SelectedVariation,
				},
			},
		})
	}

	if o.SelectedVariation == theme.Custom && o.CustomColors != nil {
		rules = append(rules,
			validator.HexColor("customColors.vehicleTitle", o.CustomColors.VehicleTitle),
			validator.HexColor("customColors.offers", o.CustomColors.Offers),
			validator.HexColor("customColors.cta", o.CustomColors.CTA),
		)
	}

	seen := make(map[string]bool, len(o.CTAButtons))
	for i, b := range o.CTAButtons {
		prefix := fmt.Sprintf("ctaButtons[%d].", i)
		duplicate := b.ID != "" && seen[b.ID]
		seen[b.ID] = true
		rules = append(rules,
			validator.RequiredString(prefix+"id", b.ID),
			validator.OneOfString(prefix+"style", string(b.Style), strs([]CTAStyle{CTARounded, CTASquare})),
			validator.OneOfString(prefix+"size", string(b.Size), strs([]CTASize{CTASmall, CTAMedium, CTALarge})),
			validator.URL(prefix+"link", b.Link),
			validator.Rule{
				Check: func() bool { return !duplicate },
				Error: validator.ValidationError{
					Field:          prefix + "id",
					Message:        "duplicate button id",
					TranslationKey: "validation.unique",
					TranslationValues: map[string]any{
						"field": prefix + "id",
					},
				},
			},
		)
	}

	if t := o.Typography; t != nil {
		sizes, weights := strs(typography.Sizes()), strs(typography.Weights())
		rules = append(rules,
			validator.OneOfString("typography.headerSize", string(t.HeaderSize), sizes),
			validator.OneOfString("typography.headerWeight", string(t.HeaderWeight), weights),
			validator.OneOfString("typography.priceSize", string(t.PriceSize), sizes),
			validator.OneOfString("typography.priceWeight", string(t.PriceWeight), weights),
			validator.OneOfString("typography.descriptionSize", string(t.DescriptionSize), sizes),
			validator.OneOfString("typography.descriptionWeight", string(t.DescriptionWeight), weights),
			validator.OneOfString("typography.ctaSize", string(t.CTASize), sizes),
			validator.OneOfString("typography.ctaWeight", string(t.CTAWeight), weights),
		)
	}

	if d := o.DisclaimerSettings; d != nil {
		rules = append(rules, validator.OneOfString("disclaimerSettings.displayMode", string(d.DisplayMode),
			strs([]DisplayMode{DisplayAuto, DisplayFull, DisplayTruncated})))
	}

	return validator.Apply(rules...)
}

func strs[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
