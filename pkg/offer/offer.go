package offer

import (
	"strings"

	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
)

// Layout selects how price, APR and bonus cash are arranged.
type Layout string

const (
	LayoutClassicSide   Layout = "classic-side"
	LayoutBonusFocus    Layout = "bonus-focus"
	LayoutStacked       Layout = "stacked-layout"
	LayoutMinimalSingle Layout = "minimal-single"
	LayoutAdaptiveAuto  Layout = "adaptive-auto"
)

// Layouts lists every layout id.
func Layouts() []Layout {
	return []Layout{LayoutClassicSide, LayoutBonusFocus, LayoutStacked, LayoutMinimalSingle, LayoutAdaptiveAuto}
}

// CTAStyle is the corner style of a button.
type CTAStyle string

const (
	CTARounded CTAStyle = "rounded"
	CTASquare  CTAStyle = "square"
)

// CTASize is the padding preset of a button.
type CTASize string

const (
	CTASmall  CTASize = "small"
	CTAMedium CTASize = "medium"
	CTALarge  CTASize = "large"
)

// DisplayMode controls how the legal disclaimer is shown.
type DisplayMode string

const (
	DisplayAuto      DisplayMode = "auto"
	DisplayFull      DisplayMode = "full"
	DisplayTruncated DisplayMode = "truncated"
)

// CTAButton is one call-to-action link. IDs are unique within an offer.
type CTAButton struct {
	ID    string   `json:"id" yaml:"id"`
	Text  string   `json:"text" yaml:"text"`
	Link  string   `json:"link" yaml:"link"`
	Style CTAStyle `json:"style" yaml:"style"`
	Size  CTASize  `json:"size" yaml:"size"`
}

// DisclaimerSettings configures the disclaimer block.
type DisclaimerSettings struct {
	DisplayMode         DisplayMode `json:"displayMode" yaml:"displayMode"`
	CustomTruncatedText string      `json:"customTruncatedText,omitempty" yaml:"customTruncatedText,omitempty"`
	ShowToggle          bool        `json:"showToggle" yaml:"showToggle"`
	AutoGenerateSummary bool        `json:"autoGenerateSummary" yaml:"autoGenerateSummary"`
}

// VehicleImage is a placeholder for a future image feature. It has no
// effect on rendering.
type VehicleImage struct {
	ID            string `json:"id" yaml:"id"`
	Filename      string `json:"filename" yaml:"filename"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	AltText       string `json:"altText" yaml:"altText"`
	IsPlaceholder bool   `json:"isPlaceholder" yaml:"isPlaceholder"`
}

// Offer is one advertised vehicle deal. Empty strings mean "unset"; pricing
// fields are display text, never parsed as numbers.
type Offer struct {
	ID string `json:"id" yaml:"id"`

	ModelYear string `json:"modelYear" yaml:"modelYear"`
	Make      string `json:"make" yaml:"make"`
	Model     string `json:"model" yaml:"model"`

	Price   string `json:"price" yaml:"price"`
	APR     string `json:"apr" yaml:"apr"`
	APRCash string `json:"aprCash" yaml:"aprCash"`

	// CTALink is the legacy single link, used when a button has no link of
	// its own or when there are no buttons.
	CTALink        string `json:"ctaLink,omitempty" yaml:"ctaLink,omitempty"`
	FullDisclaimer string `json:"fullDisclaimer" yaml:"fullDisclaimer"`

	LayoutTemplate    Layout        `json:"layoutTemplate" yaml:"layoutTemplate"`
	SelectedVariation string        `json:"selectedVariation" yaml:"selectedVariation"`
	CustomColors      *theme.Colors `json:"customColors,omitempty" yaml:"customColors,omitempty"`

	CTAButtons []CTAButton          `json:"ctaButtons" yaml:"ctaButtons"`
	Typography *typography.Settings `json:"typography,omitempty" yaml:"typography,omitempty"`

	HeaderText       string `json:"headerText" yaml:"headerText"`
	PromotionalBadge string `json:"promotionalBadge" yaml:"promotionalBadge"`
	FooterText       string `json:"footerText" yaml:"footerText"`
	DealerName       string `json:"dealerName" yaml:"dealerName"`
	DealerLocation   string `json:"dealerLocation" yaml:"dealerLocation"`

	PerMonthText     string `json:"perMonthText" yaml:"perMonthText"`
	OrText           string `json:"orText" yaml:"orText"`
	APRAvailableText string `json:"aprAvailableText" yaml:"aprAvailableText"`

	DisclaimerSettings *DisclaimerSettings `json:"disclaimerSettings,omitempty" yaml:"disclaimerSettings,omitempty"`
	VehicleImage       *VehicleImage       `json:"vehicleImage,omitempty" yaml:"vehicleImage,omitempty"`
}

// Placeholder words shown in place of unset vehicle descriptors.
const (
	PlaceholderYear  = "YEAR"
	PlaceholderMake  = "MAKE"
	PlaceholderModel = "MODEL"
)

// Vehicle is the display form of the vehicle descriptors.
type Vehicle struct {
	Year  string
	Make  string
	Model string
}

// Vehicle returns the descriptors with placeholder words for unset fields.
func (o Offer) Vehicle() Vehicle {
	return Vehicle{
		Year:  orDefault(o.ModelYear, PlaceholderYear),
		Make:  orDefault(o.Make, PlaceholderMake),
		Model: orDefault(o.Model, PlaceholderModel),
	}
}

// String joins the three descriptors with spaces.
func (v Vehicle) String() string {
	return v.Year + " " + v.Make + " " + v.Model
}

// Caption defaults.
const (
	DefaultPerMonthText     = "per month"
	DefaultOrText           = "OR"
	DefaultAPRAvailableText = "APR Available"
	DefaultHeaderText       = "NEW {YEAR} {MAKE} {MODEL} MODELS"
	DefaultCTAText          = "SHOP NOW"
)

func (o Offer) PerMonth() string     { return orDefault(o.PerMonthText, DefaultPerMonthText) }
func (o Offer) Or() string           { return orDefault(o.OrText, DefaultOrText) }
func (o Offer) APRAvailable() string { return orDefault(o.APRAvailableText, DefaultAPRAvailableText) }
func (o Offer) Header() string       { return orDefault(o.HeaderText, DefaultHeaderText) }

// TypographySettings returns the offer's typography or the default.
func (o Offer) TypographySettings() typography.Settings {
	if o.Typography == nil {
		return typography.Default()
	}
	return *o.Typography
}

// Variation returns the concrete variation id and custom colors the offer
// should be rendered with. Custom colors are only passed along for the
// custom variation.
func (o Offer) Variation() (string, *theme.Colors) {
	id := theme.ResolveSelection(o.SelectedVariation, o.Make)
	if id != theme.Custom {
		return id, nil
	}
	return id, o.CustomColors
}

// HasPrice reports whether a non-blank price is set. HasAPR and HasAPRCash
// follow the same rule.
func (o Offer) HasPrice() bool   { return strings.TrimSpace(o.Price) != "" }
func (o Offer) HasAPR() bool     { return strings.TrimSpace(o.APR) != "" }
func (o Offer) HasAPRCash() bool { return strings.TrimSpace(o.APRCash) != "" }

// PrimaryLink is the link of the first button that has one, else the
// legacy CTA link. It is empty when neither is set.
func (o Offer) PrimaryLink() string {
	for _, b := range o.CTAButtons {
		if l := strings.TrimSpace(b.Link); l != "" {
			return l
		}
	}
	return strings.TrimSpace(o.CTALink)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
