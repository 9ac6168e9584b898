package theme

// Colors are the three semantic colors of an offer document.
type Colors struct {
	VehicleTitle string `json:"vehicleTitle" yaml:"vehicleTitle"`
	Offers       string `json:"offers" yaml:"offers"`
	CTA          string `json:"cta" yaml:"cta"`
}

// Palette is Colors plus the page background.
type Palette struct {
	Colors
	Background string
}

// Resolve picks the palette for variationID. Custom colors are used verbatim
// only for the custom variation; every other variation paints all three
// slots with its primary color. Unknown ids fall back to classic.
func Resolve(variationID string, custom *Colors) Palette {
	v, ok := Find(variationID)
	if !ok {
		v = catalog[0]
	}

	p := Palette{
		Colors: Colors{
			VehicleTitle: v.PrimaryColor,
			Offers:       v.PrimaryColor,
			CTA:          v.PrimaryColor,
		},
		Background: v.BackgroundColor,
	}
	if variationID == Custom && custom != nil {
		p.Colors = *custom
	}
	return p
}

// ResolveSelection turns a UI selection into a concrete catalog id. The
// "default" and empty selections pick the brand variation for the make, or
// classic when the make has no brand theme. Other ids pass through.
func ResolveSelection(selected, vehicleMake string) string {
	if selected != Default && selected != "" {
		return selected
	}
	if b, ok := BrandByMake(vehicleMake); ok {
		return b.ID
	}
	return Classic
}
