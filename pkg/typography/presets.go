package typography

import "slices"

// Preset is a named settings bundle.
type Preset struct {
	ID          string
	Name        string
	Description string
	Settings    Settings
}

var presets = []Preset{
	{
		ID:          "conservative",
		Name:        "Conservative",
		Description: "Traditional, professional styling",
		Settings: Settings{
			HeaderSize: Medium, HeaderWeight: Bold,
			PriceSize: Large, PriceWeight: Bold,
			DescriptionSize: Small, DescriptionWeight: Normal,
			CTASize: Medium, CTAWeight: Bold,
		},
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean, contemporary styling",
		Settings: Settings{
			HeaderSize: Large, HeaderWeight: Bold,
			PriceSize: ExtraLarge, PriceWeight: Bold,
			DescriptionSize: Medium, DescriptionWeight: Normal,
			CTASize: Medium, CTAWeight: Bold,
		},
	},
	{
		ID:          "bold",
		Name:        "Bold",
		Description: "High-impact, attention-grabbing",
		Settings: Settings{
			HeaderSize: ExtraLarge, HeaderWeight: ExtraBold,
			PriceSize: ExtraLarge, PriceWeight: ExtraBold,
			DescriptionSize: Medium, DescriptionWeight: Bold,
			CTASize: Large, CTAWeight: ExtraBold,
		},
	},
}

// Presets returns the built-in presets.
func Presets() []Preset {
	return slices.Clone(presets)
}

// FindPreset looks a preset up by id.
func FindPreset(id string) (Preset, bool) {
	i := slices.IndexFunc(presets, func(p Preset) bool { return p.ID == id })
	if i < 0 {
		return Preset{}, false
	}
	return presets[i], true
}
