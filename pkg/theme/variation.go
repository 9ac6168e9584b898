package theme

import (
	"slices"

	"github.com/dmitrymomot/offerkit/pkg/sanitizer"
)

// Category groups variations in pickers.
type Category string

const (
	CategoryNone     Category = ""
	CategoryBrand    Category = "brand"
	CategorySeasonal Category = "seasonal"
	CategoryCustom   Category = "custom"
)

// Well known variation ids.
const (
	Classic = "classic"
	Custom  = "custom"
	// Default is a UI level selection meaning "brand color for the make, or
	// classic". It is not part of the catalog; see ResolveSelection.
	Default = "default"
)

// Variation is a named color theme.
type Variation struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	PrimaryColor    string   `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor  string   `json:"secondaryColor" yaml:"secondaryColor"`
	BackgroundColor string   `json:"backgroundColor" yaml:"backgroundColor"`
	Category        Category `json:"category,omitempty" yaml:"category,omitempty"`
}

const neutralBackground = "#f8f8f8"

var brands = []Variation{
	{ID: "toyota", Name: "Toyota", Description: "Official Toyota red and styling", PrimaryColor: "#EB0A1E", SecondaryColor: "#58595B", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "ford", Name: "Ford", Description: "Ford blue heritage styling", PrimaryColor: "#003478", SecondaryColor: "#333333", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "chevrolet", Name: "Chevrolet", Description: "Chevy golden sand and grey", PrimaryColor: "#C5B358", SecondaryColor: "#A3A3A3", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "honda", Name: "Honda", Description: "Honda blue heritage styling", PrimaryColor: "#0066CC", SecondaryColor: "#333333", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "nissan", Name: "Nissan", Description: "Nissan red and black design", PrimaryColor: "#C3002F", SecondaryColor: "#000000", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "bmw", Name: "BMW", Description: "BMW blue luxury styling", PrimaryColor: "#0166B1", SecondaryColor: "#6F6F6F", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "mercedes", Name: "Mercedes-Benz", Description: "Mercedes black and silver elegance", PrimaryColor: "#000000", SecondaryColor: "#A4AAAE", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "audi", Name: "Audi", Description: "Audi progressive red styling", PrimaryColor: "#F50537", SecondaryColor: "#333333", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "lexus", Name: "Lexus", Description: "Lexus luxury silver and black", PrimaryColor: "#000000", SecondaryColor: "#DFE1E0", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "acura", Name: "Acura", Description: "Acura precision black and grey", PrimaryColor: "#000000", SecondaryColor: "#9E999F", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "infiniti", Name: "Infiniti", Description: "Infiniti dark blue luxury", PrimaryColor: "#020B24", SecondaryColor: "#A5A5A5", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "cadillac", Name: "Cadillac", Description: "Cadillac deep red and gold", PrimaryColor: "#97140C", SecondaryColor: "#CBAA4D", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "jeep", Name: "Jeep", Description: "Jeep adventure green", PrimaryColor: "#424D07", SecondaryColor: "#333333", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "mazda", Name: "Mazda", Description: "Mazda black and grey elegance", PrimaryColor: "#000000", SecondaryColor: "#666666", BackgroundColor: neutralBackground, Category: CategoryBrand},
	{ID: "subaru", Name: "Subaru", Description: "Subaru confidence blue", PrimaryColor: "#14478A", SecondaryColor: "#B3B5B5", BackgroundColor: neutralBackground, Category: CategoryBrand},
}

var seasonal = []Variation{
	{ID: "spring", Name: "Spring Fresh", Description: "Fresh green with renewal energy", PrimaryColor: "#22C55E", SecondaryColor: "#333333", BackgroundColor: "#f8fff8", Category: CategorySeasonal},
	{ID: "summer", Name: "Summer Bright", Description: "Vibrant blue for summer sales", PrimaryColor: "#3B82F6", SecondaryColor: "#333333", BackgroundColor: "#f8fbff", Category: CategorySeasonal},
	{ID: "fall", Name: "Fall Harvest", Description: "Warm amber for autumn promotions", PrimaryColor: "#F59E0B", SecondaryColor: "#333333", BackgroundColor: "#fffbf8", Category: CategorySeasonal},
	{ID: "winter", Name: "Winter Elegance", Description: "Cool purple for winter offers", PrimaryColor: "#8B5CF6", SecondaryColor: "#333333", BackgroundColor: "#fdfbff", Category: CategorySeasonal},
	{ID: "holiday", Name: "Holiday Special", Description: "Festive red and green combination", PrimaryColor: "#DC2626", SecondaryColor: "#059669", BackgroundColor: "#fef9f9", Category: CategorySeasonal},
	{ID: "new-year", Name: "New Year", Description: "Elegant gold and black for new year sales", PrimaryColor: "#EAB308", SecondaryColor: "#1F2937", BackgroundColor: "#fffef7", Category: CategorySeasonal},
}

var classic = Variation{
	ID:              Classic,
	Name:            "Classic Red",
	Description:     "Traditional red automotive theme",
	PrimaryColor:    "#EB0A1E",
	SecondaryColor:  "#333333",
	BackgroundColor: neutralBackground,
}

var custom = Variation{
	ID:              Custom,
	Name:            "Custom",
	Description:     "Choose your own colors",
	PrimaryColor:    "#EB0A1E",
	SecondaryColor:  "#333333",
	BackgroundColor: neutralBackground,
	Category:        CategoryCustom,
}

// catalog is classic first, then brands, seasonal and custom last.
// Resolve relies on classic being the first entry.
var (
	catalog = slices.Concat([]Variation{classic}, brands, seasonal, []Variation{custom})
	byID    = indexByID(catalog)
)

func indexByID(vs []Variation) map[string]int {
	m := make(map[string]int, len(vs))
	for i, v := range vs {
		m[v.ID] = i
	}
	return m
}

// Catalog returns every variation in display order.
func Catalog() []Variation {
	return slices.Clone(catalog)
}

// Brands returns the brand variations.
func Brands() []Variation {
	return slices.Clone(brands)
}

// Seasonal returns the seasonal variations.
func Seasonal() []Variation {
	return slices.Clone(seasonal)
}

// Find looks a variation up by exact id.
func Find(id string) (Variation, bool) {
	i, ok := byID[id]
	if !ok {
		return Variation{}, false
	}
	return catalog[i], true
}

// BrandByMake finds the brand variation for a vehicle make. Makes are
// compared trimmed and lower-cased; "Mercedes-Benz" matches the mercedes
// entry through its display name.
func BrandByMake(vehicleMake string) (Variation, bool) {
	key := sanitizer.TrimToLower(vehicleMake)
	if key == "" {
		return Variation{}, false
	}
	for _, b := range brands {
		if b.ID == key || sanitizer.TrimToLower(b.Name) == key {
			return b, true
		}
	}
	return Variation{}, false
}

// Option is one entry of a variation picker.
type Option struct {
	Value     string
	Label     string
	Variation Variation
}

// DropdownOptions lists picker entries: default, classic, brands, seasonal
// and custom, in that order.
func DropdownOptions() []Option {
	opts := make([]Option, 0, len(catalog)+1)
	opts = append(opts,
		Option{Value: Default, Label: "Default (Based on Make)", Variation: classic},
		Option{Value: Classic, Label: "Classic Red", Variation: classic},
	)
	for _, b := range brands {
		opts = append(opts, Option{Value: b.ID, Label: b.Name, Variation: b})
	}
	for _, s := range seasonal {
		opts = append(opts, Option{Value: s.ID, Label: s.Name, Variation: s})
	}
	return append(opts, Option{Value: Custom, Label: "Custom Colors", Variation: custom})
}
