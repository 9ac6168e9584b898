package typography

import (
	"fmt"
	"strconv"
)

// Size is a symbolic font size.
type Size string

const (
	Small      Size = "small"
	Medium     Size = "medium"
	Large      Size = "large"
	ExtraLarge Size = "extra-large"
)

// Weight is a symbolic font weight.
type Weight string

const (
	Normal    Weight = "normal"
	Bold      Weight = "bold"
	ExtraBold Weight = "extra-bold"
)

var sizePx = map[Size]int{
	Small:      12,
	Medium:     16,
	Large:      20,
	ExtraLarge: 24,
}

var weightValue = map[Weight]int{
	Normal:    400,
	Bold:      600,
	ExtraBold: 800,
}

// Sizes lists sizes from smallest to largest.
func Sizes() []Size { return []Size{Small, Medium, Large, ExtraLarge} }

// Weights lists weights from lightest to heaviest.
func Weights() []Weight { return []Weight{Normal, Bold, ExtraBold} }

// Pixels returns the pixel size and whether s is known.
func (s Size) Pixels() (int, bool) {
	px, ok := sizePx[s]
	return px, ok
}

// Value returns the numeric weight and whether w is known.
func (w Weight) Value() (int, bool) {
	v, ok := weightValue[w]
	return v, ok
}

// Settings holds size and weight per rendered element.
type Settings struct {
	HeaderSize        Size   `json:"headerSize" yaml:"headerSize"`
	HeaderWeight      Weight `json:"headerWeight" yaml:"headerWeight"`
	PriceSize         Size   `json:"priceSize" yaml:"priceSize"`
	PriceWeight       Weight `json:"priceWeight" yaml:"priceWeight"`
	DescriptionSize   Size   `json:"descriptionSize" yaml:"descriptionSize"`
	DescriptionWeight Weight `json:"descriptionWeight" yaml:"descriptionWeight"`
	CTASize           Size   `json:"ctaSize" yaml:"ctaSize"`
	CTAWeight         Weight `json:"ctaWeight" yaml:"ctaWeight"`
}

// Default returns the settings used when an offer has none.
func Default() Settings {
	return Settings{
		HeaderSize:        Large,
		HeaderWeight:      Bold,
		PriceSize:         ExtraLarge,
		PriceWeight:       ExtraBold,
		DescriptionSize:   Small,
		DescriptionWeight: Normal,
		CTASize:           Medium,
		CTAWeight:         Bold,
	}
}

// Font is a resolved element style.
type Font struct {
	Size   int // px
	Weight int
}

// FontSize formats the size as a CSS length, e.g. "20px".
func (f Font) FontSize() string {
	return fmt.Sprintf("%dpx", f.Size)
}

// FontWeight formats the weight as a CSS value, e.g. "600".
func (f Font) FontWeight() string {
	return strconv.Itoa(f.Weight)
}

// CSS is the resolved style of every element.
type CSS struct {
	Header      Font
	Price       Font
	Description Font
	CTA         Font
}

// Resolve converts settings into CSS values.
func Resolve(s Settings) CSS {
	d := Default()
	return CSS{
		Header:      font(s.HeaderSize, s.HeaderWeight, d.HeaderSize, d.HeaderWeight),
		Price:       font(s.PriceSize, s.PriceWeight, d.PriceSize, d.PriceWeight),
		Description: font(s.DescriptionSize, s.DescriptionWeight, d.DescriptionSize, d.DescriptionWeight),
		CTA:         font(s.CTASize, s.CTAWeight, d.CTASize, d.CTAWeight),
	}
}

func font(size Size, weight Weight, defSize Size, defWeight Weight) Font {
	px, ok := size.Pixels()
	if !ok {
		px = sizePx[defSize]
	}
	w, ok := weight.Value()
	if !ok {
		w = weightValue[defWeight]
	}
	return Font{Size: px, Weight: w}
}
