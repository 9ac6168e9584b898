package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// hoverOverrides are hand-picked hover shades for common theme colors.
var hoverOverrides = map[string]string{
	"#EB0A1E": "#ff1c32",
	"#22C55E": "#16A34A",
	"#3B82F6": "#2563EB",
	"#F59E0B": "#D97706",
	"#8B5CF6": "#7C3AED",
}

// Darken returns the hover shade of a #RRGGBB color: an override when one is
// defined, otherwise each channel scaled by 0.8 and floored. Anything that is
// not a #RRGGBB string is returned unchanged.
func Darken(color string) string {
	if shade, ok := hoverOverrides[strings.ToUpper(color)]; ok {
		return shade
	}
	if len(color) != 7 || color[0] != '#' {
		return color
	}

	rgb, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return color
	}
	r := (rgb >> 16) & 0xff
	g := (rgb >> 8) & 0xff
	b := rgb & 0xff

	return fmt.Sprintf("#%02x%02x%02x", r*4/5, g*4/5, b*4/5)
}
