// Package presets holds the built-in flag color palettes.
package presets

import (
	"strings"

	"github.com/oSoWoSo/neofetch/internal/color"
)

// Preset is a named flag palette with its stripes in display order.
type Preset struct {
	Name   string
	Colors []color.RGB
}

// All lists every preset in enumeration order. The order is part of the
// tool's behavior: the animation's color cycle concatenates palettes in
// exactly this order.
var All = []Preset{
	{"rainbow", palette("#E50000", "#FF8D00", "#FFEE00", "#028121", "#004CFF", "#770088")},
	{"transgender", palette("#55CDFD", "#F6AAB7", "#FFFFFF", "#F6AAB7", "#55CDFD")},
	{"nonbinary", palette("#FCF431", "#FCFCFC", "#9C59D1", "#2C2C2C")},
	{"agender", palette("#000000", "#BABABA", "#FFFFFF", "#BAF484", "#FFFFFF", "#BABABA", "#000000")},
	{"lesbian", palette("#D62800", "#FF9B56", "#FFFFFF", "#D462A6", "#A40062")},
	{"gay", palette("#078D70", "#26CEAA", "#98E8C1", "#FFFFFF", "#7BADE2", "#5049CC", "#3D1A78")},
	{"bisexual", palette("#D60270", "#9B4F96", "#0038A8")},
	{"pansexual", palette("#FF1C8D", "#FFD700", "#1AB3FF")},
	{"polysexual", palette("#F714BA", "#01D66A", "#1594F6")},
	{"omnisexual", palette("#FE9ACE", "#FF53BF", "#200044", "#6760FE", "#8EA6FF")},
	{"asexual", palette("#000000", "#A4A4A4", "#FFFFFF", "#810081")},
	{"aromantic", palette("#3BA740", "#A8D47A", "#FFFFFF", "#ABABAB", "#000000")},
	{"aroace", palette("#E28C00", "#ECCD00", "#FFFFFF", "#62AEDC", "#203856")},
	{"genderfluid", palette("#FE76A2", "#FFFFFF", "#BF12D7", "#000000", "#303CBE")},
	{"genderqueer", palette("#B57FDD", "#FFFFFF", "#49821E")},
	{"demiboy", palette("#7F7F7F", "#C3C3C3", "#9AD9EB", "#FFFFFF", "#9AD9EB", "#C3C3C3", "#7F7F7F")},
	{"demigirl", palette("#7F7F7F", "#C3C3C3", "#FFAEC9", "#FFFFFF", "#FFAEC9", "#C3C3C3", "#7F7F7F")},
	{"intersex", palette("#FFD800", "#7902AA", "#FFD800")},
}

// Lookup finds a preset by name, case-insensitively.
func Lookup(name string) (Preset, bool) {
	for _, p := range All {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Names returns all preset names in enumeration order.
func Names() []string {
	names := make([]string, len(All))
	for i, p := range All {
		names[i] = p.Name
	}
	return names
}

// ColorCycle concatenates every palette in enumeration order into the
// repeating color sequence the animation scrolls through.
func ColorCycle() []color.RGB {
	var cycle []color.RGB
	for _, p := range All {
		cycle = append(cycle, p.Colors...)
	}
	return cycle
}

// WithLightness returns a copy of the preset with every stripe's HSL
// lightness set to l. Used by preview surfaces for terminal contrast.
func (p Preset) WithLightness(l float64) Preset {
	colors := make([]color.RGB, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = c.WithLightness(l)
	}
	return Preset{Name: p.Name, Colors: colors}
}

func palette(hexes ...string) []color.RGB {
	colors := make([]color.RGB, len(hexes))
	for i, h := range hexes {
		colors[i] = color.MustHex(h)
	}
	return colors
}
