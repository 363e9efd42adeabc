// Package style maps semantic style names ("pri_a", "project", "done")
// to terminal rendering attributes and writes them with as few escape
// sequences as possible.
package style

import "strings"

// ANSI 256-color codes used by the built-in styles.
const (
	Blue        uint8 = 4
	Green       uint8 = 2
	Grey        uint8 = 246
	HotPink     uint8 = 198
	LightOrange uint8 = 215
	Lime        uint8 = 154
	Olive       uint8 = 113
	SkyBlue     uint8 = 111
	Tan         uint8 = 179
	Turquoise   uint8 = 37
)

// Spec is the resolved attribute set for one style name.
type Spec struct {
	Name      string
	FG        *uint8
	BG        *uint8
	Bold      bool
	Intense   bool
	Underline bool
}

// Override is a sparse, user-supplied style record from the config
// file. Only explicitly set attributes replace the default's.
type Override struct {
	Name      string `toml:"name"`
	ColorFG   *uint8 `toml:"color_fg"`
	ColorBG   *uint8 `toml:"color_bg"`
	Bold      *bool  `toml:"bold"`
	Intense   *bool  `toml:"intense"`
	Underline *bool  `toml:"underline"`
}

// Default returns the built-in style for a name. Priorities a-d have
// named accent colors, any other lettered priority falls to tan, and
// unknown names resolve to no style at all.
func Default(name string) Spec {
	s := Spec{Name: name}
	if strings.HasPrefix(name, "pri") {
		switch name {
		case "pri_a":
			s.FG = colorPtr(HotPink)
		case "pri_b":
			s.FG = colorPtr(Green)
		case "pri_c":
			s.FG = colorPtr(Blue)
		case "pri_d":
			s.FG = colorPtr(Turquoise)
		default:
			s.FG = colorPtr(Tan)
		}
		return s
	}
	switch name {
	case "project":
		s.FG = colorPtr(Lime)
	case "context":
		s.FG = colorPtr(LightOrange)
	case "done":
		s.FG = colorPtr(Grey)
	}
	return s
}

// Resolve looks up a style by name, merging a matching config override
// field-by-field onto the built-in default. Lookup is case-insensitive.
// Unknown names are never an error; they resolve to "no style".
func Resolve(name string, overrides []Override) Spec {
	name = strings.ToLower(name)
	s := Default(name)
	for i := range overrides {
		if !strings.EqualFold(overrides[i].Name, name) {
			continue
		}
		o := &overrides[i]
		if o.ColorFG != nil {
			s.FG = o.ColorFG
		}
		if o.ColorBG != nil {
			s.BG = o.ColorBG
		}
		if o.Bold != nil {
			s.Bold = *o.Bold
		}
		if o.Intense != nil {
			s.Intense = *o.Intense
		}
		if o.Underline != nil {
			s.Underline = *o.Underline
		}
		break
	}
	return s
}

func colorPtr(c uint8) *uint8 { return &c }
