// Package platform recolors themes for the handheld firmwares the toolkit
// runs on. A Palette is the small set of colors a firmware theme file
// defines; Apply spreads it over the built-in element variants.
package platform

import (
	"github.com/BrandonKowalski/themer/pkg/themer/elements"
	"github.com/BrandonKowalski/themer/pkg/themer/theme"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// Palette defines the colors of a firmware theme.
type Palette struct {
	HighlightColor       values.Color // Selected item background, button highlight
	AccentColor          values.Color // Button and title backgrounds, checked icons
	ButtonLabelColor     values.Color // Text inside buttons
	TextColor            values.Color // Default text color
	HighlightedTextColor values.Color // Text on focused items
	HintColor            values.Color // Tooltip text
	BackgroundColor      values.Color // Panel and field backgrounds
	FontPath             string       // Path to the primary UI font; empty keeps theme fonts
}

type textBearing interface {
	Typography() *elements.TextStyle
}

// WithAccent returns a copy of p with the accent replaced by a 0xRRGGBB
// value. Zero keeps the palette's accent.
func (p Palette) WithAccent(hex uint32) Palette {
	if hex != 0 {
		p.AccentColor = values.HexColor(hex)
	}
	return p
}

// Apply recolors the built-in variants in t and returns how many elements
// it changed. Variants it does not know are left alone.
func (p Palette) Apply(t *theme.Theme) int {
	changed := 0
	for _, key := range t.Keys() {
		el := t.Elements[key]

		known := true
		switch v := el.(type) {
		case *elements.Button:
			v.Color = p.ButtonLabelColor
			v.HighlightColor = p.HighlightColor
			v.FocusColor = p.HighlightedTextColor
			if v.Background != nil {
				v.Background.Color = p.AccentColor
			}
		case *elements.SliderThumb:
			v.Color = p.ButtonLabelColor
		case *elements.Title:
			v.Color = p.TextColor
			if v.Background != nil {
				v.Background.Color = p.AccentColor
			}
		case *elements.Tooltip:
			v.Color = p.HintColor
			if v.Background != nil {
				v.Background.Color = p.BackgroundColor
			}
		case *elements.TextField:
			v.Color = p.TextColor
			if v.Background != nil {
				v.Background.Color = p.BackgroundColor
			}
		case *elements.Checkbox:
			v.Color = p.TextColor
			if v.OnView != nil {
				v.OnView.Color = p.AccentColor
			}
		case *elements.ListBox:
			v.SelectionColor = p.HighlightColor
			if v.Background != nil {
				v.Background.Color = p.BackgroundColor
			}
		case *elements.Container:
			if v.Background != nil {
				v.Background.Color = p.BackgroundColor
			}
		case *elements.Slider:
			if v.Background != nil {
				v.Background.Color = p.BackgroundColor
			}
		case *elements.GlobalStyle, *elements.Label:
			el.(textBearing).Typography().Color = p.TextColor
		default:
			known = false
		}
		if !known {
			continue
		}

		if tb, ok := el.(textBearing); ok && p.FontPath != "" {
			style := tb.Typography()
			style.Font = &values.BitmapFont{Path: p.FontPath, Size: int(style.FontSize)}
		}
		changed++
	}
	return changed
}
