// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/themer/pkg/themer/platform"
	"github.com/BrandonKowalski/themer/pkg/themer/values"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Palette returns Cannoli's default colors with the specified font.
func Palette(fontPath string) platform.Palette {
	return platform.Palette{
		HighlightColor:       values.HexColor(0xFFFFFF),
		AccentColor:          values.HexColor(0x008080),
		ButtonLabelColor:     values.HexColor(0x000000),
		HintColor:            values.HexColor(0x000000),
		TextColor:            values.HexColor(0xFFFFFF),
		HighlightedTextColor: values.HexColor(0x000000),
		BackgroundColor:      values.HexColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}
