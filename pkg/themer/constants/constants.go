// Package constants defines shared constants, enums, and configuration values
// used throughout themer.
package constants

import (
	"os"
	"strings"
)

// DebugEnvVar enables debug logging for themer's internal logger when set.
const DebugEnvVar = "THEMER_DEBUG"

// DefaultThemeName is the style group used when a theme file has no name
// or a new theme file is bootstrapped.
const DefaultThemeName = "default"

// Field keys with special handling during theme application.
const (
	TextShadowKey   = "textShadow"
	ShadowColorKey  = "shadowColor"
	ShadowOffsetKey = "shadowOffset"
)

// IsDebug returns true if THEMER_DEBUG is set to anything but "" or "0".
func IsDebug() bool {
	v := os.Getenv(DebugEnvVar)
	return v != "" && v != "0"
}

// HAlignment specifies horizontal placement of an icon within its host.
type HAlignment int

const (
	HAlignLeft   HAlignment = iota // Align to the left edge
	HAlignCenter                   // Center horizontally
	HAlignRight                    // Align to the right edge
)

func (h HAlignment) GetName() string {
	switch h {
	case HAlignLeft:
		return "Left"
	case HAlignCenter:
		return "Center"
	case HAlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseHAlignment is the inverse of GetName and ignores case.
func ParseHAlignment(name string) (HAlignment, bool) {
	switch strings.ToLower(name) {
	case "left":
		return HAlignLeft, true
	case "center":
		return HAlignCenter, true
	case "right":
		return HAlignRight, true
	default:
		return HAlignLeft, false
	}
}

// VAlignment specifies vertical placement of an icon within its host.
type VAlignment int

const (
	VAlignTop    VAlignment = iota // Align to the top edge
	VAlignCenter                   // Center vertically
	VAlignBottom                   // Align to the bottom edge
)

func (v VAlignment) GetName() string {
	switch v {
	case VAlignTop:
		return "Top"
	case VAlignCenter:
		return "Center"
	case VAlignBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// ParseVAlignment is the inverse of GetName and ignores case.
func ParseVAlignment(name string) (VAlignment, bool) {
	switch strings.ToLower(name) {
	case "top":
		return VAlignTop, true
	case "center":
		return VAlignCenter, true
	case "bottom":
		return VAlignBottom, true
	default:
		return VAlignTop, false
	}
}
