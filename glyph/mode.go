package glyph

import (
	"fmt"
	"runtime"
	"strings"
)

// RenderMode selects how glyph coverage is antialiased.
type RenderMode uint8

const (
	// Grayscale uses an 8-bit alpha mask. Works on every display.
	Grayscale RenderMode = iota

	// SubpixelHorizontalRGB uses LCD subpixels laid out R, G, B left to right.
	SubpixelHorizontalRGB

	// SubpixelHorizontalBGR uses LCD subpixels laid out B, G, R left to right.
	SubpixelHorizontalBGR

	// SubpixelVerticalRGB uses LCD subpixels stacked R, G, B top to bottom.
	SubpixelVerticalRGB

	// SubpixelVerticalBGR uses LCD subpixels stacked B, G, R top to bottom.
	SubpixelVerticalBGR
)

var renderModeNames = [...]string{
	Grayscale:             "Grayscale",
	SubpixelHorizontalRGB: "SubpixelHorizontalRGB",
	SubpixelHorizontalBGR: "SubpixelHorizontalBGR",
	SubpixelVerticalRGB:   "SubpixelVerticalRGB",
	SubpixelVerticalBGR:   "SubpixelVerticalBGR",
}

// String returns the mode name.
func (m RenderMode) String() string {
	if int(m) < len(renderModeNames) {
		return renderModeNames[m]
	}
	return unknownStr
}

// IsSubpixel reports whether the mode uses LCD subpixel coverage.
func (m RenderMode) IsSubpixel() bool {
	return m != Grayscale
}

// IsBGR reports whether the subpixel order is blue first.
func (m RenderMode) IsBGR() bool {
	return m == SubpixelHorizontalBGR || m == SubpixelVerticalBGR
}

// IsVertical reports whether the subpixels are stacked vertically.
func (m RenderMode) IsVertical() bool {
	return m == SubpixelVerticalRGB || m == SubpixelVerticalBGR
}

// ParseRenderMode parses a mode name, case-insensitively. Short aliases
// "gray", "rgb", "bgr", "vrgb" and "vbgr" are accepted.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grayscale", "gray":
		return Grayscale, nil
	case "subpixelhorizontalrgb", "rgb":
		return SubpixelHorizontalRGB, nil
	case "subpixelhorizontalbgr", "bgr":
		return SubpixelHorizontalBGR, nil
	case "subpixelverticalrgb", "vrgb":
		return SubpixelVerticalRGB, nil
	case "subpixelverticalbgr", "vbgr":
		return SubpixelVerticalBGR, nil
	}
	return Grayscale, fmt.Errorf("glyph: unknown render mode %q", s)
}

// Platform identifies a host operating system family.
type Platform uint8

const (
	// PlatformOther is any platform without a specific default.
	PlatformOther Platform = iota

	// PlatformLinux is Linux and other freedesktop systems.
	PlatformLinux

	// PlatformMacOS is macOS.
	PlatformMacOS

	// PlatformWindows is Windows.
	PlatformWindows
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformOther:
		return "Other"
	case PlatformLinux:
		return "Linux"
	case PlatformMacOS:
		return "macOS"
	case PlatformWindows:
		return "Windows"
	default:
		return unknownStr
	}
}

// PlatformFromGOOS maps a GOOS value to a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformOther
	}
}

// HostPlatform returns the Platform of the running binary.
func HostPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}

// DefaultRenderMode returns the recommended mode for a platform.
//
// macOS renders grayscale (Retina displays, no system LCD antialiasing),
// Linux display configurations vary so grayscale is the safe choice, and
// Windows panels are overwhelmingly horizontal RGB.
func DefaultRenderMode(p Platform) RenderMode {
	switch p {
	case PlatformWindows:
		return SubpixelHorizontalRGB
	case PlatformMacOS, PlatformLinux:
		return Grayscale
	default:
		return Grayscale
	}
}
