package glyph

import "testing"

func TestDefaultRenderMode(t *testing.T) {
	tests := []struct {
		platform Platform
		want     RenderMode
	}{
		{PlatformWindows, SubpixelHorizontalRGB},
		{PlatformMacOS, Grayscale},
		{PlatformLinux, Grayscale},
		{PlatformOther, Grayscale},
	}
	for _, tt := range tests {
		if got := DefaultRenderMode(tt.platform); got != tt.want {
			t.Errorf("DefaultRenderMode(%v) = %v, want %v", tt.platform, got, tt.want)
		}
	}
}

func TestPlatformFromGOOS(t *testing.T) {
	tests := map[string]Platform{
		"windows": PlatformWindows,
		"darwin":  PlatformMacOS,
		"linux":   PlatformLinux,
		"freebsd": PlatformLinux,
		"js":      PlatformOther,
		"plan9":   PlatformOther,
	}
	for goos, want := range tests {
		if got := PlatformFromGOOS(goos); got != want {
			t.Errorf("PlatformFromGOOS(%q) = %v, want %v", goos, got, want)
		}
	}
}

func TestRenderModePredicates(t *testing.T) {
	tests := []struct {
		mode                RenderMode
		subpixel, bgr, vert bool
	}{
		{Grayscale, false, false, false},
		{SubpixelHorizontalRGB, true, false, false},
		{SubpixelHorizontalBGR, true, true, false},
		{SubpixelVerticalRGB, true, false, true},
		{SubpixelVerticalBGR, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.IsSubpixel(); got != tt.subpixel {
				t.Errorf("IsSubpixel() = %v", got)
			}
			if got := tt.mode.IsBGR(); got != tt.bgr {
				t.Errorf("IsBGR() = %v", got)
			}
			if got := tt.mode.IsVertical(); got != tt.vert {
				t.Errorf("IsVertical() = %v", got)
			}
		})
	}
}

func TestParseRenderMode(t *testing.T) {
	for _, m := range []RenderMode{Grayscale, SubpixelHorizontalRGB, SubpixelHorizontalBGR, SubpixelVerticalRGB, SubpixelVerticalBGR} {
		got, err := ParseRenderMode(m.String())
		if err != nil {
			t.Fatalf("ParseRenderMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseRenderMode(%q) = %v", m.String(), got)
		}
	}
	if got, err := ParseRenderMode(" BGR "); err != nil || got != SubpixelHorizontalBGR {
		t.Errorf("ParseRenderMode(bgr) = %v, %v", got, err)
	}
	if _, err := ParseRenderMode("cleartype"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestEnumStrings(t *testing.T) {
	if RenderMode(99).String() != unknownStr {
		t.Error("unknown RenderMode should stringify as Unknown")
	}
	if Platform(99).String() != unknownStr {
		t.Error("unknown Platform should stringify as Unknown")
	}
	if PixelFormat(99).String() != unknownStr {
		t.Error("unknown PixelFormat should stringify as Unknown")
	}
	if FormatSubpixelRGBA.String() != "SubpixelRGBA" {
		t.Errorf("FormatSubpixelRGBA.String() = %q", FormatSubpixelRGBA.String())
	}
}
