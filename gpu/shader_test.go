package gpu

import (
	"strings"
	"testing"

	"github.com/gogpu/glyphatlas/glyph"
)

func TestKindsMatchPixelFormats(t *testing.T) {
	if KindAlpha != uint32(glyph.FormatAlpha) ||
		KindSubpixel != uint32(glyph.FormatSubpixelRGBA) ||
		KindColor != uint32(glyph.FormatColorRGBA) {
		t.Error("shader kinds must match glyph.PixelFormat values")
	}
}

func TestAtlasShaderBindings(t *testing.T) {
	for _, want := range []string{"@binding(0) var atlas_texture", "@binding(1) var atlas_sampler"} {
		if !strings.Contains(AtlasShaderWGSL, want) {
			t.Errorf("shader missing %q", want)
		}
	}
}

func TestCompileAtlasShader(t *testing.T) {
	spirv, err := CompileAtlasShader()
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileAtlasShader: %v", err)
	}
	if len(spirv) < 4 {
		t.Fatal("SPIR-V too short")
	}
	magic := uint32(spirv[0]) | uint32(spirv[1])<<8 | uint32(spirv[2])<<16 | uint32(spirv[3])<<24
	if magic != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", magic)
	}
}
