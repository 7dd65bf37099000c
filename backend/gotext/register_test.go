package gotext

import (
	"testing"

	"github.com/gogpu/glyphatlas/backend"
	"github.com/gogpu/glyphatlas/glyph"
)

func TestRegistered(t *testing.T) {
	fb, err := backend.Get(backend.BackendGoText, backend.Options{LCD: true, Vertical: true, Subpixel: glyph.Subpixel10})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	b, ok := fb.(*Backend)
	if !ok {
		t.Fatalf("Get() returned %T", fb)
	}
	if !b.lcd || !b.vertical || b.binning != glyph.Subpixel10 {
		t.Errorf("options not applied: lcd=%v vertical=%v binning=%v", b.lcd, b.vertical, b.binning)
	}
}
