package glyphatlas

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/glyphatlas/gpu"
)

func TestAtlasWithHALTexture(t *testing.T) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	defer instance.Destroy()
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer openDev.Device.Destroy()

	a, err := New(1024, WithTextureFactory(gpu.HALTextureFactory(openDev.Device, openDev.Queue, gpu.TextureConfig{})))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tex, ok := a.Texture().(*gpu.HALTexture)
	if !ok {
		t.Fatalf("Texture() is %T, want *gpu.HALTexture", a.Texture())
	}

	mustInsert(t, a, keyN(1), alphaGlyph(12, 16))
	mustInsert(t, a, keyN(2), alphaGlyph(9, 16))
	mustInsert(t, a, keyN(1), alphaGlyph(12, 16))
	if tex.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", tex.Writes())
	}

	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if tex.Texture() != nil || tex.BindGroup() != nil {
		t.Error("Close should destroy the HAL texture bundle")
	}
}
