package glyphatlas

import (
	"testing"

	"github.com/gogpu/glyphatlas/gpu"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.factory == nil {
		t.Fatal("default factory is nil")
	}
	if o.policy != nil {
		t.Error("default options should not override the policy")
	}
}

func TestWithTextureFactory(t *testing.T) {
	var created int
	factory := func(size int) (gpu.Texture, error) {
		created++
		return gpu.MemoryTextureFactory(size)
	}
	a, err := New(512, WithTextureFactory(factory))
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("factory called %d times, want 1", created)
	}
	if a.Texture() == nil {
		t.Error("Texture() is nil")
	}

	o := defaultOptions()
	WithTextureFactory(nil)(&o)
	if o.factory == nil {
		t.Error("nil factory should keep the default")
	}
}

func TestWithEvictionPolicy(t *testing.T) {
	a, err := NewWithConfig(DefaultConfig(), WithEvictionPolicy(EvictInvalidateAll))
	if err != nil {
		t.Fatal(err)
	}
	if a.Policy() != EvictInvalidateAll {
		t.Errorf("Policy() = %v, want InvalidateAll", a.Policy())
	}
}
