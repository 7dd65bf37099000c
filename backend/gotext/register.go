package gotext

import "github.com/gogpu/glyphatlas/backend"

func init() {
	backend.Register(backend.BackendGoText, func(opts backend.Options) backend.FontBackend {
		o := []Option{WithSubpixelMode(opts.Subpixel)}
		if opts.LCD {
			o = append(o, WithLCD(opts.Vertical))
		}
		return New(o...)
	})
}
