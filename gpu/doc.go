// Package gpu provides the texture the glyph atlas uploads into.
//
// The atlas only needs the Texture interface: a fixed square RGBA8 surface
// that accepts sub-rectangle writes. Two implementations are provided:
//
//   - HALTexture owns a wgpu HAL texture bundle (texture, view, sampler,
//     bind group layout and bind group) and uploads through
//     hal.Queue.WriteTexture. Uploads are enqueued, never awaited.
//   - MemoryTexture keeps the pixels in an *image.RGBA for tests, tooling
//     and software rendering.
//
// AtlasShaderWGSL is a fragment shader that samples the atlas with the
// bind group layout created by HALTexture and handles the three glyph
// formats (grayscale, LCD subpixel and color).
package gpu
