package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// Glyph kinds understood by AtlasShaderWGSL. The values match
// glyph.PixelFormat so a format converts directly to a kind.
const (
	KindAlpha    uint32 = 0
	KindSubpixel uint32 = 1
	KindColor    uint32 = 2
)

// AtlasShaderWGSL draws textured glyph quads from the atlas.
//
// Vertex positions are in clip space. The fragment stage outputs
// premultiplied alpha for every kind:
//   - alpha glyphs tint the coverage in the alpha channel with the vertex color
//   - subpixel glyphs tint per-channel coverage and use the strongest
//     channel as alpha
//   - color glyphs are straight-alpha RGBA and only take the vertex alpha
const AtlasShaderWGSL = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) uv: vec2<f32>,
    @location(2) color: vec4<f32>,
    @location(3) kind: u32,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) color: vec4<f32>,
    @location(2) @interpolate(flat) kind: u32,
}

@group(0) @binding(0) var atlas_texture: texture_2d<f32>;
@group(0) @binding(1) var atlas_sampler: sampler;

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(in.position, 0.0, 1.0);
    out.uv = in.uv;
    out.color = in.color;
    out.kind = in.kind;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let texel = textureSample(atlas_texture, atlas_sampler, in.uv);
    if in.kind == 2u {
        let a = texel.a * in.color.a;
        return vec4<f32>(texel.rgb * a, a);
    }
    if in.kind == 1u {
        let cov = texel.rgb * in.color.a;
        let a = max(max(cov.r, cov.g), cov.b);
        return vec4<f32>(in.color.rgb * cov, a);
    }
    let a = texel.a * in.color.a;
    return vec4<f32>(in.color.rgb * a, a);
}
`

// CompileAtlasShader compiles AtlasShaderWGSL to SPIR-V.
func CompileAtlasShader() ([]byte, error) {
	spirv, err := naga.Compile(AtlasShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile atlas shader: %w", err)
	}
	return spirv, nil
}
