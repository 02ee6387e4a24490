package pipeline

import (
	"github.com/cLazyZombie/wgpu-fundamentals/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderPipelineConfig holds the configurable parts of a render pipeline.
// Defaults are applied first, then each option in order.
type renderPipelineConfig struct {
	label            string
	vertexEntry      string
	fragmentEntry    string
	topology         wgpu.PrimitiveTopology
	frontFace        wgpu.FrontFace
	cullMode         wgpu.CullMode
	blend            *wgpu.BlendState
	bindGroupLayouts []*wgpu.BindGroupLayout
}

func defaultRenderPipelineConfig() renderPipelineConfig {
	return renderPipelineConfig{
		label:         "render pipeline",
		vertexEntry:   "vs_main",
		fragmentEntry: "fs_main",
		topology:      wgpu.PrimitiveTopologyTriangleList,
		frontFace:     wgpu.FrontFaceCCW,
		cullMode:      wgpu.CullModeBack,
		blend: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorZero,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorZero,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
}

// RenderPipelineOption is a functional option applied to a render pipeline
// configuration during NewRenderPipeline.
type RenderPipelineOption func(*renderPipelineConfig)

// WithLabel sets the debug label for the pipeline and its layout.
//
// Parameters:
//   - label: the debug label text (empty keeps the default)
//
// Returns:
//   - RenderPipelineOption: option function to apply
func WithLabel(label string) RenderPipelineOption {
	return func(cfg *renderPipelineConfig) {
		cfg.label = common.Coalesce(label, cfg.label)
	}
}

// WithEntryPoints sets the vertex and fragment entry point names. Empty
// names keep the defaults (vs_main, fs_main).
//
// Parameters:
//   - vertex: vertex entry point name
//   - fragment: fragment entry point name
//
// Returns:
//   - RenderPipelineOption: option function to apply
func WithEntryPoints(vertex, fragment string) RenderPipelineOption {
	return func(cfg *renderPipelineConfig) {
		cfg.vertexEntry = common.Coalesce(vertex, cfg.vertexEntry)
		cfg.fragmentEntry = common.Coalesce(fragment, cfg.fragmentEntry)
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology to rasterize with
//
// Returns:
//   - RenderPipelineOption: option function to apply
func WithTopology(topology wgpu.PrimitiveTopology) RenderPipelineOption {
	return func(cfg *renderPipelineConfig) {
		cfg.topology = topology
	}
}

// WithCullMode sets the face culling mode.
//
// Parameters:
//   - mode: the cull mode (None, Front, or Back)
//
// Returns:
//   - RenderPipelineOption: option function to apply
func WithCullMode(mode wgpu.CullMode) RenderPipelineOption {
	return func(cfg *renderPipelineConfig) {
		cfg.cullMode = mode
	}
}

// WithBindGroupLayouts sets the bind group layouts included in the pipeline
// layout. The base examples bind nothing; the instanced examples pass the
// layout of their per-instance storage buffer here.
//
// Parameters:
//   - layouts: bind group layouts in group index order
//
// Returns:
//   - RenderPipelineOption: option function to apply
func WithBindGroupLayouts(layouts ...*wgpu.BindGroupLayout) RenderPipelineOption {
	return func(cfg *renderPipelineConfig) {
		cfg.bindGroupLayouts = layouts
	}
}
