// Package pipeline builds the small, fixed render pipelines the examples
// draw with. It wraps the WebGPU descriptor boilerplate behind a single
// constructor with functional options.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// NewRenderPipeline creates a render pipeline drawing into surfaces of the
// given format from a single WGSL module containing both entry points.
// The defaults match the examples: triangle-list topology, counter-clockwise
// front faces with back-face culling, replace blending, no depth buffer,
// and no multisampling.
//
// Parameters:
//   - device: the device to create GPU objects on
//   - format: the color target format (normally the configured surface format)
//   - source: WGSL source text for the shader module
//   - options: functional options overriding the defaults
//
// Returns:
//   - *wgpu.RenderPipeline: the created pipeline
//   - error: an error if shader module, layout, or pipeline creation fails
func NewRenderPipeline(device *wgpu.Device, format wgpu.TextureFormat, source string, options ...RenderPipelineOption) (*wgpu.RenderPipeline, error) {
	if source == "" {
		return nil, errors.New("pipeline: WGSL source must not be empty")
	}

	cfg := defaultRenderPipelineConfig()
	for _, opt := range options {
		opt(&cfg)
	}

	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: cfg.label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: failed to create shader module: %w", err)
	}
	defer shader.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            cfg.label + " layout",
		BindGroupLayouts: cfg.bindGroupLayouts,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: failed to create pipeline layout: %w", err)
	}
	defer layout.Release()

	created, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  cfg.label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: cfg.vertexEntry,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: cfg.fragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     cfg.blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  cfg.topology,
			FrontFace: cfg.frontFace,
			CullMode:  cfg.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: failed to create render pipeline: %w", err)
	}
	return created, nil
}
