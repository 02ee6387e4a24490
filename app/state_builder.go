package app

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how finished frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync synchronizes presentation with the display refresh (FIFO).
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames as fast as they are produced (Immediate).
	PresentModeUncapped
)

// wgpu maps the PresentMode to the underlying WebGPU present mode.
func (m PresentMode) wgpu() wgpu.PresentMode {
	switch m {
	case PresentModeVSync:
		return wgpu.PresentModeFifo
	default:
		return wgpu.PresentModeImmediate
	}
}

// StateBuilderOption is a functional option applied to a State during
// construction via NewState.
type StateBuilderOption func(*surfaceState)

// WithLabel sets the debug label used for the device and related GPU objects.
//
// Parameters:
//   - label: the debug label text
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithLabel(label string) StateBuilderOption {
	return func(s *surfaceState) {
		s.label = label
	}
}

// WithClearColor sets the color the render pass clears to each frame.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithClearColor(color wgpu.Color) StateBuilderOption {
	return func(s *surfaceState) {
		s.clearColor = color
	}
}

// WithPresentMode overrides the surface present mode. When not specified, the
// first mode reported by the surface capabilities is used.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) StateBuilderOption {
	return func(s *surfaceState) {
		s.presentMode = &mode
	}
}

// WithForceFallbackAdapter forces adapter negotiation to select a software
// fallback adapter instead of hardware GPU acceleration.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithForceFallbackAdapter(force bool) StateBuilderOption {
	return func(s *surfaceState) {
		s.forceFallbackAdapter = force
	}
}

// WithShaderSource sets the WGSL source used to build the default render
// pipeline. Required unless WithPipelineBuilder is given.
//
// Parameters:
//   - source: WGSL source text with vs_main and fs_main entry points
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithShaderSource(source string) StateBuilderOption {
	return func(s *surfaceState) {
		s.shaderSource = source
	}
}

// WithPipelineBuilder replaces the default render pipeline construction.
// The builder runs after the device is negotiated and the surface is
// configured, so it may use the state's Device and SurfaceFormat to create
// additional GPU resources (buffers, bind groups) alongside the pipeline.
//
// Parameters:
//   - builder: function producing the render pipeline for this state
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithPipelineBuilder(builder func(State) (*wgpu.RenderPipeline, error)) StateBuilderOption {
	return func(s *surfaceState) {
		s.pipelineBuilder = builder
	}
}

// WithDraw replaces the default draw call encoded into the render pass each
// frame. The default draws a single hard-coded triangle: Draw(3, 1, 0, 0).
// The pipeline is already bound when the function runs.
//
// Parameters:
//   - draw: function encoding draw commands into the active render pass
//
// Returns:
//   - StateBuilderOption: option function to apply
func WithDraw(draw func(pass *wgpu.RenderPassEncoder)) StateBuilderOption {
	return func(s *surfaceState) {
		s.draw = draw
	}
}
