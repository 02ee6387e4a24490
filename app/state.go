package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cLazyZombie/wgpu-fundamentals/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// surfaceState is the implementation of the State interface.
// It owns every GPU object tied to one presentable surface.
type surfaceState struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	config         *wgpu.SurfaceConfiguration
	renderPipeline *wgpu.RenderPipeline

	width  int
	height int

	// Pre-creation config collected from builder options
	label                string
	clearColor           wgpu.Color
	presentMode          *PresentMode
	forceFallbackAdapter bool
	shaderSource         string
	pipelineBuilder      func(State) (*wgpu.RenderPipeline, error)
	draw                 func(pass *wgpu.RenderPassEncoder)
}

// State owns the GPU objects backing a single presentable surface: device,
// queue, surface configuration, and the render pipeline drawing into it.
// A State has no internal locking; share it through a Cell and mutate it
// from at most one callback at a time.
type State interface {
	// Render acquires the next surface texture, encodes one render pass, and
	// presents. The returned error is raw; pass it to HandleRenderError to
	// apply the standard recovery policy.
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired or the
	//     frame could not be encoded
	Render() error

	// Resize reconfigures the surface for a new pixel size. Zero or negative
	// dimensions are rejected with a log message and no state change. A size
	// equal to the current one is skipped entirely.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height int)

	// Reconfigure re-applies the current surface configuration. Used to
	// recover a lost surface without changing its size.
	Reconfigure()

	// Size returns the current surface size in pixels.
	//
	// Returns:
	//   - width: current width in pixels
	//   - height: current height in pixels
	Size() (width, height int)

	// Device returns the WebGPU device owned by this state.
	//
	// Returns:
	//   - *wgpu.Device: the device
	Device() *wgpu.Device

	// Queue returns the default queue of the device.
	//
	// Returns:
	//   - *wgpu.Queue: the queue
	Queue() *wgpu.Queue

	// SurfaceFormat returns the texture format the surface is configured with.
	//
	// Returns:
	//   - wgpu.TextureFormat: the configured surface format
	SurfaceFormat() wgpu.TextureFormat

	// Release frees the GPU objects owned by this state. The state must not
	// be used afterwards.
	Release()
}

var _ State = &surfaceState{}

// NewState negotiates an adapter and device for the given surface, configures
// the surface at the given pixel size, and builds the render pipeline.
// Zero initial dimensions are clamped to one pixel so a surface observed
// before layout still configures successfully.
//
// Parameters:
//   - instance: the WebGPU instance the surface was created from
//   - surface: the surface to configure and present to
//   - width: initial surface width in pixels (clamped to >= 1)
//   - height: initial surface height in pixels (clamped to >= 1)
//   - options: functional options for clear color, present mode, shader, etc.
//
// Returns:
//   - State: the configured state
//   - error: an error if adapter or device negotiation or pipeline creation fails
func NewState(instance *wgpu.Instance, surface *wgpu.Surface, width, height int, options ...StateBuilderOption) (State, error) {
	s := &surfaceState{
		instance:   instance,
		surface:    surface,
		width:      max(width, 1),
		height:     max(height, 1),
		label:      "main device",
		clearColor: wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
	}
	for _, opt := range options {
		opt(s)
	}
	if s.shaderSource == "" && s.pipelineBuilder == nil {
		return nil, errors.New("app: a shader source or a pipeline builder is required")
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		ForceFallbackAdapter: s.forceFallbackAdapter,
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to request adapter: %w", err)
	}
	s.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: s.label,
	})
	if err != nil {
		adapter.Release()
		return nil, fmt.Errorf("app: failed to request device: %w", err)
	}
	s.device = device
	s.queue = device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	s.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      preferredSurfaceFormat(caps.Formats),
		Width:       uint32(s.width),
		Height:      uint32(s.height),
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	if s.presentMode != nil {
		s.config.PresentMode = s.presentMode.wgpu()
	}
	surface.Configure(adapter, device, s.config)

	builder := s.pipelineBuilder
	if builder == nil {
		builder = func(st State) (*wgpu.RenderPipeline, error) {
			return pipeline.NewRenderPipeline(st.Device(), st.SurfaceFormat(), s.shaderSource)
		}
	}
	pl, err := builder(s)
	if err != nil {
		device.Release()
		adapter.Release()
		return nil, fmt.Errorf("app: failed to build render pipeline: %w", err)
	}
	s.renderPipeline = pl

	return s, nil
}

func (s *surfaceState) Render() error {
	surfaceTexture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := s.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "main pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: s.clearColor,
			},
		},
	})
	pass.SetPipeline(s.renderPipeline)
	if s.draw != nil {
		s.draw(pass)
	} else {
		pass.Draw(3, 1, 0, 0)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return err
	}

	s.queue.Submit(commandBuffer)
	s.surface.Present()

	commandBuffer.Release()
	encoder.Release()
	view.Release()
	surfaceTexture.Release()
	return nil
}

func (s *surfaceState) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		slog.Warn("ignoring resize to non-positive dimensions", "width", width, "height", height)
		return
	}
	if width == s.width && height == s.height {
		return
	}

	slog.Info("resizing surface",
		"from_width", s.width, "from_height", s.height,
		"to_width", width, "to_height", height)

	s.width = width
	s.height = height
	s.config.Width = uint32(width)
	s.config.Height = uint32(height)
	s.surface.Configure(s.adapter, s.device, s.config)
}

func (s *surfaceState) Reconfigure() {
	s.surface.Configure(s.adapter, s.device, s.config)
}

func (s *surfaceState) Size() (width, height int) {
	return s.width, s.height
}

func (s *surfaceState) Device() *wgpu.Device {
	return s.device
}

func (s *surfaceState) Queue() *wgpu.Queue {
	return s.queue
}

func (s *surfaceState) SurfaceFormat() wgpu.TextureFormat {
	return s.config.Format
}

func (s *surfaceState) Release() {
	if s.renderPipeline != nil {
		s.renderPipeline.Release()
		s.renderPipeline = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
}

// preferredSurfaceFormat picks an sRGB format when the surface offers one,
// falling back to the first supported format otherwise.
func preferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGBFormat(f) {
			return f
		}
	}
	return formats[0]
}

func isSRGBFormat(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}
