//go:build !js

// Package window provides the desktop window the examples render into,
// wrapping GLFW behind a small interface. On the web the examples use the
// canvas package instead.
package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing for the examples: a render surface,
// resize notifications, and a message loop driving the per-frame callback.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	// Returning false from the callback closes the window.
	//
	// Parameters:
	//   - callback: per-frame function (or nil to disable)
	SetUpdateCallback(callback func() bool)

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. Sizes are in pixels, not screen coordinates.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface for this window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true while the window is active.
	//
	// Returns:
	//   - bool: true if the window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the close operation fails
	Close() error

	// ProcessMessages runs the window message loop. Blocks until the window
	// is closed, calling the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// exampleWindow is the implementation of the Window interface.
type exampleWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the current framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func() bool

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)
}

var _ Window = &exampleWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &exampleWindow{
		title:  "wgpu fundamentals",
		width:  800,
		height: 600,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *exampleWindow) SetUpdateCallback(callback func() bool) {
	w.onUpdate = callback
}

func (w *exampleWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *exampleWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *exampleWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *exampleWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *exampleWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil && !w.onUpdate() {
			_ = w.Close()
			break
		}

		runtime.Gosched()
	}
}

func (w *exampleWindow) Width() int {
	return w.width
}

func (w *exampleWindow) Height() int {
	return w.height
}
