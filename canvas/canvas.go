//go:build js

package canvas

import (
	"fmt"
	"syscall/js"
)

// Canvas wraps the canvas element a WebGPU surface presents into. The
// element is created by the surface's canvas context; Canvas places it in
// the document and keeps its drawing buffer in sync with its layout size.
type Canvas interface {
	// Element returns the underlying canvas DOM element.
	//
	// Returns:
	//   - js.Value: the canvas element
	Element() js.Value

	// PixelSize returns the element's current layout size in device pixels,
	// clamped to at least one pixel per side.
	//
	// Returns:
	//   - width: width in device pixels
	//   - height: height in device pixels
	PixelSize() (width, height int)

	// SetResizeCallback registers fn to be called with the new size in device
	// pixels whenever the element's layout size changes, replacing any
	// previous callback. Observation starts with the first registration and
	// the observer fires once immediately for the initial size.
	//
	// Parameters:
	//   - fn: function receiving new width and height in device pixels
	SetResizeCallback(fn func(width, height int))

	// Release disconnects the resize observer and removes the element from
	// the document.
	Release()
}

// domCanvas is the implementation of the Canvas interface.
type domCanvas struct {
	element  js.Value
	observer *ResizeObserver
	onResize func(width, height int)
}

var _ Canvas = &domCanvas{}

// FromContext adopts the canvas element behind a WebGPU canvas context,
// appends it to the configured parent element, and styles it to fill the
// parent. The surface's drawing buffer size (the canvas width/height
// attributes) is updated on every resize before the callback runs.
//
// Parameters:
//   - ctx: the canvas context obtained from the surface
//   - options: functional options (parent element id, etc.)
//
// Returns:
//   - Canvas: the adopted canvas
//   - error: an error if the context has no canvas or the parent is missing
func FromContext(ctx js.Value, options ...CanvasBuilderOption) (Canvas, error) {
	cfg := canvasBuilderConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	element := ctx.Get("canvas")
	if !element.Truthy() {
		return nil, fmt.Errorf("canvas: context has no canvas element")
	}

	document := js.Global().Get("document")
	parent := document.Get("body")
	if cfg.parentID != "" {
		parent = document.Call("getElementById", cfg.parentID)
		if !parent.Truthy() {
			return nil, fmt.Errorf("canvas: parent element %q not found", cfg.parentID)
		}
	}

	style := element.Get("style")
	style.Set("width", "100%")
	style.Set("height", "100%")
	style.Set("display", "block")
	parent.Call("appendChild", element)

	c := &domCanvas{element: element}
	c.syncDrawingBuffer(c.PixelSize())
	return c, nil
}

func (c *domCanvas) Element() js.Value {
	return c.element
}

func (c *domCanvas) PixelSize() (width, height int) {
	rect := c.element.Call("getBoundingClientRect")
	dpr := js.Global().Get("devicePixelRatio").Float()
	return PixelSize(rect.Get("width").Float(), rect.Get("height").Float(), dpr)
}

func (c *domCanvas) SetResizeCallback(fn func(width, height int)) {
	c.onResize = fn
	if c.observer != nil {
		return
	}
	c.observer = ObserveResize(c.element, func(width, height int) {
		c.syncDrawingBuffer(width, height)
		if c.onResize != nil {
			c.onResize(width, height)
		}
	})
}

func (c *domCanvas) Release() {
	if c.observer != nil {
		c.observer.Disconnect()
		c.observer = nil
	}
	parent := c.element.Get("parentNode")
	if parent.Truthy() {
		parent.Call("removeChild", c.element)
	}
}

// syncDrawingBuffer sets the canvas width/height attributes to the device
// pixel size. CSS sizes the element; the attributes size the drawing buffer,
// and the two drift apart on high-DPI displays unless kept in sync.
func (c *domCanvas) syncDrawingBuffer(width, height int) {
	c.element.Set("width", width)
	c.element.Set("height", height)
}
