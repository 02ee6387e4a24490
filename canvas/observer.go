//go:build js

package canvas

import "syscall/js"

// ResizeObserver wraps a DOM ResizeObserver bound to a single element,
// translating content-rect entries to device pixel sizes.
type ResizeObserver struct {
	observer js.Value
	callback js.Func
}

// ObserveResize observes the element and calls fn with its content size in
// device pixels whenever it changes. Browsers deliver one entry immediately
// after observation starts, so fn also reports the initial size.
//
// The returned observer holds the JavaScript callback alive; call Disconnect
// when observation is no longer needed.
//
// Parameters:
//   - element: the DOM element to observe
//   - fn: function receiving new width and height in device pixels
//
// Returns:
//   - *ResizeObserver: the active observer
func ObserveResize(element js.Value, fn func(width, height int)) *ResizeObserver {
	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		dpr := js.Global().Get("devicePixelRatio").Float()
		for i := 0; i < entries.Length(); i++ {
			rect := entries.Index(i).Get("contentRect")
			width, height := PixelSize(rect.Get("width").Float(), rect.Get("height").Float(), dpr)
			fn(width, height)
		}
		return nil
	})

	observer := js.Global().Get("ResizeObserver").New(callback)
	observer.Call("observe", element)

	return &ResizeObserver{
		observer: observer,
		callback: callback,
	}
}

// Disconnect stops observation and releases the JavaScript callback.
func (o *ResizeObserver) Disconnect() {
	o.observer.Call("disconnect")
	o.callback.Release()
}
