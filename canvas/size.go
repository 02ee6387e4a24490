// Package canvas provides the browser integration for the examples: the
// canvas element the surface presents into, resize observation, and the
// animation-frame render loop. Everything except the pure size math is
// compiled only for js/wasm.
package canvas

// PixelSize converts CSS dimensions to device pixels. Dimensions are clamped
// to at least one pixel: a canvas observed before layout can report a zero
// content rect, and a zero-sized surface cannot be configured.
//
// Parameters:
//   - cssWidth: element width in CSS pixels
//   - cssHeight: element height in CSS pixels
//   - devicePixelRatio: the window's device pixel ratio
//
// Returns:
//   - width: device pixel width (>= 1)
//   - height: device pixel height (>= 1)
func PixelSize(cssWidth, cssHeight, devicePixelRatio float64) (width, height int) {
	width = int(cssWidth * devicePixelRatio)
	height = int(cssHeight * devicePixelRatio)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
