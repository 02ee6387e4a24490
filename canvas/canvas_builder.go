//go:build js

package canvas

// canvasBuilderConfig holds the configurable parts of canvas adoption.
type canvasBuilderConfig struct {
	parentID string
}

// CanvasBuilderOption is a functional option applied during FromContext.
type CanvasBuilderOption func(*canvasBuilderConfig)

// WithParentID sets the id of the DOM element the canvas is appended to.
// When not specified, the canvas is appended to the document body.
//
// Parameters:
//   - id: the id of the parent element
//
// Returns:
//   - CanvasBuilderOption: option function to apply
func WithParentID(id string) CanvasBuilderOption {
	return func(cfg *canvasBuilderConfig) {
		cfg.parentID = id
	}
}
