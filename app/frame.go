package app

import (
	"log/slog"
	"strings"
)

// renderErrorKind classifies a Render error by the recovery it requires.
type renderErrorKind int

const (
	renderOK renderErrorKind = iota

	// renderSurfaceLost means the surface must be reconfigured before the
	// next frame can be acquired (lost or outdated surface).
	renderSurfaceLost

	// renderOutOfMemory means the device cannot recover; the render loop
	// must stop.
	renderOutOfMemory

	// renderTransient covers acquisition timeouts and other errors where the
	// right response is to skip the frame and try again.
	renderTransient
)

// classifyRenderError maps an error returned by State.Render to the recovery
// it requires. The underlying binding flattens surface status codes into
// error text, so classification matches on the status words.
func classifyRenderError(err error) renderErrorKind {
	if err == nil {
		return renderOK
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return renderOutOfMemory
	case strings.Contains(msg, "lost") || strings.Contains(msg, "outdated"):
		return renderSurfaceLost
	default:
		return renderTransient
	}
}

// HandleRenderError applies the standard recovery policy to an error returned
// by State.Render: reconfigure and continue on a lost surface, stop the loop
// on out-of-memory, log and skip the frame for anything else.
//
// Parameters:
//   - s: the state whose Render produced the error
//   - err: the error returned by Render (nil is fine)
//
// Returns:
//   - bool: true if the render loop should keep running
func HandleRenderError(s State, err error) bool {
	switch classifyRenderError(err) {
	case renderOK:
		return true
	case renderSurfaceLost:
		slog.Warn("surface lost, reconfiguring", "err", err)
		s.Reconfigure()
		return true
	case renderOutOfMemory:
		slog.Error("surface out of memory, stopping render loop", "err", err)
		return false
	default:
		slog.Error("render failed, skipping frame", "err", err)
		return true
	}
}

// RenderFrame runs one frame against the shared state cell. If the cell's
// guard is held elsewhere (a resize or init in progress) the frame is skipped;
// the scheduler will deliver another one.
//
// Parameters:
//   - cell: the shared state cell
//
// Returns:
//   - bool: true if the render loop should keep running
func RenderFrame(cell *Cell[State]) bool {
	keepGoing := true
	if !cell.TryUse(func(s State) {
		keepGoing = HandleRenderError(s, s.Render())
	}) {
		slog.Debug("state busy, skipping frame")
	}
	return keepGoing
}

// Resize applies a new pixel size to the shared state cell. If the cell's
// guard is held elsewhere the resize is skipped; the next observation will
// carry the up-to-date size.
//
// Parameters:
//   - cell: the shared state cell
//   - width: new surface width in pixels
//   - height: new surface height in pixels
func Resize(cell *Cell[State], width, height int) {
	if !cell.TryUse(func(s State) {
		s.Resize(width, height)
	}) {
		slog.Debug("state busy, skipping resize", "width", width, "height", height)
	}
}
