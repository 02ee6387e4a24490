package app

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeState records calls so the frame and resize policies can be tested
// without a GPU.
type fakeState struct {
	renderErr    error
	renderCalls  int
	reconfigures int
	resizes      [][2]int
}

var _ State = &fakeState{}

func (f *fakeState) Render() error {
	f.renderCalls++
	return f.renderErr
}

func (f *fakeState) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeState) Reconfigure() { f.reconfigures++ }

func (f *fakeState) Size() (width, height int) { return 800, 600 }

func (f *fakeState) Device() *wgpu.Device { return nil }

func (f *fakeState) Queue() *wgpu.Queue { return nil }

func (f *fakeState) SurfaceFormat() wgpu.TextureFormat {
	return wgpu.TextureFormatBGRA8UnormSrgb
}

func (f *fakeState) Release() {}

func TestClassifyRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want renderErrorKind
	}{
		{"nil", nil, renderOK},
		{"lost", errors.New("Surface image is Lost"), renderSurfaceLost},
		{"outdated", errors.New("surface is Outdated, needs reconfiguration"), renderSurfaceLost},
		{"out of memory", errors.New("device Out of Memory"), renderOutOfMemory},
		{"oom one word", errors.New("OutOfMemory"), renderOutOfMemory},
		{"timeout", errors.New("acquire timed out"), renderTransient},
		{"unknown", errors.New("something else"), renderTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyRenderError(tt.err))
		})
	}
}

func TestHandleRenderErrorNil(t *testing.T) {
	s := &fakeState{}
	assert.True(t, HandleRenderError(s, nil))
	assert.Zero(t, s.reconfigures)
}

func TestHandleRenderErrorLostReconfigures(t *testing.T) {
	s := &fakeState{}
	assert.True(t, HandleRenderError(s, errors.New("surface Lost")))
	assert.Equal(t, 1, s.reconfigures)
}

func TestHandleRenderErrorOutOfMemoryStops(t *testing.T) {
	s := &fakeState{}
	assert.False(t, HandleRenderError(s, errors.New("Out of Memory")))
	assert.Zero(t, s.reconfigures)
}

func TestHandleRenderErrorTransientContinues(t *testing.T) {
	s := &fakeState{}
	assert.True(t, HandleRenderError(s, errors.New("acquire timed out")))
	assert.Zero(t, s.reconfigures)
}

func TestRenderFrame(t *testing.T) {
	s := &fakeState{}
	cell := NewCell[State]()
	cell.Set(s)

	assert.True(t, RenderFrame(cell))
	assert.Equal(t, 1, s.renderCalls)
}

func TestRenderFrameStopsOnOutOfMemory(t *testing.T) {
	s := &fakeState{renderErr: errors.New("OutOfMemory")}
	cell := NewCell[State]()
	cell.Set(s)

	assert.False(t, RenderFrame(cell))
}

func TestRenderFrameSkipsEmptyCell(t *testing.T) {
	cell := NewCell[State]()

	assert.True(t, RenderFrame(cell))
}

func TestRenderFrameSkipsWhileHeld(t *testing.T) {
	s := &fakeState{}
	cell := NewCell[State]()
	cell.Set(s)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		cell.Use(func(State) {
			close(locked)
			<-release
		})
	}()

	<-locked
	assert.True(t, RenderFrame(cell), "a skipped frame must not stop the loop")
	assert.Zero(t, s.renderCalls)

	close(release)
	<-done
}

func TestResize(t *testing.T) {
	s := &fakeState{}
	cell := NewCell[State]()
	cell.Set(s)

	Resize(cell, 1024, 768)
	require.Len(t, s.resizes, 1)
	assert.Equal(t, [2]int{1024, 768}, s.resizes[0])
}

func TestResizeSkipsWhileHeld(t *testing.T) {
	s := &fakeState{}
	cell := NewCell[State]()
	cell.Set(s)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		cell.Use(func(State) {
			close(locked)
			<-release
		})
	}()

	<-locked
	Resize(cell, 1024, 768)
	assert.Empty(t, s.resizes)

	close(release)
	<-done
}
