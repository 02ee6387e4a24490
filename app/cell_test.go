package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellEmpty(t *testing.T) {
	cell := NewCell[int]()

	assert.False(t, cell.Initialized())
	assert.False(t, cell.Use(func(int) {
		t.Error("Use ran on an empty cell")
	}))
	assert.False(t, cell.TryUse(func(int) {
		t.Error("TryUse ran on an empty cell")
	}))
}

func TestCellSetAndUse(t *testing.T) {
	cell := NewCell[int]()
	cell.Set(42)

	require.True(t, cell.Initialized())

	var got int
	require.True(t, cell.Use(func(v int) { got = v }))
	assert.Equal(t, 42, got)

	got = 0
	require.True(t, cell.TryUse(func(v int) { got = v }))
	assert.Equal(t, 42, got)
}

func TestCellSetOverwrites(t *testing.T) {
	cell := NewCell[string]()
	cell.Set("first")
	cell.Set("second")

	var got string
	require.True(t, cell.Use(func(v string) { got = v }))
	assert.Equal(t, "second", got)
}

func TestCellTryUseSkipsWhileHeld(t *testing.T) {
	cell := NewCell[int]()
	cell.Set(1)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		cell.Use(func(int) {
			close(locked)
			<-release
		})
	}()

	<-locked
	assert.False(t, cell.TryUse(func(int) {
		t.Error("TryUse ran while the guard was held")
	}))

	close(release)
	<-done
	assert.True(t, cell.TryUse(func(int) {}))
}
