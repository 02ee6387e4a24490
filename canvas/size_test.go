package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name       string
		cssWidth   float64
		cssHeight  float64
		dpr        float64
		wantWidth  int
		wantHeight int
	}{
		{"standard display", 300, 150, 1, 300, 150},
		{"retina display", 300, 150, 2, 600, 300},
		{"fractional dpr", 100, 100, 1.5, 150, 150},
		{"fractional css size truncates", 100.7, 50.7, 1, 100, 50},
		{"zero rect clamps to one", 0, 0, 2, 1, 1},
		{"sub-pixel clamps to one", 0.25, 0.25, 1, 1, 1},
		{"zero width only", 0, 150, 1, 1, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := PixelSize(tt.cssWidth, tt.cssHeight, tt.dpr)
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantHeight, height)
		})
	}
}
