package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderPipelineRejectsEmptySource(t *testing.T) {
	_, err := NewRenderPipeline(nil, wgpu.TextureFormatBGRA8UnormSrgb, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WGSL source")
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultRenderPipelineConfig()

	assert.Equal(t, "render pipeline", cfg.label)
	assert.Equal(t, "vs_main", cfg.vertexEntry)
	assert.Equal(t, "fs_main", cfg.fragmentEntry)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, cfg.topology)
	assert.Equal(t, wgpu.FrontFaceCCW, cfg.frontFace)
	assert.Equal(t, wgpu.CullModeBack, cfg.cullMode)
	require.NotNil(t, cfg.blend)
	assert.Equal(t, wgpu.BlendFactorOne, cfg.blend.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, cfg.blend.Color.DstFactor)
	assert.Empty(t, cfg.bindGroupLayouts)
}

func TestOptions(t *testing.T) {
	cfg := defaultRenderPipelineConfig()
	for _, opt := range []RenderPipelineOption{
		WithLabel("custom"),
		WithEntryPoints("vert", "frag"),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithCullMode(wgpu.CullModeNone),
	} {
		opt(&cfg)
	}

	assert.Equal(t, "custom", cfg.label)
	assert.Equal(t, "vert", cfg.vertexEntry)
	assert.Equal(t, "frag", cfg.fragmentEntry)
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, cfg.topology)
	assert.Equal(t, wgpu.CullModeNone, cfg.cullMode)
}

func TestOptionsKeepDefaultsOnZeroValues(t *testing.T) {
	cfg := defaultRenderPipelineConfig()
	WithLabel("")(&cfg)
	WithEntryPoints("", "")(&cfg)

	assert.Equal(t, "render pipeline", cfg.label)
	assert.Equal(t, "vs_main", cfg.vertexEntry)
	assert.Equal(t, "fs_main", cfg.fragmentEntry)
}
