package renderer

import (
	"testing"

	"github.com/spaghettifunk/ogltech/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessBackendFrame(t *testing.T) {
	b := NewHeadlessBackend()
	require.NoError(t, b.Initialize("test", 640, 480))

	wvp := math.NewMat4Translation(math.NewVec3[float32](1, 2, 3))

	assert.Error(t, b.DrawGeometry(DrawCall{Name: "early"}))
	assert.Error(t, b.EndFrame(0))

	require.NoError(t, b.BeginFrame(0.016))
	assert.Error(t, b.BeginFrame(0.016))
	quad := &Geometry{Name: "quad", Indices: []uint32{0, 1, 2, 0, 2, 3}}
	require.NoError(t, b.DrawGeometry(DrawCall{ID: 2, Name: "cube", WVP: wvp, Geometry: quad}))
	require.NoError(t, b.DrawGeometry(DrawCall{ID: 5, Name: "other", WVP: math.NewMat4Identity[float32]()}))
	require.NoError(t, b.EndFrame(0.016))

	assert.Equal(t, uint64(1), b.FrameNumber())
	assert.Equal(t, 2, b.LastDrawCount())
	assert.Equal(t, 6, b.LastIndexCount())

	got, ok := b.Recorder().Matrix(2)
	require.True(t, ok)
	assert.Equal(t, wvp, got)

	require.NoError(t, b.Resized(800, 600))
	w, h := b.Size()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)

	require.NoError(t, b.Shutdown())
	_, ok = b.Recorder().Matrix(2)
	assert.False(t, ok)
}

func TestNewBackend(t *testing.T) {
	b, err := NewBackend(Headless)
	require.NoError(t, err)
	assert.IsType(t, &HeadlessBackend{}, b)

	_, err = NewBackend(OpenGL)
	assert.Error(t, err)
	assert.Equal(t, "opengl", OpenGL.String())
}
