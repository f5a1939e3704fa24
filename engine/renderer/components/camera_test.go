package components

import (
	"testing"

	"github.com/spaghettifunk/ogltech/engine/math"
	"github.com/stretchr/testify/assert"
)

const tol = float32(1e-5)

func TestCameraDefault(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, math.NewMat4Identity[float32](), c.View())
	assert.Equal(t, math.NewVec3[float32](0, 0, -1), c.Forward())
	assert.Equal(t, math.NewVec3[float32](1, 0, 0), c.Right())
	assert.Equal(t, float32(16.0/9.0), c.Aspect())
}

func TestCameraView(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3[float32](0, 0, 10))

	p := math.NewVec3[float32](0, 0, 0).Transform(c.View())
	assert.True(t, p.Compare(math.NewVec3[float32](0, 0, -10), tol), "got %v", p)

	// the camera's own position ends up at the view origin
	p = c.Position().Transform(c.View())
	assert.True(t, p.Compare(math.NewVec3Zero[float32](), tol), "got %v", p)

	world := math.NewMat4Translation(c.Position())
	assert.True(t, c.View().Mul(world).Compare(math.NewMat4Identity[float32](), tol))
}

func TestCameraViewIsCached(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3[float32](1, 2, 3))
	first := c.View()
	assert.False(t, c.viewDirty)

	c.viewMatrix = math.NewMat4Diagonal[float32](7)
	assert.Equal(t, math.NewMat4Diagonal[float32](7), c.View())

	c.MoveUp(0)
	assert.Equal(t, first, c.View())
}

func TestCameraYawAndMove(t *testing.T) {
	c := NewCamera()
	c.Yaw(math.Deg[float32](90))

	// turning left by 90° looks down -x
	assert.True(t, c.Forward().Compare(math.NewVec3[float32](-1, 0, 0), tol), "got %v", c.Forward())

	c.MoveForward(5)
	assert.True(t, c.Position().Compare(math.NewVec3[float32](-5, 0, 0), tol), "got %v", c.Position())

	c.MoveRight(2)
	assert.True(t, c.Position().Compare(math.NewVec3[float32](-5, 0, -2), tol), "got %v", c.Position())

	c.MoveBackward(5)
	c.MoveLeft(2)
	c.MoveUp(3)
	c.MoveDown(1)
	assert.True(t, c.Position().Compare(math.NewVec3[float32](0, 2, 0), tol), "got %v", c.Position())
}

func TestCameraPitchIsClamped(t *testing.T) {
	tests := []struct {
		name     string
		amount   float32
		expected float32
	}{
		{"within range", 30, 30},
		{"past the top", 120, 89},
		{"past the bottom", -200, -89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			c.Pitch(math.Deg(tt.amount))
			pitch, _, _ := c.Rotation()
			assert.Equal(t, tt.expected, pitch.Value())
		})
	}

	c := NewCamera()
	c.SetRotation(math.Deg[float32](95), math.Deg[float32](10), math.Deg[float32](0))
	pitch, yaw, _ := c.Rotation()
	assert.Equal(t, float32(89), pitch.Value())
	assert.Equal(t, float32(10), yaw.Value())
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera()
	c.SetPerspective(math.Deg[float32](90), 2, 1, 100)

	expected := math.NewMat4Perspective(math.Deg[float32](90).ToRadian(), 2, 1, 100)
	assert.Equal(t, expected, c.Projection())

	c.SetAspect(1)
	assert.Equal(t, float32(1), c.Aspect())
	assert.NotEqual(t, expected, c.Projection())

	c.SetPosition(math.NewVec3[float32](0, 0, 5))
	vp := c.ViewProjection()
	assert.Equal(t, c.Projection().Mul(c.View()), vp)

	// the origin is 5 units in front of the camera, on the view axis
	clip := vp.MulVec4(math.NewVec4[float32](0, 0, 0, 1))
	assert.InDelta(t, 0.0, float64(clip.X/clip.W), 1e-6)
	assert.InDelta(t, 0.0, float64(clip.Y/clip.W), 1e-6)
	assert.InDelta(t, 5.0, float64(clip.W), 1e-5)
}
