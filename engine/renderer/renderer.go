package renderer

import "github.com/spaghettifunk/ogltech/engine/math"

// DrawCall is one object to draw this frame.
type DrawCall struct {
	// ID doubles as the object's uniform location.
	ID   uint32
	Name string
	// World is the object's model matrix, parents included.
	World math.Mat4f
	// WVP is projection * view * World.
	WVP math.Mat4f
	// Geometry may be nil for draws that only carry a transform.
	Geometry *Geometry
}

type RenderPacket struct {
	DeltaTime float64
	Draws     []DrawCall
}
