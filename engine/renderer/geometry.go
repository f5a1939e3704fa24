package renderer

import "github.com/spaghettifunk/ogltech/engine/math"

// GeometryConfig holds the vertex data a geometry is created from.
type GeometryConfig struct {
	Name     string
	Vertices []math.Vertex3D
	Indices  []uint32

	Center     math.Vec3f
	MinExtents math.Vec3f
	MaxExtents math.Vec3f
}

/**
 * @brief Represents actual geometry in the world.
 * Typically (but not always, depending on use) paired with a transform.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uint32
	/** @brief The geometry name. */
	Name string
	/** @brief The center of the geometry in local coordinates. */
	Center math.Vec3f
	/** @brief The extents of the geometry in local coordinates. */
	MinExtents math.Vec3f
	MaxExtents math.Vec3f

	Vertices []math.Vertex3D
	Indices  []uint32
}

// IndexCount is safe to call on a nil geometry.
func (g *Geometry) IndexCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices)
}
