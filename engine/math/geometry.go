package math

import "github.com/spaghettifunk/ogltech/engine/core"

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	Position Vec3f
	Normal   Vec3f
	Texcoord Vec2f
	Colour   Vec4f
	Tangent  Vec3f
}

// GeometryGenerateNormals writes a face normal into every vertex of each
// indexed triangle. Smoothing, if wanted, is a separate pass.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents derives per-triangle tangents from positions and
// texture coordinates. The sign of the UV winding picks the handedness.
func GeometryGenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		duv1 := vertices[i1].Texcoord.Sub(vertices[i0].Texcoord)
		duv2 := vertices[i2].Texcoord.Sub(vertices[i0].Texcoord)

		fc := 1.0 / (duv1.X*duv2.Y - duv2.X*duv1.Y)

		tangent := edge1.MulScalar(duv2.Y).Sub(edge2.MulScalar(duv1.Y)).MulScalar(fc).Normalized()

		handedness := float32(1.0)
		if (duv1.Y*duv2.X - duv2.Y*duv1.X) < 0.0 {
			handedness = -1.0
		}

		t := tangent.MulScalar(handedness)
		vertices[i0].Tangent = t
		vertices[i1].Tangent = t
		vertices[i2].Tangent = t
	}
}

func Vertex3DEqual(vert0, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON) &&
		vert0.Tangent.Compare(vert1.Tangent, K_FLOAT_EPSILON)
}

// GeometryDeduplicateVertices collapses vertices that compare equal and
// rewrites indices to point at the survivors.
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	remap := make([]uint32, len(vertices))

	for v := range vertices {
		found := false
		for u := range unique {
			if Vertex3DEqual(vertices[v], unique[u]) {
				remap[v] = uint32(u)
				found = true
				break
			}
		}
		if !found {
			remap[v] = uint32(len(unique))
			unique = append(unique, vertices[v])
		}
	}

	for i, idx := range indices {
		indices[i] = remap[idx]
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", len(vertices)-len(unique), len(vertices), len(unique))
	return unique
}
