package systems

import (
	"fmt"

	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/math"
	"github.com/spaghettifunk/ogltech/engine/renderer"
)

/** @brief The name of the default geometry. */
const DEFAULT_GEOMETRY_NAME string = "default"

type GeometrySystemConfig struct {
	/**
	 * @brief Max number of geometries that can be loaded at once.
	 * NOTE: Should be significantly greater than the number of static meshes because
	 * there can and will be more than one of these per mesh.
	 * Take other systems into account as well.
	 */
	MaxGeometryCount uint32
}

type geometryReference struct {
	referenceCount uint64
	geometry       *renderer.Geometry
	autoRelease    bool
}

type GeometrySystem struct {
	Config          *GeometrySystemConfig
	DefaultGeometry *renderer.Geometry
	// Array of registered geometries, indexed by id. Free slots are nil.
	registered []*geometryReference
	byName     map[string]uint32
}

func NewGeometrySystem(config *GeometrySystemConfig) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}

	gs := &GeometrySystem{
		Config:     config,
		registered: make([]*geometryReference, config.MaxGeometryCount),
		byName:     make(map[string]uint32),
	}

	def, err := gs.AcquireFromConfig(GenerateCubeConfig(1, 1, 1, 1, 1, DEFAULT_GEOMETRY_NAME), false)
	if err != nil {
		core.LogError("failed to create default geometry. Application cannot continue")
		return nil, err
	}
	gs.DefaultGeometry = def
	return gs, nil
}

/**
 * @brief Acquires an existing geometry by id.
 */
func (gs *GeometrySystem) AcquireByID(id uint32) (*renderer.Geometry, error) {
	if int(id) < len(gs.registered) && gs.registered[id] != nil {
		gs.registered[id].referenceCount++
		return gs.registered[id].geometry, nil
	}
	err := fmt.Errorf("cannot acquire invalid geometry id %d", id)
	core.LogError(err.Error())
	return nil, err
}

/**
 * @brief Registers and acquires a new geometry using the given config. A
 * geometry with the same name is shared instead.
 *
 * @param autoRelease Indicates if the acquired geometry should be unloaded when its reference count reaches 0.
 */
func (gs *GeometrySystem) AcquireFromConfig(config *renderer.GeometryConfig, autoRelease bool) (*renderer.Geometry, error) {
	if id, ok := gs.byName[config.Name]; ok {
		return gs.AcquireByID(id)
	}
	if len(config.Vertices) == 0 || len(config.Indices) == 0 {
		err := fmt.Errorf("geometry %q has no vertex data: %w", config.Name, core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}

	for i := range gs.registered {
		if gs.registered[i] != nil {
			continue
		}
		// Found empty slot.
		geometry := &renderer.Geometry{
			ID:         uint32(i),
			Name:       config.Name,
			Center:     config.Center,
			MinExtents: config.MinExtents,
			MaxExtents: config.MaxExtents,
			Vertices:   config.Vertices,
			Indices:    config.Indices,
		}
		gs.registered[i] = &geometryReference{
			referenceCount: 1,
			geometry:       geometry,
			autoRelease:    autoRelease,
		}
		gs.byName[config.Name] = uint32(i)
		return geometry, nil
	}

	err := fmt.Errorf("unable to obtain free slot for geometry %q. Adjust configuration to allow more space", config.Name)
	core.LogError(err.Error())
	return nil, err
}

/**
 * @brief Releases a reference to the provided geometry.
 */
func (gs *GeometrySystem) Release(geometry *renderer.Geometry) {
	if geometry == nil || int(geometry.ID) >= len(gs.registered) || gs.registered[geometry.ID] == nil {
		core.LogWarn("geometry release cannot release invalid geometry. Nothing was done.")
		return
	}
	ref := gs.registered[geometry.ID]
	if ref.geometry != geometry {
		core.LogError("Geometry id mismatch. Check registration logic, as this should never occur.")
		return
	}
	if ref.referenceCount > 0 {
		ref.referenceCount--
	}
	if ref.referenceCount == 0 && ref.autoRelease {
		delete(gs.byName, geometry.Name)
		gs.registered[geometry.ID] = nil
	}
}

func (gs *GeometrySystem) GetDefault() *renderer.Geometry {
	return gs.DefaultGeometry
}

// Count returns the number of registered geometries, the default included.
func (gs *GeometrySystem) Count() int {
	return len(gs.byName)
}

func (gs *GeometrySystem) Shutdown() error {
	for i := range gs.registered {
		gs.registered[i] = nil
	}
	gs.byName = make(map[string]uint32)
	gs.DefaultGeometry = nil
	return nil
}

// cube faces as four corners each, given as signs on the half extents
var cubeFaces = [6][4][3]float32{
	// Front face
	{{-1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {1, -1, 1}},
	// Back face
	{{1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {-1, -1, -1}},
	// Left face
	{{-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}},
	// Right face
	{{1, -1, 1}, {1, 1, -1}, {1, 1, 1}, {1, -1, -1}},
	// Bottom face
	{{1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}},
	// Top face
	{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {1, 1, 1}},
}

/**
 * @brief Generates configuration for cube geometries given the provided parameters.
 * Zero-sized parameters default to one.
 *
 * @param width The overall width of the cube.
 * @param height The overall height of the cube.
 * @param depth The overall depth of the cube.
 * @param tileX The number of times the texture should tile across the cube on the x-axis.
 * @param tileY The number of times the texture should tile across the cube on the y-axis.
 */
func GenerateCubeConfig(width, height, depth, tileX, tileY float32, name string) *renderer.GeometryConfig {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}
	if name == "" {
		name = DEFAULT_GEOMETRY_NAME
	}

	half := math.NewVec3(width*0.5, height*0.5, depth*0.5)
	uvs := [4]math.Vec2f{
		math.NewVec2[float32](0, 0),
		math.NewVec2(tileX, tileY),
		math.NewVec2(0, tileY),
		math.NewVec2[float32](tileX, 0),
	}

	config := &renderer.GeometryConfig{
		Name:     name,
		Vertices: make([]math.Vertex3D, 4*6), // 4 verts per side, 6 sides
		Indices:  make([]uint32, 6*6),        // 6 indices per side, 6 sides
		// Always 0 since min/max of each axis are -/+ half of the size.
		Center:     math.NewVec3Zero[float32](),
		MinExtents: half.Negate(),
		MaxExtents: half,
	}

	for f, face := range cubeFaces {
		vOffset := f * 4
		for c, corner := range face {
			v := &config.Vertices[vOffset+c]
			v.Position = math.NewVec3(corner[0], corner[1], corner[2]).Mul(half)
			v.Texcoord = uvs[c]
			v.Colour = math.NewVec4One[float32]()
		}

		iOffset := f * 6
		config.Indices[iOffset+0] = uint32(vOffset + 0)
		config.Indices[iOffset+1] = uint32(vOffset + 1)
		config.Indices[iOffset+2] = uint32(vOffset + 2)
		config.Indices[iOffset+3] = uint32(vOffset + 0)
		config.Indices[iOffset+4] = uint32(vOffset + 3)
		config.Indices[iOffset+5] = uint32(vOffset + 1)
	}

	math.GeometryGenerateNormals(config.Vertices, config.Indices)
	math.GeometryGenerateTangents(config.Vertices, config.Indices)
	return config
}
