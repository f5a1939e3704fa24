package testbed

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/ogltech/engine"
	"github.com/spaghettifunk/ogltech/engine/config"
	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/math"
	"github.com/spaghettifunk/ogltech/engine/renderer"
	"github.com/spaghettifunk/ogltech/engine/renderer/components"
	"github.com/spaghettifunk/ogltech/engine/renderer/uniform"
	"github.com/spaghettifunk/ogltech/engine/systems"
)

type TestGame struct {
	*engine.Game
}

// placement is one scene object: its transform, current Euler angles and
// spin rate in degrees per second.
type placement struct {
	id        uint32
	name      string
	transform *math.Transformf
	rotation  math.Vec3f
	spin      math.Vec3f
}

type gameState struct {
	scene       *config.Config
	WorldCamera *components.Camera
	placements  []*placement
	// every placement draws this cube
	cube *renderer.Geometry

	width  uint32
	height uint32

	// seconds since the last stats line
	statsTimer float64
}

func NewTestGame(scene *config.Config) (*TestGame, error) {
	ac, err := engine.NewApplicationConfig(scene)
	if err != nil {
		return nil, err
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: ac,
			State: &gameState{
				scene: scene,
			},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Boot() error {
	state := g.State.(*gameState)
	core.LogInfo("booting testbed with %d placements...", len(state.scene.Placements))
	return nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.SystemManager == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}

	state := g.State.(*gameState)
	state.WorldCamera = g.SystemManager.CameraSystem.GetDefault()

	cube, err := g.SystemManager.GeometrySystem.AcquireFromConfig(systems.GenerateCubeConfig(1, 1, 1, 1, 1, "testbed_cube"), true)
	if err != nil {
		return err
	}
	state.cube = cube

	if err := g.load(state.scene); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_SCENE_RELOADED, g, g.gameOnEvent)
	return nil
}

// Reload swaps the running scene for scene. The camera keeps its aspect.
func (g *TestGame) Reload(scene *config.Config) error {
	g.releasePlacements()
	if err := g.load(scene); err != nil {
		return err
	}
	core.LogInfo("scene reloaded: %d placements", len(scene.Placements))
	return nil
}

func (g *TestGame) load(scene *config.Config) error {
	state := g.State.(*gameState)

	byName := make(map[string]*placement, len(scene.Placements))
	placements := make([]*placement, 0, len(scene.Placements))
	for i := range scene.Placements {
		cfg := &scene.Placements[i]
		p := &placement{
			name:      cfg.Name,
			transform: cfg.Transform(),
			rotation:  math.NewVec3(cfg.Rotation[0], cfg.Rotation[1], cfg.Rotation[2]),
			spin:      cfg.SpinRate(),
		}
		p.id = core.IdentifierAcquireNewID(p)
		byName[p.name] = p
		placements = append(placements, p)
	}

	// Set the parent links once every transform exists.
	for i := range scene.Placements {
		parent := scene.Placements[i].Parent
		if parent == "" {
			continue
		}
		pp, ok := byName[parent]
		if !ok {
			for _, p := range placements {
				_ = core.IdentifierReleaseID(p.id)
			}
			return fmt.Errorf("placement %q parent %q: %w", scene.Placements[i].Name, parent, core.ErrUnknownParent)
		}
		placements[i].transform.Parent = pp.transform
	}

	state.scene = scene
	state.placements = placements
	scene.Camera.Apply(state.WorldCamera, state.WorldCamera.Aspect())
	return nil
}

func (g *TestGame) releasePlacements() {
	state := g.State.(*gameState)
	for _, p := range state.placements {
		if err := core.IdentifierReleaseID(p.id); err != nil {
			core.LogWarn("releasing id of %s: %s", p.name, err)
		}
	}
	state.placements = nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)

	dt := float32(deltaTime)
	for _, p := range state.placements {
		if p.spin == math.NewVec3Zero[float32]() {
			continue
		}
		p.rotation = p.rotation.Add(p.spin.MulScalar(dt))
		p.rotation = math.NewVec3(
			math32.Mod(p.rotation.X, 360),
			math32.Mod(p.rotation.Y, 360),
			math32.Mod(p.rotation.Z, 360),
		)
		p.transform.SetRotation(math.Deg(p.rotation.X), math.Deg(p.rotation.Y), math.Deg(p.rotation.Z))
	}

	state.statsTimer += deltaTime
	if state.statsTimer >= 1.0 {
		state.statsTimer = 0
		pos := state.WorldCamera.Position()
		pitch, yaw, roll := state.WorldCamera.Rotation()
		core.LogDebug("Camera Pos=[%7.3f %7.3f %7.3f] Rot=[%7.3f %7.3f %7.3f]",
			pos.X, pos.Y, pos.Z, pitch.Value(), yaw.Value(), roll.Value())
	}
	return nil
}

func (g *TestGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.State.(*gameState)

	packet.DeltaTime = deltaTime

	projection := state.WorldCamera.Projection()
	view := state.WorldCamera.View()
	for _, p := range state.placements {
		world := p.transform.World()
		packet.Draws = append(packet.Draws, renderer.DrawCall{
			ID:       p.id,
			Name:     p.name,
			World:    world,
			WVP:      uniform.WVP(projection, view, world),
			Geometry: state.cube,
		})
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)

	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)

	core.EventUnregister(core.EVENT_CODE_SCENE_RELOADED, g)
	g.releasePlacements()
	if state.cube != nil {
		g.SystemManager.GeometrySystem.Release(state.cube)
		state.cube = nil
	}
	return nil
}

func (g *TestGame) gameOnEvent(code core.SystemEventCode, sender, listener interface{}, context core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_SCENE_RELOADED:
		scene, ok := context.Payload.(*config.Config)
		if !ok {
			core.LogError("wrong payload associated with the event type `%d`", code)
			return false
		}
		if err := g.Reload(scene); err != nil {
			core.LogError("failed to reload %s: %s", context.Data.C[0], err)
		}
		return true
	}
	return false
}
