package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/math"
	"github.com/spaghettifunk/ogltech/engine/renderer/components"
)

// Config is the content of a scene file.
type Config struct {
	Application ApplicationConfig `toml:"application"`
	Camera      CameraConfig      `toml:"camera"`
	Placements  []Placement       `toml:"placement"`
}

type ApplicationConfig struct {
	// The application name used in logs.
	Name string `toml:"name"`
	// One of debug, info, warn, error, fatal.
	LogLevel string `toml:"log_level"`
	// Starting framebuffer size.
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	// Number of frames to run. 0 runs until the engine is cancelled.
	Frames uint64 `toml:"frames"`
	// Target frames per second. 0 disables the frame limiter.
	FrameRate float64 `toml:"frame_rate"`
}

type CameraConfig struct {
	Position []float32 `toml:"position"`
	// pitch, yaw, roll in degrees
	Rotation []float32 `toml:"rotation"`
	// vertical field of view in degrees
	Fov  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

// Placement describes one transformed object of the scene.
type Placement struct {
	Name        string    `toml:"name,omitempty"`
	Scale       []float32 `toml:"scale"`
	Rotation    []float32 `toml:"rotation"`
	Translation []float32 `toml:"translation"`
	// degrees per second around x, y and z
	Spin   []float32 `toml:"spin,omitempty"`
	Parent string    `toml:"parent,omitempty"`
}

// Default returns the built-in scene: a spinning root with one child.
func Default() *Config {
	return &Config{
		Application: ApplicationConfig{
			Name:      "OGLTech Testbed",
			LogLevel:  "info",
			Width:     1280,
			Height:    720,
			Frames:    0,
			FrameRate: 60,
		},
		Camera: CameraConfig{
			Position: []float32{0, 2, 15},
			Rotation: []float32{0, 0, 0},
			Fov:      45,
			Near:     0.1,
			Far:      1000,
		},
		Placements: []Placement{
			{
				Name:        "sun",
				Scale:       []float32{2, 2, 2},
				Rotation:    []float32{0, 0, 0},
				Translation: []float32{0, 0, 0},
				Spin:        []float32{0, 30, 0},
			},
			{
				Name:        "planet",
				Scale:       []float32{0.5, 0.5, 0.5},
				Rotation:    []float32{0, 0, 0},
				Translation: []float32{5, 0, 0},
				Spin:        []float32{0, 0, 90},
				Parent:      "sun",
			},
		},
	}
}

// Load reads and validates the scene file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		core.LogError("failed to read scene file %s: %s", path, err)
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a scene, fills in defaults and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding scene: %w: %w", err, core.ErrInvalidConfig)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	if c.Application.Width == 0 {
		c.Application.Width = 1280
	}
	if c.Application.Height == 0 {
		c.Application.Height = 720
	}
	if c.Camera.Position == nil {
		c.Camera.Position = []float32{0, 0, 0}
	}
	if c.Camera.Rotation == nil {
		c.Camera.Rotation = []float32{0, 0, 0}
	}
	if c.Camera.Fov == 0 {
		c.Camera.Fov = 45
	}
	if c.Camera.Near == 0 {
		c.Camera.Near = 0.1
	}
	if c.Camera.Far == 0 {
		c.Camera.Far = 1000
	}
	for i := range c.Placements {
		p := &c.Placements[i]
		if p.Name == "" {
			p.Name = uuid.NewString()
		}
		if p.Scale == nil {
			p.Scale = []float32{1, 1, 1}
		}
		if p.Rotation == nil {
			p.Rotation = []float32{0, 0, 0}
		}
		if p.Translation == nil {
			p.Translation = []float32{0, 0, 0}
		}
		if p.Spin == nil {
			p.Spin = []float32{0, 0, 0}
		}
	}
}

// Validate checks value ranges and the placement hierarchy.
func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		return err
	}
	if c.Application.Width == 0 || c.Application.Height == 0 {
		return fmt.Errorf("application size %dx%d: %w", c.Application.Width, c.Application.Height, core.ErrInvalidConfig)
	}
	if c.Application.FrameRate < 0 {
		return fmt.Errorf("application frame_rate %f must not be negative: %w", c.Application.FrameRate, core.ErrInvalidConfig)
	}

	if err := checkTriple("camera.position", c.Camera.Position); err != nil {
		return err
	}
	if err := checkTriple("camera.rotation", c.Camera.Rotation); err != nil {
		return err
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov %f must be in (0, 180): %w", c.Camera.Fov, core.ErrInvalidConfig)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes near=%f far=%f: %w", c.Camera.Near, c.Camera.Far, core.ErrInvalidConfig)
	}

	parents := make(map[string]string, len(c.Placements))
	for _, p := range c.Placements {
		if p.Name == "" {
			return fmt.Errorf("placement without a name: %w", core.ErrInvalidConfig)
		}
		if _, ok := parents[p.Name]; ok {
			return fmt.Errorf("placement %q: %w", p.Name, core.ErrDuplicatePlacement)
		}
		parents[p.Name] = p.Parent

		for _, f := range []struct {
			name   string
			values []float32
		}{
			{"scale", p.Scale},
			{"rotation", p.Rotation},
			{"translation", p.Translation},
			{"spin", p.Spin},
		} {
			if err := checkTriple(fmt.Sprintf("placement %q %s", p.Name, f.name), f.values); err != nil {
				return err
			}
		}
	}

	for name, parent := range parents {
		if parent == "" {
			continue
		}
		if _, ok := parents[parent]; !ok {
			return fmt.Errorf("placement %q parent %q: %w", name, parent, core.ErrUnknownParent)
		}
	}

	// every chain must reach a root within len(parents) steps
	for name := range parents {
		current := name
		for steps := 0; parents[current] != ""; steps++ {
			if steps >= len(parents) {
				return fmt.Errorf("placement %q: %w", name, core.ErrParentCycle)
			}
			current = parents[current]
		}
	}
	return nil
}

func checkTriple(what string, values []float32) error {
	if len(values) != 3 {
		return fmt.Errorf("%s needs 3 values, got %d: %w", what, len(values), core.ErrInvalidConfig)
	}
	return nil
}

// Transform builds a transform from the placement's scale, rotation in
// degrees and translation. The parent link is left to the caller.
func (p *Placement) Transform() *math.Transformf {
	t := math.NewTransform[float32]()
	t.SetScaling(p.Scale[0], p.Scale[1], p.Scale[2])
	t.SetRotation(math.Deg(p.Rotation[0]), math.Deg(p.Rotation[1]), math.Deg(p.Rotation[2]))
	t.SetTranslation(p.Translation[0], p.Translation[1], p.Translation[2])
	return t
}

// SpinRate returns the placement's spin as degrees per second.
func (p *Placement) SpinRate() math.Vec3f {
	return math.NewVec3(p.Spin[0], p.Spin[1], p.Spin[2])
}

// Apply configures camera with the scene's position, orientation and lens.
func (c *CameraConfig) Apply(camera *components.Camera, aspect float32) {
	camera.SetPosition(math.NewVec3(c.Position[0], c.Position[1], c.Position[2]))
	camera.SetRotation(math.Deg(c.Rotation[0]), math.Deg(c.Rotation[1]), math.Deg(c.Rotation[2]))
	camera.SetPerspective(math.Deg(c.Fov), aspect, c.Near, c.Far)
}
