package engine

import (
	"fmt"

	"github.com/spaghettifunk/ogltech/engine/config"
	"github.com/spaghettifunk/ogltech/engine/core"
)

type ApplicationConfig struct {
	// Framebuffer starting width.
	StartWidth uint32
	// Framebuffer starting height.
	StartHeight uint32
	// The application name used in logs.
	Name     string
	LogLevel core.LogLevel
	// Frames to run before Run returns. 0 means until cancelled or quit.
	Frames uint64
	// Target frames per second. 0 disables the limiter.
	FrameRate float64
}

// NewApplicationConfig takes the application section of a scene.
func NewApplicationConfig(scene *config.Config) (*ApplicationConfig, error) {
	if scene == nil {
		return nil, fmt.Errorf("nil scene: %w", core.ErrInvalidConfig)
	}
	level, err := core.ParseLogLevel(scene.Application.LogLevel)
	if err != nil {
		return nil, err
	}
	return &ApplicationConfig{
		StartWidth:  scene.Application.Width,
		StartHeight: scene.Application.Height,
		Name:        scene.Application.Name,
		LogLevel:    level,
		Frames:      scene.Application.Frames,
		FrameRate:   scene.Application.FrameRate,
	}, nil
}
