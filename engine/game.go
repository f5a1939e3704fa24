package engine

import (
	"github.com/spaghettifunk/ogltech/engine/renderer"
	"github.com/spaghettifunk/ogltech/engine/systems"
)

// Game is the set of callbacks the engine drives. SystemManager is filled in
// by New before FnBoot runs.
type Game struct {
	ApplicationConfig *ApplicationConfig
	SystemManager     *systems.SystemManager
	State             interface{}
	FnBoot            Boot
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
