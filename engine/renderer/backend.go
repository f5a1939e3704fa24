package renderer

import (
	"fmt"

	"github.com/spaghettifunk/ogltech/engine/core"
)

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float64) error
	DrawGeometry(draw DrawCall) error
	EndFrame(deltaTime float64) error
}

type RendererType uint8

const (
	Headless RendererType = iota
	OpenGL
)

func (rt RendererType) String() string {
	switch rt {
	case Headless:
		return "headless"
	case OpenGL:
		return "opengl"
	}
	return fmt.Sprintf("RendererType(%d)", uint8(rt))
}

// NewBackend creates the backend for rendererType. Only the headless backend
// ships with the engine.
func NewBackend(rendererType RendererType) (RendererBackend, error) {
	switch rendererType {
	case Headless:
		return NewHeadlessBackend(), nil
	}
	err := fmt.Errorf("renderer backend %s is not available: %w", rendererType, core.ErrInvalidConfig)
	core.LogError(err.Error())
	return nil, err
}
