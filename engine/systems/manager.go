package systems

import (
	"github.com/spaghettifunk/ogltech/engine/renderer"
)

type SystemManager struct {
	CameraSystem   *CameraSystem
	GeometrySystem *GeometrySystem
	JobSystem      *JobSystem
	RendererSystem *RendererSystem
}

func NewSystemManager(appName string, width, height uint32, backend renderer.RendererBackend) (*SystemManager, error) {
	js, err := NewJobSystem(1, 8)
	if err != nil {
		return nil, err
	}
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 64,
	})
	if err != nil {
		return nil, err
	}
	gs, err := NewGeometrySystem(&GeometrySystemConfig{
		MaxGeometryCount: 4096,
	})
	if err != nil {
		return nil, err
	}
	rs, err := NewRendererSystem(appName, width, height, backend)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		CameraSystem:   cs,
		GeometrySystem: gs,
		JobSystem:      js,
		RendererSystem: rs,
	}, nil
}

func (sm *SystemManager) Initialize() error {
	if err := sm.RendererSystem.Initialize(); err != nil {
		return err
	}
	sm.CameraSystem.GetDefault().SetAspect(aspect(sm.RendererSystem.AppWidth, sm.RendererSystem.AppHeight))
	return nil
}

// OnResize forwards the new framebuffer size to the renderer and the default camera.
func (sm *SystemManager) OnResize(width, height uint32) error {
	if width > 0 && height > 0 {
		sm.CameraSystem.GetDefault().SetAspect(aspect(width, height))
	}
	return sm.RendererSystem.OnResize(width, height)
}

func (sm *SystemManager) DrawFrame(packet *renderer.RenderPacket) error {
	return sm.RendererSystem.DrawFrame(packet)
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.RendererSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.CameraSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.GeometrySystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.JobSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}

func aspect(width, height uint32) float32 {
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}
