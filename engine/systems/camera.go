package systems

import (
	"fmt"

	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/renderer/components"
)

type CameraSystem struct {
	Config *CameraSystemConfig
	Lookup map[string]*components.CameraLookup
	nextID uint16

	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
}

func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0: %w", core.ErrInvalidConfig)
		core.LogError(err.Error())
		return nil, err
	}
	return &CameraSystem{
		Config:        config,
		Lookup:        make(map[string]*components.CameraLookup, config.MaxCameraCount),
		DefaultCamera: components.NewCamera(),
	}, nil
}

func (cs *CameraSystem) Shutdown() error {
	cs.Lookup = make(map[string]*components.CameraLookup)
	cs.DefaultCamera.Reset()
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and returned.
 * Internal reference counter is incremented.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		if len(cs.Lookup) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire new slot for %q. Adjust camera system config to allow more", name)
			core.LogError(err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		lookup = &components.CameraLookup{
			ID:     cs.nextID,
			Camera: components.NewCamera(),
		}
		cs.nextID++
		cs.Lookup[name] = lookup
	}
	lookup.ReferenceCount++
	return lookup.Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is dropped.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup for %q. Nothing was done.", name)
		return
	}
	lookup.ReferenceCount--
	if lookup.ReferenceCount < 1 {
		lookup.Camera.Reset()
		delete(cs.Lookup, name)
	}
}

func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}
