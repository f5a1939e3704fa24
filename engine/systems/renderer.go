package systems

import (
	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/renderer"
)

type RendererSystem struct {
	backend renderer.RendererBackend

	// application
	AppName   string
	AppWidth  uint32
	AppHeight uint32

	// The current window framebuffer width.
	FramebufferWidth uint32
	// The current window framebuffer height.
	FramebufferHeight uint32
}

func NewRendererSystem(appName string, appWidth, appHeight uint32, backend renderer.RendererBackend) (*RendererSystem, error) {
	return &RendererSystem{
		backend:   backend,
		AppName:   appName,
		AppWidth:  appWidth,
		AppHeight: appHeight,
	}, nil
}

func (r *RendererSystem) Initialize() error {
	r.FramebufferWidth = r.AppWidth
	r.FramebufferHeight = r.AppHeight
	if err := r.backend.Initialize(r.AppName, r.AppWidth, r.AppHeight); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	return nil
}

func (r *RendererSystem) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *RendererSystem) OnResize(width, height uint32) error {
	r.FramebufferWidth = width
	r.FramebufferHeight = height
	return r.backend.Resized(width, height)
}

// DrawFrame submits every draw call in packet between BeginFrame and EndFrame.
func (r *RendererSystem) DrawFrame(packet *renderer.RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	for _, draw := range packet.Draws {
		if err := r.backend.DrawGeometry(draw); err != nil {
			core.LogError("failed to draw %s: %s", draw.Name, err)
			// close the frame so the next one can begin
			_ = r.backend.EndFrame(packet.DeltaTime)
			return err
		}
	}
	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
