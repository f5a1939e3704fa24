package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/ogltech/engine/assets"
	"github.com/spaghettifunk/ogltech/engine/config"
	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/renderer"
	"github.com/spaghettifunk/ogltech/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// how long a suspended engine waits before checking again
const suspendedPollInterval = 10 * time.Millisecond

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	systemManager *systems.SystemManager
	watcher       *assets.Watcher
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.FrameMetrics
	lastTime      float64
	frameCount    uint64
}

// New boots the engine with a headless backend.
func New(g *Game) (*Engine, error) {
	backend, err := renderer.NewBackend(renderer.Headless)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return NewWithBackend(g, backend)
}

// NewWithBackend boots the engine on the given backend and runs the game's
// boot callback.
func NewWithBackend(g *Game, backend renderer.RendererBackend) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game without application config: %w", core.ErrInvalidConfig)
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewFrameMetrics(),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}

	sm, err := systems.NewSystemManager(g.ApplicationConfig.Name, e.width, e.height, backend)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	e.systemManager = sm
	g.SystemManager = sm

	if g.FnBoot != nil {
		if err := g.FnBoot(); err != nil {
			core.LogError("game boot failed: %s", err)
			return nil, err
		}
	}
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("initialize called in stage %s: %w", e.currentStage, core.ErrInvalidConfig)
	}
	e.currentStage = EngineStageInitializing

	// initialize events
	if !core.EventInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.systemManager.Initialize(); err != nil {
		return err
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized (%dx%d)", e.gameInstance.ApplicationConfig.Name, e.width, e.height)
	return nil
}

// WatchScene reloads the scene at path on a job worker whenever it changes on
// disk. The result reaches listeners of EVENT_CODE_SCENE_RELOADED on the main
// loop.
func (e *Engine) WatchScene(path string) error {
	if e.currentStage != EngineStageInitialized && e.currentStage != EngineStageRunning {
		return fmt.Errorf("watching %s in stage %s: %w", path, e.currentStage, core.ErrEngineNotInitialized)
	}
	if e.watcher == nil {
		w, err := assets.NewWatcher()
		if err != nil {
			return err
		}
		e.watcher = w
	}
	return e.watcher.Watch(path, e.reloadScene)
}

func (e *Engine) reloadScene(path string) {
	err := e.systemManager.JobSystem.Submit(systems.JobTask{
		Name: "scene reload " + path,
		OnStart: func() (interface{}, error) {
			return config.Load(path)
		},
		OnComplete: func(result interface{}) {
			ctx := core.EventContext{Payload: result}
			ctx.Data.C[0] = path
			if err := core.EventPost(core.EVENT_CODE_SCENE_RELOADED, e, ctx); err != nil {
				core.LogWarn("dropping reload of %s: %s", path, err)
			}
		},
		OnFailure: func(err error) {
			core.LogWarn("keeping current scene, %s did not load: %s", path, err)
		},
	})
	if err != nil {
		core.LogWarn("scene reload of %s not scheduled: %s", path, err)
	}
}

// Run drives update and render until the configured frame count is reached,
// a quit event arrives or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("run called in stage %s: %w", e.currentStage, core.ErrEngineNotInitialized)
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true
	defer func() {
		e.currentStage = EngineStageInitialized
	}()

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	var targetFrameSeconds float64
	if e.gameInstance.ApplicationConfig.FrameRate > 0 {
		targetFrameSeconds = 1.0 / e.gameInstance.ApplicationConfig.FrameRate
	}
	frames := e.gameInstance.ApplicationConfig.Frames
	var runningTime float64

	for e.isRunning {
		if ctx.Err() != nil {
			core.LogInfo("context done, stopping the main loop")
			break
		}

		core.EventDispatchPending()
		if !e.isRunning {
			break
		}

		if e.isSuspended {
			wait(ctx, suspendedPollInterval)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStart := time.Now()

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err)
				return err
			}
		}

		packet := &renderer.RenderPacket{DeltaTime: delta}
		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(packet, delta); err != nil {
				core.LogError("game render failed, shutting down: %s", err)
				return err
			}
		}

		if err := e.systemManager.DrawFrame(packet); err != nil {
			core.LogError("draw frame failed: %s", err)
			return err
		}

		// Figure out how long the frame took and, if below the target, give
		// the remainder back.
		frameElapsed := time.Since(frameStart).Seconds()
		runningTime += frameElapsed
		e.metrics.Update(frameElapsed)
		e.frameCount++

		if frames > 0 && e.frameCount >= frames {
			e.isRunning = false
		}

		if remaining := targetFrameSeconds - frameElapsed; remaining > 0 && e.isRunning {
			wait(ctx, time.Duration(remaining*float64(time.Second)))
		}

		e.lastTime = currentTime
	}

	fps, frameTime := e.metrics.Frame()
	core.LogInfo("main loop stopped after %d frames (%.3fs busy, %.1f fps, %.3fms avg)", e.frameCount, runningTime, fps, frameTime)
	return nil
}

func wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogWarn(err.Error())
		}
		e.watcher = nil
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	if err := core.EventShutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageUninitialized
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// FrameCount is the number of frames drawn so far.
func (e *Engine) FrameCount() uint64 {
	return e.frameCount
}

func (e *Engine) Metrics() *core.FrameMetrics {
	return e.metrics
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// Resize fires EVENT_CODE_RESIZED on the calling goroutine.
func (e *Engine) Resize(width, height uint32) {
	ctx := core.EventContext{}
	ctx.Data.U32[0] = width
	ctx.Data.U32[1] = height
	core.EventFire(core.EVENT_CODE_RESIZED, e, ctx)
}

func (e *Engine) onEvent(code core.SystemEventCode, sender, listener interface{}, context core.EventContext) bool {
	switch code {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onResized(code core.SystemEventCode, sender, listener interface{}, context core.EventContext) bool {
	if code != core.EVENT_CODE_RESIZED {
		return false
	}
	width := context.Data.U32[0]
	height := context.Data.U32[1]

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Framebuffer resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Framebuffer minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Framebuffer restored, resuming application.")
		e.isSuspended = false
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.systemManager.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	// other listeners may care about the new size too
	return false
}
