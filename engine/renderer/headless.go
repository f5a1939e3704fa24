package renderer

import (
	"fmt"

	"github.com/spaghettifunk/ogltech/engine/core"
	"github.com/spaghettifunk/ogltech/engine/renderer/uniform"
)

// HeadlessBackend renders nothing. It pushes every draw's WVP through the
// same uniform path a GL backend uses and records the result.
type HeadlessBackend struct {
	appName     string
	width       uint32
	height      uint32
	recorder    *uniform.Recorder
	frameNumber uint64
	inFrame     bool
	frameDraws  int
	lastDraws   int
	// indices submitted this frame and in the last completed one
	frameIndices int
	lastIndices  int
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{
		recorder: uniform.NewRecorder(),
	}
}

func (hb *HeadlessBackend) Initialize(appName string, appWidth, appHeight uint32) error {
	hb.appName = appName
	hb.width = appWidth
	hb.height = appHeight
	hb.frameNumber = 0
	core.LogInfo("headless renderer initialized for %s (%dx%d)", appName, appWidth, appHeight)
	return nil
}

func (hb *HeadlessBackend) Shutdown() error {
	hb.recorder.Reset()
	core.LogInfo("headless renderer shut down after %d frames", hb.frameNumber)
	return nil
}

func (hb *HeadlessBackend) Resized(width, height uint32) error {
	hb.width = width
	hb.height = height
	return nil
}

func (hb *HeadlessBackend) BeginFrame(deltaTime float64) error {
	if hb.inFrame {
		return fmt.Errorf("BeginFrame called twice without EndFrame")
	}
	hb.inFrame = true
	hb.frameDraws = 0
	hb.frameIndices = 0
	return nil
}

func (hb *HeadlessBackend) DrawGeometry(draw DrawCall) error {
	if !hb.inFrame {
		return fmt.Errorf("DrawGeometry(%s) called outside of a frame", draw.Name)
	}
	uniform.SetMatrix(hb.recorder, int32(draw.ID), draw.WVP)
	hb.frameDraws++
	hb.frameIndices += draw.Geometry.IndexCount()
	return nil
}

func (hb *HeadlessBackend) EndFrame(deltaTime float64) error {
	if !hb.inFrame {
		return fmt.Errorf("EndFrame called without BeginFrame")
	}
	hb.inFrame = false
	hb.lastDraws = hb.frameDraws
	hb.lastIndices = hb.frameIndices
	hb.frameNumber++
	return nil
}

func (hb *HeadlessBackend) FrameNumber() uint64 {
	return hb.frameNumber
}

// LastDrawCount is the number of draws in the last completed frame.
func (hb *HeadlessBackend) LastDrawCount() int {
	return hb.lastDraws
}

// LastIndexCount is the number of geometry indices drawn in the last
// completed frame.
func (hb *HeadlessBackend) LastIndexCount() int {
	return hb.lastIndices
}

func (hb *HeadlessBackend) Size() (uint32, uint32) {
	return hb.width, hb.height
}

// Recorder exposes the uploaded uniforms.
func (hb *HeadlessBackend) Recorder() *uniform.Recorder {
	return hb.recorder
}
