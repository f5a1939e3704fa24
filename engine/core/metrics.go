package core

const AVG_COUNT uint8 = 30

// FrameMetrics keeps a rolling average of frame times and a per-second FPS count.
type FrameMetrics struct {
	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

// Update records one frame that took frameElapsedTime seconds.
func (fm *FrameMetrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	fm.msTimes[fm.frameAVGCounter] = frameMS
	if fm.frameAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += fm.msTimes[i]
		}
		fm.msAvg = sum / float64(AVG_COUNT)
	}
	fm.frameAVGCounter++
	fm.frameAVGCounter %= AVG_COUNT

	// Calculate frames per second.
	fm.accumulatedFrameMS += frameMS
	fm.frames++
	if fm.accumulatedFrameMS > 1000 {
		fm.fps = float64(fm.frames)
		fm.accumulatedFrameMS -= 1000
		fm.frames = 0
	}
}

func (fm *FrameMetrics) FPS() float64 {
	return fm.fps
}

func (fm *FrameMetrics) FrameTime() float64 {
	return fm.msAvg
}

func (fm *FrameMetrics) Frame() (float64, float64) {
	return fm.fps, fm.msAvg
}
