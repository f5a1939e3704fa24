package core

import (
	"errors"
)

var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrUnknownParent        = errors.New("placement references an unknown parent")
	ErrDuplicatePlacement   = errors.New("duplicate placement name")
	ErrParentCycle          = errors.New("placement parent chain forms a cycle")
	ErrWatcherClosed        = errors.New("watcher instance already closed")
	ErrEngineNotInitialized = errors.New("engine is not initialized")
	ErrDegenerateInput      = errors.New("degenerate numeric input")
	ErrUnknown              = errors.New("unknown")
)
