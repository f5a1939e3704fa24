package core

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/ogltech/engine/containers"
)

type EventContext struct {
	Data struct {
		U32 [4]uint32
		F32 [4]float32
		C   [4]string
	}
	// Payload carries values that do not fit the fixed slots, such as a
	// freshly loaded scene.
	Payload interface{}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// Resized/resolution changed.
	/* Context usage:
	 * u32 width = data.Data.U32[0];
	 * u32 height = data.Data.U32[1];
	 */
	EVENT_CODE_RESIZED SystemEventCode = 0x08

	// A watched scene file was reloaded.
	/* Context usage:
	 * path = data.Data.C[0];
	 * scene = data.Payload;
	 */
	EVENT_CODE_SCENE_RELOADED SystemEventCode = 0x09

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

// Events posted from other goroutines wait here until the main loop drains them.
const MAX_PENDING_EVENTS = 256

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listener interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type pendingEvent struct {
	code    SystemEventCode
	sender  interface{}
	context EventContext
}

// State structure.
type eventSystemState struct {
	// Lookup table for event codes.
	registered map[SystemEventCode][]registeredEvent
	pending    *containers.RingQueue[pendingEvent]
}

/**
 * Event system internal state.
 */
var eventMutex sync.Mutex
var eventState *eventSystemState = nil

func EventInitialize() bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[SystemEventCode][]registeredEvent),
		pending:    containers.NewRingQueue[pendingEvent](MAX_PENDING_EVENTS),
	}
	return true
}

// EventShutdown drops every registration and any undelivered event.
func EventShutdown() error {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	eventState = nil
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listener/callback combos will not be registered again and will cause this to return FALSE.
 * @param code The event code to listen for.
 * @param listener A pointer to a listener instance. Can be nil.
 * @param onEvent The callback function to be invoked when the event code is fired.
 * @returns TRUE if the event is successfully registered; otherwise false.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	if eventState == nil || code < 0 || code >= MAX_MESSAGE_CODES {
		return false
	}
	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns FALSE.
 */
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	if eventState == nil {
		return false
	}
	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	// Not found.
	return false
}

/**
 * Fires an event to listeners of the given code on the calling goroutine. If an
 * event handler returns TRUE, the event is considered handled and is not passed
 * on to any more listeners.
 * @returns TRUE if handled, otherwise FALSE.
 */
func EventFire(code SystemEventCode, sender interface{}, context EventContext) bool {
	eventMutex.Lock()
	if eventState == nil {
		eventMutex.Unlock()
		return false
	}
	// listeners may register or unregister while handling
	events := append([]registeredEvent(nil), eventState.registered[code]...)
	eventMutex.Unlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

// EventPost queues an event for the next EventDispatchPending call. It is safe
// to call from any goroutine.
func EventPost(code SystemEventCode, sender interface{}, context EventContext) error {
	eventMutex.Lock()
	defer eventMutex.Unlock()

	if eventState == nil {
		return fmt.Errorf("event %d posted before EventInitialize: %w", code, ErrEngineNotInitialized)
	}
	return eventState.pending.Enqueue(pendingEvent{code: code, sender: sender, context: context})
}

// EventDispatchPending fires every queued event in posting order and returns
// how many were delivered.
func EventDispatchPending() int {
	eventMutex.Lock()
	if eventState == nil {
		eventMutex.Unlock()
		return 0
	}
	events := make([]pendingEvent, 0, eventState.pending.Len())
	for !eventState.pending.IsEmpty() {
		e, _ := eventState.pending.Dequeue()
		events = append(events, e)
	}
	eventMutex.Unlock()

	for _, e := range events {
		EventFire(e.code, e.sender, e.context)
	}
	return len(events)
}
