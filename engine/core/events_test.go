package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEvents(t *testing.T) {
	t.Helper()
	require.True(t, EventInitialize())
	t.Cleanup(func() { _ = EventShutdown() })
}

func TestEventRegisterAndFire(t *testing.T) {
	withEvents(t)
	assert.False(t, EventInitialize(), "already initialized")

	var got []uint32
	listenerA, listenerB := new(int), new(int)
	onResize := func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
		got = append(got, data.Data.U32[0])
		return false
	}

	require.True(t, EventRegister(EVENT_CODE_RESIZED, listenerA, onResize))
	require.True(t, EventRegister(EVENT_CODE_RESIZED, listenerB, onResize))
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, listenerA, onResize), "duplicate listener")

	ctx := EventContext{}
	ctx.Data.U32[0] = 800
	assert.False(t, EventFire(EVENT_CODE_RESIZED, nil, ctx))
	assert.Equal(t, []uint32{800, 800}, got)

	assert.True(t, EventUnregister(EVENT_CODE_RESIZED, listenerA))
	assert.False(t, EventUnregister(EVENT_CODE_RESIZED, listenerA))
	EventFire(EVENT_CODE_RESIZED, nil, ctx)
	assert.Len(t, got, 3)

	assert.False(t, EventFire(EVENT_CODE_APPLICATION_QUIT, nil, EventContext{}), "nobody listens")
}

func TestEventHandledStopsPropagation(t *testing.T) {
	withEvents(t)

	calls := 0
	handler := func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
		calls++
		return true
	}
	EventRegister(EVENT_CODE_APPLICATION_QUIT, 1, handler)
	EventRegister(EVENT_CODE_APPLICATION_QUIT, 2, handler)

	assert.True(t, EventFire(EVENT_CODE_APPLICATION_QUIT, nil, EventContext{}))
	assert.Equal(t, 1, calls)
}

func TestEventPostIsDeliveredOnDispatch(t *testing.T) {
	withEvents(t)

	var paths []string
	EventRegister(EVENT_CODE_SCENE_RELOADED, nil, func(code SystemEventCode, sender, listener interface{}, data EventContext) bool {
		paths = append(paths, data.Data.C[0])
		assert.Equal(t, "payload", data.Payload)
		return true
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := EventContext{Payload: "payload"}
			ctx.Data.C[0] = "scene.toml"
			assert.NoError(t, EventPost(EVENT_CODE_SCENE_RELOADED, nil, ctx))
		}()
	}
	wg.Wait()

	assert.Empty(t, paths, "nothing is delivered before dispatch")
	assert.Equal(t, 4, EventDispatchPending())
	assert.Len(t, paths, 4)
	assert.Equal(t, 0, EventDispatchPending())
}

func TestEventsBeforeInitialize(t *testing.T) {
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, nil, nil))
	assert.False(t, EventFire(EVENT_CODE_RESIZED, nil, EventContext{}))
	assert.ErrorIs(t, EventPost(EVENT_CODE_RESIZED, nil, EventContext{}), ErrEngineNotInitialized)
	assert.Equal(t, 0, EventDispatchPending())
}

func TestIdentifier(t *testing.T) {
	a, b := "a", "b"
	idA := IdentifierAcquireNewID(a)
	idB := IdentifierAcquireNewID(b)
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, b, IdentifierOwner(idB))

	require.NoError(t, IdentifierReleaseID(idA))
	assert.Nil(t, IdentifierOwner(idA))

	// the freed slot is reused
	assert.Equal(t, idA, IdentifierAcquireNewID("c"))

	assert.Error(t, IdentifierReleaseID(1<<20))
	require.NoError(t, IdentifierReleaseID(idA))
	require.NoError(t, IdentifierReleaseID(idB))
}
