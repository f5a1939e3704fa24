package core

import (
	"fmt"
	"sync"
)

var identifierMutex sync.Mutex
var owners []interface{}

// IdentifierAcquireNewID hands out the lowest free id and records its owner.
func IdentifierAcquireNewID(owner interface{}) uint32 {
	identifierMutex.Lock()
	defer identifierMutex.Unlock()

	for i := range owners {
		// Existing free spot. Take it.
		if owners[i] == nil {
			owners[i] = owner
			return uint32(i)
		}
	}

	// If here, no existing free slots. Need a new id, so push one.
	owners = append(owners, owner)
	return uint32(len(owners) - 1)
}

// IdentifierOwner returns whoever holds id, or nil.
func IdentifierOwner(id uint32) interface{} {
	identifierMutex.Lock()
	defer identifierMutex.Unlock()

	if int(id) >= len(owners) {
		return nil
	}
	return owners[id]
}

func IdentifierReleaseID(id uint32) error {
	identifierMutex.Lock()
	defer identifierMutex.Unlock()

	if int(id) >= len(owners) {
		return fmt.Errorf("identifier_release_id: id '%d' out of range (max=%d). Nothing was done", id, len(owners))
	}

	// Just zero out the entry, making it available for use.
	owners[id] = nil
	return nil
}
