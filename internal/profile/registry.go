package profile

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Profile)
	registryMu sync.RWMutex
)

// Register adds a profile to the registry.
// Panics if a profile with the same key is already registered.
func Register(p Profile) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[p.Key]; exists {
		panic(fmt.Sprintf("profile already registered: %s", p.Key))
	}
	registry[p.Key] = p
}

// Get returns a profile by key.
// Returns false if not found.
func Get(key string) (Profile, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[key]
	return p, ok
}

// All returns all registered profiles.
// Sorted by agency then by key for consistent ordering.
func All() []Profile {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Profile, 0, len(registry))
	for _, p := range registry {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Agency != result[j].Agency {
			return result[i].Agency < result[j].Agency
		}
		return result[i].Key < result[j].Key
	})

	return result
}

// Keys returns the sorted keys of all registered profiles.
func Keys() []string {
	all := All()
	keys := make([]string, len(all))
	for i, p := range all {
		keys[i] = p.Key
	}
	return keys
}
