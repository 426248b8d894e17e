package module

import (
	"maps"
	"slices"
	"sync"
)

// process wide set of mounted modules, filled by the API at mount time
var (
	mu   sync.RWMutex
	mods = map[string]Module{}
)

// Register records m under its name, replacing an earlier module of that name
func Register(m Module) {
	mu.Lock()
	defer mu.Unlock()
	mods[m.Name()] = m
}

// Lookup finds a port of type T on the module registered as name
func Lookup[T any](name string) (T, bool) {
	mu.RLock()
	m, ok := mods[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return PortsOf[T](m)
}

// Names lists the registered module names in order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(mods))
}

// Reset empties the registry
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(mods)
}
