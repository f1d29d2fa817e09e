package census

import (
	"fmt"
	"sort"
	"sync"
)

// Loader builds a collection from one census file of a country.
type Loader interface {
	Load(path, expectedHeader string, schema Schema) (Collection, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path, expectedHeader string, schema Schema) (Collection, error)

// Load calls f.
func (f LoaderFunc) Load(path, expectedHeader string, schema Schema) (Collection, error) {
	return f(path, expectedHeader, schema)
}

var (
	registry   = make(map[Country]Loader)
	registryMu sync.RWMutex
)

// Register wires a loader for a country.
// Panics if the country already has a loader.
func Register(country Country, loader Loader) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[country]; exists {
		panic(fmt.Sprintf("census loader already registered: %s", country))
	}
	registry[country] = loader
}

// Lookup returns the loader for a country.
// Returns false if none is registered.
func Lookup(country Country) (Loader, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	loader, ok := registry[country]
	return loader, ok
}

// Supported returns the countries that have a loader, in declaration order.
func Supported() []Country {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Country, 0, len(registry))
	for c := range registry {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
