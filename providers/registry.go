// Package providers maintains the registry of remote-service providers.
// Provider packages register themselves in init; importing a provider
// package for side effects makes it available by name.
package providers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/BaconStrps/go-gpt/core"
)

// Factory creates a provider from an API key.
type Factory func(apiKey string) core.Provider

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register makes a provider factory available under the given name.
// It panics if the name is empty or already registered; registration
// happens at init time and a duplicate is a programming error.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()

	if name == "" {
		panic("providers: Register with empty name")
	}
	if factory == nil {
		panic("providers: Register with nil factory")
	}
	if _, dup := factories[name]; dup {
		panic(fmt.Sprintf("providers: Register called twice for %q", name))
	}
	factories[name] = factory
}

// New creates a provider by registered name.
func New(name, apiKey string) (core.Provider, error) {
	mu.RLock()
	factory, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown provider %q (registered: %v)", name, List())
	}
	return factory(apiKey), nil
}

// List returns the registered provider names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
