package xaction

import (
	"fmt"
	"sync"
)

var (
	defaultRegistry   *Registry
	defaultRegistryMu sync.Mutex
)

// Default returns the process-wide Registry, building a lenient one on first use.
func Default() *Registry {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()

	if defaultRegistry != nil {
		return defaultRegistry
	}

	r, err := NewRegistryBuilder().Build()
	if err != nil {
		panic(fmt.Sprintf("xaction: failed to initialize default registry: %v", err))
	}
	defaultRegistry = r
	return defaultRegistry
}

// SetDefault replaces the process-wide Registry.
func SetDefault(r *Registry) {
	if r == nil {
		panic("xaction: SetDefault called with nil Registry")
	}
	defaultRegistryMu.Lock()
	defaultRegistry = r
	defaultRegistryMu.Unlock()
}

// Define is the Facade for package-level declarations:
//
//	var Reset = xaction.Define("counter/reset")
//
// It panics if the default registry rejects the tag.
func Define(tag string) *Factory {
	return must(Register(Default(), tag))
}

// DefineData is Define for payload factories.
func DefineData[D any](tag string) *DataFactory[D] {
	return must(RegisterData[D](Default(), tag))
}

// DefineDataMeta is Define for payload+metadata factories.
func DefineDataMeta[D, M any](tag string) *DataMetaFactory[D, M] {
	return must(RegisterDataMeta[D, M](Default(), tag))
}

func must[F any](f F, err error) F {
	if err != nil {
		panic(fmt.Errorf("xaction: define: %w", err))
	}
	return f
}
