package gfxdemo

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// PlatformConfig carries the settings a platform factory may use.
// Windowed platforms ignore the headless-only fields.
type PlatformConfig struct {
	// Context delivers a quit event once done (headless platforms).
	Context context.Context

	// Frames makes headless platforms deliver a quit event after this
	// many presented frames. Zero runs until Context is done, or quits on
	// the first poll when Context is nil.
	Frames int

	// Snapshot is a file the last presented frame is written to on
	// surface destruction (raster platform). The extension selects the
	// format.
	Snapshot string

	// Trace receives one line per recorded call (trace platform).
	Trace io.Writer

	// NoVSync presents frames without waiting for the display's vertical
	// sync (windowed platforms).
	NoVSync bool
}

// PlatformFactory creates a Platform from a configuration.
// Factories are registered via RegisterPlatform and called by NewPlatform.
type PlatformFactory func(cfg PlatformConfig) Platform

var (
	registryMu sync.RWMutex
	platforms  = make(map[string]PlatformFactory)
)

// RegisterPlatform registers a platform factory under name. It is
// typically called from init() in platform packages, following the
// database/sql driver pattern:
//
//	func init() {
//	    gfxdemo.RegisterPlatform("sdl", func(gfxdemo.PlatformConfig) gfxdemo.Platform {
//	        return New()
//	    })
//	}
//
// RegisterPlatform panics if factory is nil or name is already registered.
func RegisterPlatform(name string, factory PlatformFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("gfxdemo: RegisterPlatform factory is nil")
	}
	if _, dup := platforms[name]; dup {
		panic("gfxdemo: RegisterPlatform called twice for " + name)
	}
	platforms[name] = factory
}

// UnregisterPlatform removes a platform from the registry.
// It is primarily useful in tests.
func UnregisterPlatform(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(platforms, name)
}

// NewPlatform creates the platform registered under name.
// The error names the registered platforms, hinting at a forgotten import.
func NewPlatform(name string, cfg PlatformConfig) (Platform, error) {
	registryMu.RLock()
	factory, ok := platforms[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("gfxdemo: unknown platform %q (registered: %v; forgotten import?)", name, Platforms())
	}
	return factory(cfg), nil
}

// Platforms returns the sorted names of the registered platforms.
func Platforms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
