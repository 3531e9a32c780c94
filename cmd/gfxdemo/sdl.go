//go:build !nosdl

package main

import (
	"runtime"

	"github.com/gogpu/gfxdemo/backend/sdl2"
)

// SDL must run on the main OS thread.
func init() {
	runtime.LockOSThread()
	defaultBackend = sdl2.PlatformSDL
}
