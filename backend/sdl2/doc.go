// Package sdl2 provides a windowed gfxdemo.Platform on SDL2.
//
// The window is created with SDL_WINDOW_OPENGL, the surface is an
// accelerated SDL_Renderer with vsync, and the primitives are the
// SDL2_gfx calls (lineRGBA, circleRGBA, boxRGBA, ...). SDL's own error
// string (SDL_GetError/SDL_SetError) is the platform's last-error slot.
//
// SDL must be driven from the main OS thread. Call runtime.LockOSThread
// from an init function of package main before using the platform.
//
// The package needs cgo with the SDL2 and SDL2_gfx development libraries.
// Importing it registers the platform as "sdl".
package sdl2
