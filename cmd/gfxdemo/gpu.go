//go:build gpu

package main

import _ "github.com/gogpu/gg/gpu" // Register gg's GPU accelerator for the raster platform
