// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Command cubelight renders a small lit scene: a checkered floor, a field
// of instanced cubes and a point light, drawn into a multisampled HDR
// target and tonemapped to the screen. It exists to show off uniform
// buffer driven transforms, instanced rendering and offscreen
// multisampling in a single readable program.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and OpenGL calls have to stay on the startup thread
	runtime.LockOSThread()
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// create the render system and initialize it
	renderSystem := NewRenderSystem(log)
	err = renderSystem.Initialize(cfg)
	if err != nil {
		log.Error("failed to initialize the render system", "error", err)
		renderSystem.Shutdown()
		os.Exit(1)
	}
	defer renderSystem.Shutdown()

	// wire the keyboard and mouse up to the render state
	inputSystem := NewInputSystem(log)
	inputSystem.Initialize(renderSystem)

	// the main application loop
	lastFrame := time.Now()
	for !renderSystem.MainWindow.ShouldClose() {
		// calculate the difference in time to control movement speed
		thisFrame := time.Now()
		frameDelta := float32(thisFrame.Sub(lastFrame).Seconds())

		glfw.PollEvents()
		inputSystem.Update(frameDelta)

		if err = renderSystem.Update(frameDelta); err != nil {
			log.Error("failed to render a frame", "error", err)
			break
		}

		lastFrame = thisFrame
	}
}
