package main

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/orbs/internal/app"
)

// EventHandlers manages all event handling for the application.
type EventHandlers struct {
	application *app.App
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App) *EventHandlers {
	eh := &EventHandlers{
		application: application,
	}
	eh.SetupCallbacks(application.Window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action)
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.handleFramebufferSize(newW, newH) // for window resize
	})
}

// handleFramebufferSize handles window resize events. The orbs' bounds are
// only recomputed once resizing settles.
func (eh *EventHandlers) handleFramebufferSize(newW, newH int) {
	eh.application.HandleResize(newW, newH)
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyR:
		eh.handleRegenerateKey()
	case glfw.KeyP:
		paused := eh.application.Scene.TogglePause()
		log.Printf("Animation paused: %t", paused)
	case glfw.KeyEscape:
		eh.application.Window.SetShouldClose(true)
	}
}

// handleRegenerateKey replaces the palette and orbs with a new scene.
func (eh *EventHandlers) handleRegenerateKey() {
	if err := eh.application.Regenerate(); err != nil {
		log.Printf("Failed to regenerate scene: %v", err)
		return
	}
	log.Printf("Regenerated scene with seed %d", eh.application.Seed())
	printPalette(eh.application.Scene.Palette)
}
