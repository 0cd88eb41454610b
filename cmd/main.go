package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/orbs/internal/app"
	"github.com/irfansharif/orbs/internal/noise"
	"github.com/irfansharif/orbs/internal/palette"
	"github.com/irfansharif/orbs/internal/render"
	"github.com/irfansharif/orbs/internal/scene"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	orbCount      = flag.Int("orbs", scene.DefaultOrbCount, "number of orbs")
	noiseName     = flag.String("noise", noise.Simplex, "noise source driving the orbs (simplex or perlin)")
	reducedMotion = flag.Bool("reduced-motion", false, "draw a single static frame instead of animating")
	width         = flag.Int("width", 164, "initial window width")
	height        = flag.Int("height", 164, "initial window height")
	maskFraction  = flag.Float64("mask", scene.DefaultMaskFraction, "fraction of the window covered by the mask")
	grain         = flag.Float64("grain", render.DefaultGrain, "film grain amount (0 disables)")
	saturation    = flag.Float64("saturation", 1, "color matrix saturation (1 leaves colors unchanged)")
)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("ORBS_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(fps float64, avgFrameTime float64, seed int64, paused bool, renderStats render.Stats) string {
	state := ""
	if paused {
		state = ", paused"
	}
	return fmt.Sprintf("Orbs (seed %d%s, %.1f FPS, %.2fms/frame, %d vertices)",
		seed, state, fps, avgFrameTime, renderStats.Vertices)
}

func main() {
	flag.Parse()

	opts := scene.Options{
		Seed:          seed(),
		Orbs:          *orbCount,
		Noise:         *noiseName,
		ReducedMotion: *reducedMotion || os.Getenv("ORBS_REDUCED_MOTION") == "1",
		MaskFraction:  *maskFraction,
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(*width, *height, "Orbs", nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // the animation steps once per frame, so pace it by vsync

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	renderOpts := render.DefaultOptions()
	renderOpts.Grain = *grain
	if *saturation != 1 {
		renderOpts.ColorMatrix = render.SaturationColorMatrix(float32(*saturation))
	}
	renderer := render.NewRenderer(renderOpts)
	defer renderer.Cleanup()

	cw, ch := window.GetFramebufferSize()
	application, err := app.NewApp(window, renderer, app.NewView(cw, ch), opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	printPalette(application.Scene.Palette)

	// Initialize event handlers.
	NewEventHandlers(application)

	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !application.Window.ShouldClose() {
		frameStart := time.Now()

		application.Frame()

		w, h := application.Window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		application.Renderer.Draw()
		application.Window.SwapBuffers()
		glfw.PollEvents()

		frameTime := time.Since(frameStart).Seconds() * 1000.0 // ms
		frameTimeSum += frameTime

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := frameTimeSum / float64(frameCount)
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			renderStats := application.Renderer.Stats()
			application.Window.SetTitle(
				makeTitle(fps, avgFrameTime, application.Seed(), application.Scene.Paused(), renderStats),
			)

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%.2f ms/frame)", fps, avgFrameTime)
			runtimeLogger.Printf("Geometry:       %d orbs, %d vertices (buffer holds %d)", len(application.Scene.Orbs), renderStats.Vertices, renderStats.BufferCapacity)
			runtimeLogger.Printf("Render time:    %.2f µs (last draw), %.2f ms (last prepare)", renderStats.LastDrawTimeUs, renderStats.LastPrepareTimeMs)
			for i, orb := range application.Scene.Orbs {
				runtimeLogger.Printf("Orb %d:          %s", i, orb)
			}
			runtimeLogger.Println("==============================")
		}
	}
}

func seed() int64 {
	seedStr := os.Getenv("ORBS_SEED")
	now := time.Now().Unix()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid ORBS_SEED value '%s': %v", seedStr, err)
	}
	return seed
}

// printPalette writes the palette swatches to stdout when ORBS_DEBUG_PALETTE
// is set.
func printPalette(p palette.Palette) {
	if os.Getenv("ORBS_DEBUG_PALETTE") != "1" {
		return
	}
	fmt.Print(palette.Swatches(p))
}
