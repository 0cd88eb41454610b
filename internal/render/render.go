// Package render handles the visual presentation of the orbs.
//
// It takes a Scene (background, mask and orb discs in screen coordinates)
// and:
// 1. Triangulates the background, the mask and each orb's disc.
// 2. Uploads the vertices to a single dynamic buffer.
// 3. Draws the background, then the mask and orbs clipped to the mask box,
//    with soft orb edges, film grain and a color matrix applied per fragment.
package render

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/orbs/internal/geom"
)

// DefaultGrain is the amount of film grain added to every fragment.
const DefaultGrain = 0.05

// Options configures a Renderer.
type Options struct {
	Segments    int         // disc polygon edges, DefaultSegments if zero
	BlurRadius  float64     // soft edge width in pixels, DefaultBlurRadius if zero
	Grain       float64     // grain amount, 0 disables
	ColorMatrix ColorMatrix // post-process color transform
}

// DefaultOptions returns the options matching the original look.
func DefaultOptions() Options {
	return Options{
		Segments:    DefaultSegments,
		BlurRadius:  DefaultBlurRadius,
		Grain:       DefaultGrain,
		ColorMatrix: IdentityColorMatrix(),
	}
}

type Renderer struct {
	w, h int
	opts Options

	shaderManager *ShaderManager
	buffer        *VertexBuffer

	backgroundVertices int
	mask               geom.Box
	frame              uint64 // reseeds the grain
	stats              Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastPrepareTimeMs float64 // time spent in last Prepare() call in milliseconds
	LastDrawTimeUs    float64 // time spent in last Draw() call in microseconds
	Vertices          int     // vertices drawn per frame
	BufferCapacity    int     // vertices the GPU buffer can hold
}

// NewRenderer compiles the shaders and allocates the vertex buffer. It
// requires a current GL context.
func NewRenderer(opts Options) *Renderer {
	if opts.Segments < 3 {
		opts.Segments = DefaultSegments
	}
	if opts.BlurRadius <= 0 {
		opts.BlurRadius = DefaultBlurRadius
	}
	if opts.ColorMatrix == (ColorMatrix{}) {
		opts.ColorMatrix = IdentityColorMatrix()
	}

	r := &Renderer{
		opts:          opts,
		shaderManager: NewShaderManager(),
		buffer:        NewVertexBuffer(0),
	}
	r.shaderManager.SetColorMatrix(opts.ColorMatrix)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return r
}

func (r *Renderer) SetView(w, h int) {
	r.w, r.h = w, h
}

// Prepare regenerates and uploads the scene geometry. It's called every
// frame the orbs move.
func (r *Renderer) Prepare(scene Scene) error {
	startTime := time.Now()

	if r.w <= 0 || r.h <= 0 {
		return fmt.Errorf("cannot prepare renderer: invalid viewport dimensions %dx%d", r.w, r.h)
	}

	g, err := buildSceneVertices(scene, r.opts.Segments, r.opts.BlurRadius)
	if err != nil {
		return fmt.Errorf("building scene geometry: %w", err)
	}
	r.buffer.Upload(g.vertices)
	r.backgroundVertices = g.backgroundVertices
	r.mask = scene.Mask

	r.stats.Vertices = g.vertexCount()
	r.stats.BufferCapacity = r.buffer.Capacity()
	r.stats.LastPrepareTimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0
	return nil
}

func (r *Renderer) Draw() {
	startTime := time.Now()

	r.shaderManager.SetTransform(r.computeTransformMatrix())
	r.frame++
	r.shaderManager.SetGrain(float32(r.opts.Grain), float32(r.frame%1024))

	// Background, unmasked.
	r.buffer.DrawRange(0, r.backgroundVertices)

	// Mask and orbs, clipped to the mask box. GL's scissor origin is the
	// bottom-left corner.
	x, y, w, h := scissorRect(r.mask, r.h)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
	r.buffer.DrawRange(r.backgroundVertices, r.buffer.Count()-r.backgroundVertices)
	gl.Disable(gl.SCISSOR_TEST)

	// Record draw time.
	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Cleanup releases GPU resources.
func (r *Renderer) Cleanup() {
	r.buffer.Cleanup()
	r.shaderManager.Cleanup()
}

// computeTransformMatrix computes the transformation matrix from screen
// coordinates to OpenGL NDC.
func (r *Renderer) computeTransformMatrix() [16]float32 {
	return geom.ScreenToNDC(float64(r.w), float64(r.h)).Matrix4()
}

// scissorRect converts a top-left-origin box to GL scissor arguments for a
// viewport of the given height.
func scissorRect(box geom.Box, viewportHeight int) (x, y, w, h int32) {
	return int32(box.X), int32(float64(viewportHeight) - box.Y - box.H), int32(box.W), int32(box.H)
}
