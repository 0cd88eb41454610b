package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/irfansharif/orbs/internal/geom"
)

const (
	// floatsPerVertex is the interleaved vertex layout:
	// position (2), disc-local coordinates (2), edge softness (1), RGBA (4).
	floatsPerVertex = 9

	// DefaultSegments is how many edges each orb's disc polygon has.
	DefaultSegments = 64
	// DefaultBlurRadius is how far (in pixels) an orb's edge fades out to
	// either side of its radius.
	DefaultBlurRadius = 18.0
	// OrbAlpha is the opacity every orb is drawn with.
	OrbAlpha = 0.825
)

// OrbRenderData holds rendering information for a single orb.
type OrbRenderData struct {
	Center geom.Point
	Radius float64 // base radius, before scaling
	Scale  float64
	Fill   color.RGBA
}

// Scene is everything drawn in a frame, in screen coordinates.
type Scene struct {
	Viewport   geom.Box
	Background color.RGBA // fills the whole viewport
	Mask       geom.Box   // orbs are only visible within the mask
	MaskFill   color.RGBA // fills the mask, beneath the orbs
	Orbs       []OrbRenderData
}

// sceneGeometry is the vertex data for a scene, split into the part drawn
// unmasked (the background) and the part clipped to the mask.
type sceneGeometry struct {
	vertices           []float32
	backgroundVertices int // leading vertices drawn without the mask
}

func (g sceneGeometry) vertexCount() int { return len(g.vertices) / floatsPerVertex }

// buildSceneVertices generates the vertex data for a scene.
func buildSceneVertices(scene Scene, segments int, blurRadius float64) (sceneGeometry, error) {
	estimate := (6*2 + 3*(segments-2)*len(scene.Orbs)) * floatsPerVertex
	g := sceneGeometry{vertices: make([]float32, 0, estimate)}

	if err := appendBox(&g.vertices, scene.Viewport, scene.Background); err != nil {
		return sceneGeometry{}, fmt.Errorf("background: %w", err)
	}
	g.backgroundVertices = g.vertexCount()

	if err := appendBox(&g.vertices, scene.Mask, scene.MaskFill); err != nil {
		return sceneGeometry{}, fmt.Errorf("mask: %w", err)
	}
	for i, orb := range scene.Orbs {
		if err := appendDisc(&g.vertices, orb, segments, blurRadius); err != nil {
			return sceneGeometry{}, fmt.Errorf("orb %d: %w", i, err)
		}
	}
	return g, nil
}

// appendBox appends two opaque, unsoftened triangles covering the box.
func appendBox(vertices *[]float32, box geom.Box, fill color.RGBA) error {
	corners := box.Corners()
	triangles, err := earClip(corners[:])
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		for _, p := range tri {
			appendVertex(vertices, p, geom.Point{}, 0, fill, 1)
		}
	}
	return nil
}

// appendDisc appends a triangulated disc for the orb. The disc extends
// blurRadius past the orb's scaled radius so the soft edge has room to fade.
func appendDisc(vertices *[]float32, orb OrbRenderData, segments int, blurRadius float64) error {
	radius := orb.Radius * orb.Scale
	outer := radius + blurRadius
	if !(outer > 0) {
		return fmt.Errorf("non-positive radius %v", outer)
	}
	softness := math.Min(1, 2*blurRadius/outer)

	triangles, err := earClip(discPolygon(orb.Center, outer, segments))
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		for _, p := range tri {
			local := p.Sub(orb.Center).Scale(1 / outer)
			appendVertex(vertices, p, local, softness, orb.Fill, OrbAlpha)
		}
	}
	return nil
}

// discPolygon returns a regular polygon approximating a circle.
func discPolygon(center geom.Point, radius float64, segments int) []geom.Point {
	points := make([]geom.Point, segments)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = geom.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return points
}

func appendVertex(vertices *[]float32, p, local geom.Point, softness float64, c color.RGBA, alpha float64) {
	*vertices = append(*vertices,
		float32(p.X), float32(p.Y),
		float32(local.X), float32(local.Y),
		float32(softness),
		float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0, float32(alpha),
	)
}
