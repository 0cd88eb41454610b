package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	bytesPerFloat  = 4
	vertexStride   = floatsPerVertex * bytesPerFloat
	minBufferVerts = 1024
)

// VertexBuffer is a single dynamically sized VAO/VBO pair. The whole scene is
// rewritten every frame; the buffer only reallocates when it needs to grow.
type VertexBuffer struct {
	vao, vbo uint32
	capacity int // in vertices
	count    int // vertices in the last upload
}

// NewVertexBuffer allocates a buffer holding at least the given number of
// vertices.
func NewVertexBuffer(vertices int) *VertexBuffer {
	b := &VertexBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	// Attribute layout; see floatsPerVertex.
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(2*bytesPerFloat))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, vertexStride, gl.PtrOffset(4*bytesPerFloat))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, vertexStride, gl.PtrOffset(5*bytesPerFloat))

	b.allocate(grownCapacity(0, vertices))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

// allocate (re)creates the buffer's storage. The VBO must be bound.
func (b *VertexBuffer) allocate(capacity int) {
	gl.BufferData(gl.ARRAY_BUFFER, capacity*vertexStride, nil, gl.DYNAMIC_DRAW)
	b.capacity = capacity
}

// Upload replaces the buffer contents with the given interleaved vertices.
func (b *VertexBuffer) Upload(vertices []float32) {
	count := len(vertices) / floatsPerVertex
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if count > b.capacity {
		b.allocate(grownCapacity(b.capacity, count))
	}
	if count > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*bytesPerFloat, gl.Ptr(vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.count = count
}

// DrawRange draws count vertices (as triangles) starting at first.
func (b *VertexBuffer) DrawRange(first, count int) {
	if count <= 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	gl.BindVertexArray(0)
}

// Count returns the number of vertices last uploaded.
func (b *VertexBuffer) Count() int { return b.count }

// Capacity returns the number of vertices the buffer can hold without
// reallocating.
func (b *VertexBuffer) Capacity() int { return b.capacity }

// Cleanup releases the GPU resources.
func (b *VertexBuffer) Cleanup() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}

// grownCapacity doubles current (starting from minBufferVerts) until it holds
// need vertices.
func grownCapacity(current, need int) int {
	c := current
	if c < minBufferVerts {
		c = minBufferVerts
	}
	for c < need {
		c *= 2
	}
	return c
}
