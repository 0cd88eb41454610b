package render

import (
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderManager handles OpenGL shader program compilation, linking, and uniform
// management.
type ShaderManager struct {
	program      uint32 // program ID
	uTransform   int32  // screen -> NDC matrix
	uGrain       int32  // grain amount
	uSeed        int32  // per-frame grain seed
	uColorMatrix int32  // post-process color matrix
	uColorOffset int32  // post-process color offset
}

// Vertex shader. Applies the uniform transformation matrix to the vertices
// and forwards the disc-local coordinates, edge softness and color.
const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aLocal;
layout (location = 2) in float aSoft;
layout (location = 3) in vec4 aColor;

uniform mat4 uTransform;

out vec2 vLocal;
out float vSoft;
out vec4 vColor;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vLocal = aLocal;
    vSoft = aSoft;
    vColor = aColor;
}
` + "\x00"

// Fragment shader. Fades disc edges out over the last vSoft of their radius
// (the blur), then adds grain and applies the color matrix.
const fragmentShaderSource = `
#version 330 core
in vec2 vLocal;
in float vSoft;
in vec4 vColor;
out vec4 FragColor;

uniform float uGrain;
uniform float uSeed;
uniform mat4 uColorMatrix;
uniform vec4 uColorOffset;

float hash(vec2 p) {
    return fract(sin(dot(p, vec2(12.9898, 78.233)) + uSeed) * 43758.5453);
}

void main() {
    float edge = 1.0;
    if (vSoft > 0.0) {
        edge = 1.0 - smoothstep(1.0 - vSoft, 1.0, length(vLocal));
    }
    vec4 c = vec4(vColor.rgb, vColor.a * edge);
    c.rgb += (hash(gl_FragCoord.xy) - 0.5) * uGrain;
    FragColor = clamp(uColorMatrix * c + uColorOffset, 0.0, 1.0);
}
` + "\x00"

// NewShaderManager creates and initializes a new shader manager with compiled
// and linked shaders.
func NewShaderManager() *ShaderManager {
	sm := &ShaderManager{}

	// Create and compile shaders.
	vertexShader := sm.compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	defer gl.DeleteShader(vertexShader)

	fragmentShader := sm.compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	defer gl.DeleteShader(fragmentShader)

	// Link shader program.
	sm.program = gl.CreateProgram()
	gl.AttachShader(sm.program, vertexShader)
	gl.AttachShader(sm.program, fragmentShader)
	gl.LinkProgram(sm.program)

	// Check linking status.
	var status int32
	gl.GetProgramiv(sm.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(sm.program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(sm.program, logLength, nil, gl.Str(logText))
		log.Fatalf("Shader linking failed: %s", logText)
	}

	sm.uTransform = sm.uniform("uTransform")
	sm.uGrain = sm.uniform("uGrain")
	sm.uSeed = sm.uniform("uSeed")
	sm.uColorMatrix = sm.uniform("uColorMatrix")
	sm.uColorOffset = sm.uniform("uColorOffset")
	gl.UseProgram(sm.program) // bind the shader program
	return sm
}

func (sm *ShaderManager) uniform(name string) int32 {
	return gl.GetUniformLocation(sm.program, gl.Str(name+"\x00"))
}

// SetTransform sets the uniform transformation matrix.
func (sm *ShaderManager) SetTransform(matrix [16]float32) {
	gl.UniformMatrix4fv(sm.uTransform, 1, false, &matrix[0])
}

// SetGrain sets the grain amount and the seed it's hashed with.
func (sm *ShaderManager) SetGrain(amount, seed float32) {
	gl.Uniform1f(sm.uGrain, amount)
	gl.Uniform1f(sm.uSeed, seed)
}

// SetColorMatrix uploads the post-process color matrix. The matrix is stored
// row-major, so GL transposes it on upload.
func (sm *ShaderManager) SetColorMatrix(m ColorMatrix) {
	gl.UniformMatrix4fv(sm.uColorMatrix, 1, true, &m.M[0][0])
	gl.Uniform4f(sm.uColorOffset, m.Offset[0], m.Offset[1], m.Offset[2], m.Offset[3])
}

// Cleanup deletes the shader program.
func (sm *ShaderManager) Cleanup() {
	gl.DeleteProgram(sm.program)
}

// compileShader compiles a single shader from source.
func (sm *ShaderManager) compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	// Check compilation status.
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		log.Fatalf("Shader compilation failed: %s", logText)
	}

	return shader
}
