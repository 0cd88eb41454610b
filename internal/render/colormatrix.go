package render

// ColorMatrix is a 4x4 RGBA color transform plus offset, applied to every
// fragment after grain: out = M*in + Offset.
type ColorMatrix struct {
	M      [4][4]float32 // row-major
	Offset [4]float32
}

// Luminance weights used for desaturation.
const (
	lumR = 0.3086
	lumG = 0.6094
	lumB = 0.0820
)

// IdentityColorMatrix leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{M: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// SaturationColorMatrix scales saturation by s: 0 is grayscale, 1 is the
// identity, values above 1 oversaturate.
func SaturationColorMatrix(s float32) ColorMatrix {
	sr := (1 - s) * lumR
	sg := (1 - s) * lumG
	sb := (1 - s) * lumB
	return ColorMatrix{M: [4][4]float32{
		{sr + s, sg, sb, 0},
		{sr, sg + s, sb, 0},
		{sr, sg, sb + s, 0},
		{0, 0, 0, 1},
	}}
}

// Apply transforms a single RGBA color (components in [0, 1]) on the CPU.
// It mirrors the fragment shader's uColorMatrix step, without the final
// clamp, and is the reference the matrices are checked against.
func (m ColorMatrix) Apply(c [4]float32) [4]float32 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = m.Offset[i]
		for j := 0; j < 4; j++ {
			out[i] += m.M[i][j] * c[j]
		}
	}
	return out
}
