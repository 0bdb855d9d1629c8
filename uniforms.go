package shadegen

import "math"

// FrameUniforms assembles the per-frame uniform payload a renderer writes
// into the shader's 4-float buffer. The generated fragment stage reads the
// first two floats as slow sine and cosine transition alphas on [0, 1];
// the remaining two are padding. elapsed is in seconds since program
// start.
func FrameUniforms(elapsed float64) [4]float32 {
	sinTime := float32(0.5 + 0.5*math.Sin(0.5*elapsed))
	cosTime := float32(0.5 + 0.5*math.Cos(0.5*elapsed))
	return [4]float32{sinTime, cosTime, 0, 0}
}
