// Package shadegen generates complete WGSL shader programs from a single
// 64-bit seed.
//
// A seed fully determines the output: the same seed always yields
// byte-identical shader text, so an artwork can be stored, shared and
// regenerated as one number. Generation grows a random mathematical
// expression tree for each color channel from fixed catalogs of primitive
// functions and terminal values, optionally wraps the result in a color
// mask, and serializes everything into a self-contained shader with a
// vertex stage, a 4-float uniform binding and a fragment stage.
//
// The caller owns everything graphical: acquiring a device and surface,
// compiling the emitted text, binding the uniform buffer and writing
// FrameUniforms into it once per frame.
//
// Example:
//
//	code := shadegen.Generate(shadegen.TimeSeed(time.Now()))
//	// hand code to a WebGPU pipeline...
package shadegen

import (
	"fmt"
	"strings"

	"github.com/genart-io/go-shadegen/rand"
)

// Options configures one generation call.
type Options struct {
	// Animate includes the two time-derived scalars in the terminal
	// catalog. When false the generated shader never reads the uniform
	// buffer and renders a still image.
	Animate bool
}

// DefaultOptions returns the options used by Generate.
func DefaultOptions() Options {
	return Options{Animate: true}
}

// Generate returns the shader program for seed with default options.
func Generate(seed uint64) string {
	return GenerateWith(seed, DefaultOptions())
}

// GenerateWith returns the shader program for seed. Identical (seed, opts)
// always yield byte-identical text.
func GenerateWith(seed uint64, opts Options) string {
	rng := rand.New(seed)

	// Two additive draws bias the depth toward the middle of the range;
	// depths between 6 and 12 tend to generate interesting images.
	maxDepth := rng.IntBetween(3, 7) + rng.IntBetween(3, 7)

	terminals := terminalValues
	if !opts.Animate {
		terminals = staticTerminalValues
	}

	stage := growStage(rng, maxDepth, terminals)
	stage = replaceConstants(rng, stage)

	return functionPreamble + stage
}

// growStage grows the four top-level expressions and splices them into the
// stage template.
func growStage(rng *rand.Rand, maxDepth int32, terminals []string) string {
	g := &grower{rng: rng, maxDepth: maxDepth, terminals: terminals}

	// The mask pattern is picked before tree growth. Its open slots join
	// the first pass behind the three channel roots, matching their order
	// of appearance in the stage text.
	var red, green, blue node
	mask := &node{pattern: rand.Element(rng, maskPatterns)}

	roots := []*node{&red, &green, &blue}
	roots = append(roots, mask.openSlots()...)
	g.grow(roots)

	return fmt.Sprintf(stageTemplate, red.String(), green.String(), blue.String(), mask.String())
}

// replaceConstants substitutes every constant token with a freshly drawn
// literal, left to right. Literals render with fixed six-decimal precision
// so the text is byte-stable across platforms.
func replaceConstants(rng *rand.Rand, text string) string {
	if !strings.ContainsRune(text, constToken) {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == constToken {
			fmt.Fprintf(&sb, "%.6ff", rng.FloatO())
			continue
		}
		sb.WriteByte(text[i])
	}
	return sb.String()
}
