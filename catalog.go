package shadegen

import "strings"

// Symbols used inside catalog patterns: slotToken marks an argument that
// the grammar grows into a subexpression; constToken marks a literal
// numeric constant filled in after the tree is complete.
const (
	slotToken  = '&'
	constToken = '#'
)

// terminalValues are the patterns a slot can resolve to on the final
// passes: pixel coordinates, their complements, the two time-derived
// scalars, and the constant token. The constant token appears twice to
// double its selection weight.
var terminalValues = []string{
	"input.uv.x",
	"input.uv.y",
	"invX",
	"invY",
	"sinTime",
	"cosTime",
	"#",
	"#",
}

// staticTerminalValues is the catalog used for still images: identical to
// terminalValues minus the two time scalars, so the generated shader never
// reads the uniform buffer.
var staticTerminalValues = []string{
	"input.uv.x",
	"input.uv.y",
	"invX",
	"invY",
	"#",
	"#",
}

// functionPatterns are the primitive call patterns, arity 1-4. Several
// primitives whose output skews dark appear a second time wrapped in fInv
// to compensate the bias, and fWave appears twice to double its weight.
var functionPatterns = []string{
	"fInv(&)",
	"fSqr(&)",
	"fSqrt(&)",
	"fSmooth(&)",
	"fSharp(&)",
	"fAdd(&, &)",
	"fSub(&, &)",
	"fMul(&, &)",
	"fInv(fMul(&, &))",
	"fDiv(&, &)",
	"fAvg(&, &)",
	"fGeom(&, &)",
	"fHarm(&, &)",
	"fHypo(&, &)",
	"fInv(fHypo(&, &))",
	"fMax(&, &)",
	"fMin(&, &)",
	"fPow(&, &)",
	"fBell(&, &)",
	"fInv(fBell(&, &))",
	"fWave(&, &)",
	"fWave(&, &)",
	"fLerp(&, &, &)",
	"fMlerp(&, &, &)",
	"fDist(&, &, &, &)",
	"fDist(&, &, #, #)",
	"fDist(input.uv.x, input.uv.y, &, &)",
	"fDist(input.uv.x, input.uv.y, #, #)",
	"fInv(fDist(&, &, &, &))",
	"fInv(fDist(&, &, #, #))",
	"fInv(fDist(input.uv.x, input.uv.y, &, &))",
	"fInv(fDist(input.uv.x, input.uv.y, #, #))",
	"fDistLine(&, &, &, &)",
	"fDistLine(&, &, #, #)",
	"fDistLine(input.uv.x, input.uv.y, &, &)",
	"fDistLine(input.uv.x, input.uv.y, #, #)",
	"fInv(fDistLine(&, &, &, &))",
	"fInv(fDistLine(&, &, #, #))",
	"fInv(fDistLine(input.uv.x, input.uv.y, &, &))",
	"fInv(fDistLine(input.uv.x, input.uv.y, #, #))",
}

// maskPatterns wrap the assembled RGB vector. The identity mask appears
// three times so most seeds render unmasked.
var maskPatterns = []string{
	"rgb",
	"rgb",
	"rgb",
	"fAdd3(rgb, &)",
	"fSub3(rgb, &)",
	"fAdd3(fSub3(rgb, &), &)",
	"fSub3(fAdd3(rgb, &), &)",
	"fInv3(fAdd3(rgb, &))",
	"fInv3(fSub3(rgb, &))",
	"fInv3(fAdd3(fSub3(rgb, &), &))",
	"fInv3(fSub3(fAdd3(rgb, &), &))",
}

func init() {
	validateCatalogs()
}

// validateCatalogs checks the fixed tables once at startup. The catalogs
// are immutable, so a violation here is a build defect, not a runtime
// condition: panic instead of returning an error.
func validateCatalogs() {
	if len(terminalValues) == 0 || len(staticTerminalValues) == 0 ||
		len(functionPatterns) == 0 || len(maskPatterns) == 0 {
		panic("shadegen: empty catalog")
	}
	for _, p := range terminalValues {
		if strings.ContainsRune(p, slotToken) {
			panic("shadegen: terminal pattern has open slot: " + p)
		}
	}
	for _, p := range staticTerminalValues {
		if strings.ContainsRune(p, slotToken) {
			panic("shadegen: terminal pattern has open slot: " + p)
		}
	}
	for _, p := range functionPatterns {
		if n := strings.Count(p, string(slotToken)); n > 4 {
			panic("shadegen: function pattern arity above 4: " + p)
		}
	}
	for _, p := range maskPatterns {
		if n := strings.Count(p, string(slotToken)); n > 2 {
			panic("shadegen: mask pattern arity above 2: " + p)
		}
	}
}
