//go:build yaaacd_debug

package yaaacd

import (
	"fmt"
	"math"
)

// assertFinite panics if any coordinate of v is NaN or +-Inf. Non-finite
// coordinates are a caller bug (spec's error-handling design treats them
// the same as empty input); this check only compiles into builds tagged
// yaaacd_debug so production builds pay nothing for it.
func assertFinite(v Vertex) {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) ||
		math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0) {
		panic(fmt.Sprintf("yaaacd: non-finite vertex coordinate: %+v", v))
	}
}
