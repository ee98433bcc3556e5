package yaaacd

// IntersectFunc is the narrow-phase predicate: it must return true iff
// the two closed triangles share at least one point in R3. The core
// imposes no robustness contract on it and passes triangles through
// unmodified, including degenerate ones.
type IntersectFunc func(a, b Triangle) bool

// PrimesIntersect scans the Cartesian product of a and b and returns true
// on the first pair for which intersect reports an intersection. The
// order of iteration is unspecified.
func PrimesIntersect(a, b []Triangle, intersect IntersectFunc) bool {
	for _, t1 := range a {
		for _, t2 := range b {
			if intersect(t1, t2) {
				return true
			}
		}
	}
	return false
}

// BruteforceCollides has identical semantics to PrimesIntersect but is
// exposed as a public reference baseline for testing acceleration
// structures against.
func BruteforceCollides(a, b []Triangle, intersect IntersectFunc) bool {
	return PrimesIntersect(a, b, intersect)
}
