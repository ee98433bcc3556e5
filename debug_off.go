//go:build !yaaacd_debug

package yaaacd

// assertFinite is a no-op in production builds; see debug.go for the
// yaaacd_debug-tagged check.
func assertFinite(Vertex) {}
