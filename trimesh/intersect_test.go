package trimesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yaaacd"
)

func tri(x0, y0, z0, x1, y1, z1, x2, y2, z2 float64) yaaacd.Triangle {
	return yaaacd.NewTriangle(
		yaaacd.NewVertex(x0, y0, z0),
		yaaacd.NewVertex(x1, y1, z1),
		yaaacd.NewVertex(x2, y2, z2),
	)
}

func TestIntersects_SharedVertex(t *testing.T) {
	a := tri(0, 0, 0, 1, 0, 0, 0, 1, 0)
	b := tri(0, 0, 0, -1, 0, 0, 0, -1, 0)
	require.True(t, Intersects(a, b))
}

func TestIntersects_Piercing(t *testing.T) {
	a := tri(-1, -1, 0, 1, -1, 0, 0, 1, 0)
	b := tri(0, 0, -1, 0, 0, 1, 0.5, 0, 0)
	require.True(t, Intersects(a, b))
}

func TestIntersects_Disjoint(t *testing.T) {
	a := tri(0, 0, 0, 1, 0, 0, 0, 1, 0)
	b := tri(10, 10, 10, 11, 10, 10, 10, 11, 10)
	require.False(t, Intersects(a, b))
}

func TestIntersects_ParallelPlanesDisjoint(t *testing.T) {
	a := tri(0, 0, 0, 1, 0, 0, 0, 1, 0)
	b := tri(0, 0, 1, 1, 0, 1, 0, 1, 1)
	require.False(t, Intersects(a, b))
}

func TestIntersects_CoplanarOverlapping(t *testing.T) {
	a := tri(0, 0, 0, 2, 0, 0, 0, 2, 0)
	b := tri(1, 1, 0, 3, 1, 0, 1, 3, 0)
	require.True(t, Intersects(a, b))
}

func TestIntersects_CoplanarDisjoint(t *testing.T) {
	a := tri(0, 0, 0, 1, 0, 0, 0, 1, 0)
	b := tri(5, 5, 0, 6, 5, 0, 5, 6, 0)
	require.False(t, Intersects(a, b))
}

func TestIntersects_CoplanarOneInsideOther(t *testing.T) {
	a := tri(0, 0, 0, 10, 0, 0, 0, 10, 0)
	b := tri(1, 1, 0, 2, 1, 0, 1, 2, 0)
	require.True(t, Intersects(a, b))
	require.True(t, Intersects(b, a))
}

func TestIntersects_Symmetric(t *testing.T) {
	a := tri(-1, -1, 0, 1, -1, 0, 0, 1, 0)
	b := tri(0, 0, -1, 0, 0, 1, 0.5, 0, 0)
	require.Equal(t, Intersects(a, b), Intersects(b, a))
}

func TestIntersects_DegenerateTrianglePassesThrough(t *testing.T) {
	degenerate := tri(0, 0, 0, 1, 0, 0, 2, 0, 0)
	other := tri(0.5, -1, 0, 0.5, 1, 0, 0.5, 0, 1)
	require.NotPanics(t, func() {
		Intersects(degenerate, other)
	})
}
