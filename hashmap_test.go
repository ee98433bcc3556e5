package yaaacd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSpatialHashMap_EmptyPanics(t *testing.T) {
	require.Panics(t, func() {
		NewSpatialHashMap(nil, 2)
	})
}

func TestSpatialHashMap_Collides_DisjointCubes(t *testing.T) {
	m := NewSpatialHashMap(gridTriangles(100, 0), 2)
	other := gridTriangles(100, 1000)
	require.False(t, m.Collides(other, boundingBoxIntersect))
}

func TestSpatialHashMap_Collides_OverlappingCubes(t *testing.T) {
	m := NewSpatialHashMap(gridTriangles(100, 0), 2)
	other := gridTriangles(100, 4)
	require.True(t, m.Collides(other, boundingBoxIntersect))
}

func TestSpatialHashMap_Collides_SameSetIsTrue(t *testing.T) {
	triangles := gridTriangles(100, 0)
	m := NewSpatialHashMap(triangles, 2)
	require.True(t, m.Collides(triangles, boundingBoxIntersect))
}

func TestHashBox_Deterministic(t *testing.T) {
	box := AABBFromPoints([]Vertex{NewVertex(1, 2, 3), NewVertex(4, 5, 6)})
	require.Equal(t, hashBox(box), hashBox(box))
}
