package yaaacd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimesIntersect_FindsMatch(t *testing.T) {
	a := []Triangle{NewTriangle(NewVertex(0, 0, 0), NewVertex(1, 0, 0), NewVertex(0, 1, 0))}
	b := []Triangle{NewTriangle(NewVertex(5, 5, 5), NewVertex(6, 5, 5), NewVertex(5, 6, 5))}

	require.False(t, PrimesIntersect(a, b, boundingBoxIntersect))

	b = append(b, NewTriangle(NewVertex(0, 0, 0), NewVertex(1, 0, 0), NewVertex(0, 1, 0)))
	require.True(t, PrimesIntersect(a, b, boundingBoxIntersect))
}

func TestBruteforceCollides_MatchesPrimesIntersect(t *testing.T) {
	a := []Triangle{NewTriangle(NewVertex(0, 0, 0), NewVertex(1, 0, 0), NewVertex(0, 1, 0))}
	b := []Triangle{NewTriangle(NewVertex(0.1, 0.1, 0), NewVertex(1.1, 0.1, 0), NewVertex(0.1, 1.1, 0))}

	require.Equal(t, PrimesIntersect(a, b, boundingBoxIntersect), BruteforceCollides(a, b, boundingBoxIntersect))
}
