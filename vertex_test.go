package yaaacd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewVertex(t *testing.T) {
	v := NewVertex(1, 2, 3)
	require.Equal(t, 1.0, v.X)
	require.Equal(t, 2.0, v.Y)
	require.Equal(t, 3.0, v.Z)
}

func TestVertexFromArray_DoesNotReproduceDoubleYBug(t *testing.T) {
	v := VertexFromArray([3]float64{1, 2, 3})
	require.Equal(t, NewVertex(1, 2, 3), v)
}
