package yaaacd

import "github.com/golang/geo/r3"

// Vertex is an ordered triple of finite double-precision coordinates.
// Equality is componentwise exact.
type Vertex r3.Vector

// NewVertex builds a Vertex from its three coordinates.
func NewVertex(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// VertexFromArray builds a Vertex from coordinates[0:3] = (x, y, z).
//
// The original C++ source's array constructor assigned y twice
// (coordinates[1] then coordinates[2]) and left z defaulted; this port
// assigns x, y, z from indices 0, 1, 2 respectively and does not
// reproduce that bug.
func VertexFromArray(coordinates [3]float64) Vertex {
	return Vertex{X: coordinates[0], Y: coordinates[1], Z: coordinates[2]}
}

// vec returns v as an r3.Vector so callers can reuse golang/geo's vector
// arithmetic without this package re-implementing it.
func (v Vertex) vec() r3.Vector {
	return r3.Vector(v)
}
