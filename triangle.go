package yaaacd

// Triangle is an ordered triple of vertices. No degeneracy check is
// performed here; degenerate triangles are passed through to the
// narrow-phase predicate unmodified.
type Triangle [3]Vertex

// NewTriangle builds a Triangle from three vertices, in order.
func NewTriangle(v0, v1, v2 Vertex) Triangle {
	return Triangle{v0, v1, v2}
}

// Vertices returns the triangle's three vertices.
func (t Triangle) Vertices() [3]Vertex {
	return [3]Vertex{t[0], t[1], t[2]}
}
