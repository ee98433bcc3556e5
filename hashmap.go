package yaaacd

// Hash constants, binding contract per the source library: distinct
// primes per axis so axis-aligned shifts land in distinct buckets.
const (
	TableSize = 100
	CellSize  = 100
	p1        = 131
	p2        = 97
	p3        = 137
)

// SpatialHashMap buckets leaf AABBs at a fixed subdivision depth by a
// coordinate hash of their center. It is built once per dataset and
// discarded; it is not updated incrementally.
type SpatialHashMap struct {
	levels int
	table  map[int][]Triangle
}

// NewSpatialHashMap builds a spatial hash map over triangles at the given
// subdivision depth (levels <= DepthLimit). It panics if triangles is
// empty, for the same reason AABBFromPoints does.
func NewSpatialHashMap(triangles []Triangle, levels int) *SpatialHashMap {
	if len(triangles) == 0 {
		panic("yaaacd: NewSpatialHashMap requires at least one triangle")
	}

	m := &SpatialHashMap{levels: levels, table: make(map[int][]Triangle)}

	root := rootBoxFor(triangles)
	for _, leaf := range root.Split(levels, triangles) {
		m.insert(leaf)
	}

	return m
}

func rootBoxFor(triangles []Triangle) *AABB {
	vertices := make([]Vertex, 0, len(triangles)*3)
	for _, tri := range triangles {
		vertices = append(vertices, tri[0], tri[1], tri[2])
	}
	return AABBFromPoints(vertices)
}

// hashBox computes the bucket index for a leaf AABB from its center:
// per-axis truncating-toward-zero integer coercion of
// center.axis/CellSize*prime, XORed together and reduced modulo
// TableSize with the sign of the dividend (C-style remainder, matching
// Go's % operator for ints). This exact formula is part of the source
// library's contract and is preserved so hashes remain stable across
// queries built from the same coordinates.
func hashBox(box *AABB) int {
	c := box.Center()
	ix := int(c.X / CellSize * p1)
	iy := int(c.Y / CellSize * p2)
	iz := int(c.Z / CellSize * p3)
	return ((ix ^ iy ^ iz) % TableSize)
}

func (m *SpatialHashMap) insert(box *AABB) {
	members := box.Members()
	if len(members) == 0 {
		return
	}

	h := hashBox(box)
	m.table[h] = append(m.table[h], members...)
}

// Collides builds a leaf list from triangles at the map's subdivision
// depth and, for each leaf, looks up its bucket and tests it against the
// leaf's members via intersect. It returns true on the first positive
// match and false once all leaves are exhausted.
func (m *SpatialHashMap) Collides(triangles []Triangle, intersect IntersectFunc) bool {
	root := rootBoxFor(triangles)
	for _, leaf := range root.Split(m.levels, triangles) {
		h := hashBox(leaf)
		bucket, ok := m.table[h]
		if !ok {
			continue
		}
		if PrimesIntersect(bucket, leaf.Members(), intersect) {
			return true
		}
	}
	return false
}
