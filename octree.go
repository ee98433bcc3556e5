package yaaacd

// MinMembers is the member-count threshold below which an Octree node is
// treated as a leaf: children are never constructed for a node holding
// fewer than MinMembers triangles.
const MinMembers = 25

// Pruning band applied when deciding whether to materialize a candidate
// child: it must capture a meaningful slice of the parent's work without
// holding a negligible fraction of the whole mesh.
const (
	childMaxFractionOfParent = 0.9
	childMinFractionOfRoot   = 0.00025
)

// Octree is an adaptive recursive spatial partition over a triangle set.
// Each node owns an AABB computed from the extremal coordinates of its
// member triangles, its triangle member list, and up to 8 child nodes
// materialized lazily and only where the pruning heuristic finds them
// worthwhile.
type Octree struct {
	bounds      *AABB
	members     []Triangle
	level       int
	rootMembers int // count of the root's members; see spec §9's note on the back-pointer

	childrenBuilt bool
	children      [8]*Octree
}

// NewOctree builds the root of an octree over triangles. It panics if
// triangles is empty — the extremal-coordinate construction is undefined
// on an empty set, and this is treated as a caller bug rather than a
// recoverable error.
func NewOctree(triangles []Triangle) *Octree {
	if len(triangles) == 0 {
		panic("yaaacd: NewOctree requires at least one triangle")
	}

	o := newOctreeNode(triangles, 0, len(triangles))
	o.rootMembers = len(triangles)
	return o
}

func newOctreeNode(triangles []Triangle, level, rootMembers int) *Octree {
	vertices := make([]Vertex, 0, len(triangles)*3)
	for _, tri := range triangles {
		vertices = append(vertices, tri[0], tri[1], tri[2])
	}

	return &Octree{
		bounds:      AABBFromPoints(vertices),
		members:     triangles,
		level:       level,
		rootMembers: rootMembers,
	}
}

// Bounds returns the node's AABB.
func (o *Octree) Bounds() *AABB {
	return o.bounds
}

// Level returns the node's depth; the root is level 0.
func (o *Octree) Level() int {
	return o.level
}

// Children returns the node's up-to-8 child nodes, building them lazily
// on first call if eligible: level < DepthLimit, member count >=
// MinMembers, and children not yet built. A candidate child is only
// materialized when its candidate member count is strictly less than
// childMaxFractionOfParent of the parent's member count (prunes octants
// that fail to split the work) and strictly greater than
// childMinFractionOfRoot of the root's triangle count (prunes octants
// holding a negligible fraction of the mesh); otherwise that slot stays
// nil, so children may be sparse.
func (o *Octree) Children() [8]*Octree {
	if o.childrenBuilt || o.level >= DepthLimit || len(o.members) < MinMembers {
		return o.children
	}
	o.childrenBuilt = true

	childBounds := o.bounds.Children()
	for i, bounds := range childBounds {
		candidate := make([]Triangle, 0)
		for _, tri := range o.members {
			if bounds.ContainsTriangle(tri) {
				candidate = append(candidate, tri)
			}
		}

		tooBig := float64(len(candidate)) >= childMaxFractionOfParent*float64(len(o.members))
		tooSmall := float64(len(candidate)) <= childMinFractionOfRoot*float64(o.rootMembers)
		if !tooBig && !tooSmall {
			o.children[i] = newOctreeNode(candidate, o.level+1, o.rootMembers)
		}
	}

	return o.children
}

// HasChildren reports whether Children yields at least one non-nil slot.
func (o *Octree) HasChildren() bool {
	for _, child := range o.Children() {
		if child != nil {
			return true
		}
	}
	return false
}

// treePair is a single work unit in Collides' dual-tree descent: a pair
// of nodes, one from each tree, still to be compared. Modeling it as one
// value (rather than two values pushed separately) avoids the odd-length
// hazard of popping a flat stack two at a time.
type treePair struct {
	a, b *Octree
}

// Collides reports whether o and other contain any pair of triangles
// that intersect under the given predicate, using a dual-tree descent
// over an explicit work stack seeded with (o, other). The traversal
// short-circuits on the first positive narrow-phase result; the order in
// which node pairs are examined is unspecified.
func (o *Octree) Collides(other *Octree, intersect IntersectFunc) bool {
	stack := []treePair{{o, other}}

	for len(stack) > 0 {
		pair := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !pair.a.bounds.Intersects(pair.b.bounds) {
			continue
		}

		aHas, bHas := pair.a.HasChildren(), pair.b.HasChildren()

		switch {
		case !aHas && !bHas:
			if PrimesIntersect(pair.a.members, pair.b.members, intersect) {
				return true
			}
		case aHas && !bHas:
			for _, child := range pair.a.Children() {
				if child != nil {
					stack = append(stack, treePair{child, pair.b})
				}
			}
		case !aHas && bHas:
			for _, child := range pair.b.Children() {
				if child != nil {
					stack = append(stack, treePair{pair.a, child})
				}
			}
		default:
			for _, childA := range pair.a.Children() {
				if childA == nil {
					continue
				}
				for _, childB := range pair.b.Children() {
					if childB != nil {
						stack = append(stack, treePair{childA, childB})
					}
				}
			}
		}
	}

	return false
}
