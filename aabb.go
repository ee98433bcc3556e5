package yaaacd

import "sync"

// Bit positions within an AABB corner index: bit 2 selects +x (right),
// bit 1 selects +y (top), bit 0 selects +z (front). Corner i is therefore
// (rightIf(i&right), topIf(i&top), frontIf(i&front)).
const (
	right = 0b100
	top   = 0b010
	front = 0b001
)

// DepthLimit is the maximum depth an AABB's children (and an Octree's
// recursion) may reach. The root is depth 0.
const DepthLimit = 5

// AABB is a closed axis-aligned bounding box, stored as its eight corners
// indexed by the 3-bit scheme above. Children are octants about the
// center, materialized lazily on first request.
type AABB struct {
	corners [8]Vertex
	level   int

	centerOnce sync.Once
	center     Vertex

	childrenOnce sync.Once
	children     [8]*AABB

	// members holds the triangles associated with this box. It is only
	// populated when an AABB is used as a SpatialHashMap leaf (via
	// Split); Octree usage leaves it empty and keeps members on the
	// Octree node instead.
	members []Triangle
}

// buildCorners lays out the 8 corners of a box spanning
// [left,right]x[bottom,top]x[rear,front] per the bit-indexing scheme.
func buildCorners(left, rightX, bottom, topY, rear, frontZ float64) [8]Vertex {
	var c [8]Vertex
	for i := 0; i < 8; i++ {
		x := left
		if i&right != 0 {
			x = rightX
		}
		y := bottom
		if i&top != 0 {
			y = topY
		}
		z := rear
		if i&front != 0 {
			z = frontZ
		}
		c[i] = NewVertex(x, y, z)
	}
	return c
}

// AABBFromPoints builds an AABB tightly bounding the given vertices, at
// level 0. It panics if vertices is empty — construction from an empty
// point set is a caller bug, not a recoverable error.
func AABBFromPoints(vertices []Vertex) *AABB {
	if len(vertices) == 0 {
		panic("yaaacd: AABBFromPoints requires at least one vertex")
	}

	assertFinite(vertices[0])
	left, rightX := vertices[0].X, vertices[0].X
	bottom, topY := vertices[0].Y, vertices[0].Y
	rear, frontZ := vertices[0].Z, vertices[0].Z

	for _, v := range vertices[1:] {
		assertFinite(v)
		if v.X < left {
			left = v.X
		}
		if v.X > rightX {
			rightX = v.X
		}
		if v.Y < bottom {
			bottom = v.Y
		}
		if v.Y > topY {
			topY = v.Y
		}
		if v.Z < rear {
			rear = v.Z
		}
		if v.Z > frontZ {
			frontZ = v.Z
		}
	}

	return &AABB{corners: buildCorners(left, rightX, bottom, topY, rear, frontZ)}
}

// AABBFromCorners builds an AABB directly from an 8-corner array and an
// explicit level, without recomputing anything.
func AABBFromCorners(corners [8]Vertex, level int) *AABB {
	return &AABB{corners: corners, level: level}
}

// Corners returns the box's eight corners, indexed per the bit scheme
// documented on AABB.
func (b *AABB) Corners() [8]Vertex {
	return b.corners
}

// Level returns the box's depth within its containing tree; the root is
// level 0.
func (b *AABB) Level() int {
	return b.level
}

// Contains reports whether v lies within the box's closed interval on all
// three axes.
func (b *AABB) Contains(v Vertex) bool {
	return v.X >= b.corners[0].X && v.X <= b.corners[right].X &&
		v.Y >= b.corners[0].Y && v.Y <= b.corners[top].Y &&
		v.Z >= b.corners[0].Z && v.Z <= b.corners[front].Z
}

// ContainsTriangle reports whether at least one of the triangle's three
// vertices is contained by the box. This is deliberately a coarse
// predicate — a triangle may cross the box without any vertex inside.
// Accepting that false negative at the broad phase is this library's
// chosen trade-off; the dual-tree descent's conservative AABB.Intersects
// check mitigates it.
func (b *AABB) ContainsTriangle(t Triangle) bool {
	for _, v := range t {
		if b.Contains(v) {
			return true
		}
	}
	return false
}

// Intersects reports whether any of b's corners lies within other, or any
// of other's corners lies within b.
//
// This is a corner-membership test, not a full Minkowski overlap: it
// misses cases where two boxes interpenetrate without either enclosing a
// corner of the other. That is the source library's actual contract
// (spec §9's open question, resolved toward faithful reproduction) and is
// relied on by the octree's dual-tree descent, so it is reproduced as-is.
func (b *AABB) Intersects(other *AABB) bool {
	for _, c := range b.corners {
		if other.Contains(c) {
			return true
		}
	}
	for _, c := range other.corners {
		if b.Contains(c) {
			return true
		}
	}
	return false
}

// Center returns the midpoint of corners (0,4) in x, (0,2) in y, (0,1) in
// z. The result is cached after the first call.
func (b *AABB) Center() Vertex {
	b.centerOnce.Do(func() {
		b.center = NewVertex(
			(b.corners[0].X+b.corners[right].X)/2,
			(b.corners[0].Y+b.corners[top].Y)/2,
			(b.corners[0].Z+b.corners[front].Z)/2,
		)
	})
	return b.center
}

// Children returns the box's up-to-8 octant children. If children were
// already built, or this box is at DepthLimit, the cached (possibly all
// nil) array is returned; otherwise all 8 octants are constructed on this
// call and cached for subsequent calls.
func (b *AABB) Children() [8]*AABB {
	if b.level >= DepthLimit {
		return b.children
	}

	b.childrenOnce.Do(func() {
		c := b.Center()
		left, rightX := b.corners[0].X, b.corners[right].X
		bottom, topY := b.corners[0].Y, b.corners[top].Y
		rear, frontZ := b.corners[0].Z, b.corners[front].Z

		for i := 0; i < 8; i++ {
			childLeft, childRight := left, c.X
			if i&right != 0 {
				childLeft, childRight = c.X, rightX
			}
			childBottom, childTop := bottom, c.Y
			if i&top != 0 {
				childBottom, childTop = c.Y, topY
			}
			childRear, childFront := rear, c.Z
			if i&front != 0 {
				childRear, childFront = c.Z, frontZ
			}

			b.children[i] = &AABB{
				corners: buildCorners(childLeft, childRight, childBottom, childTop, childRear, childFront),
				level:   b.level + 1,
			}
		}
	})

	return b.children
}

// Split iteratively subdivides the box down to targetLevel, distributing
// triangles into each descendant's member list by ContainsTriangle, and
// returns the leaves at targetLevel. A triangle with vertices in several
// octants is duplicated across each leaf it touches.
func (b *AABB) Split(targetLevel int, triangles []Triangle) []*AABB {
	queue := make([]*AABB, 0, 8)
	for _, child := range b.Children() {
		for _, tri := range triangles {
			if child.ContainsTriangle(tri) {
				child.members = append(child.members, tri)
			}
		}
		queue = append(queue, child)
	}

	for queue[0].level != targetLevel {
		front := queue[0]
		queue = queue[1:]

		for _, child := range front.Children() {
			for _, tri := range front.members {
				if child.ContainsTriangle(tri) {
					child.members = append(child.members, tri)
				}
			}
			queue = append(queue, child)
		}
	}

	return queue
}

// Members returns the triangles currently associated with this box, as
// populated by Split. It is empty for boxes used only within an Octree.
func (b *AABB) Members() []Triangle {
	return b.members
}
