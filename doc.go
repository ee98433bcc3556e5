// Package yaaacd provides triangle-mesh collision detection over two
// broad-phase acceleration structures — an adaptive octree and a
// fixed-depth spatial hash map — built on axis-aligned bounding boxes.
//
// The package answers one question: given two sets of triangles in R3, do
// they intersect? It does not parse meshes, does not render anything, and
// does not implement the exact triangle-triangle predicate itself — that
// is supplied by the caller as an IntersectFunc (see the sibling trimesh
// package for a ready-made one).
//
//	octA := yaaacd.NewOctree(trianglesA)
//	octB := yaaacd.NewOctree(trianglesB)
//	hit := octA.Collides(octB, trimesh.Intersects)
//
// Acceleration structures are built once per query pair and discarded;
// there is no incremental update and no concurrency requirement beyond
// safe concurrent reads of an already-built tree.
package yaaacd
