// Package trimesh provides a real, default narrow-phase triangle-triangle
// intersection predicate for yaaacd's acceleration structures.
//
// yaaacd.Octree, yaaacd.SpatialHashMap, and yaaacd.BruteforceCollides all
// take the predicate as an explicit yaaacd.IntersectFunc argument rather
// than importing it, so callers may substitute a different geometric
// kernel; trimesh.Intersects is the one this module ships and tests
// against.
package trimesh
