package trimesh

import "yaaacd"

// epsilon guards the coplanarity robustness check against floating-point
// noise when a vertex lies almost exactly on the other triangle's plane.
const epsilon = 1e-10

// point3 is a plain [3]float64 view of a yaaacd.Vertex, used internally
// so the separating-axis arithmetic below can index by axis.
type point3 [3]float64

func fromVertex(v yaaacd.Vertex) point3 {
	return point3{v.X, v.Y, v.Z}
}

func sub(a, b point3) point3 {
	return point3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b point3) point3 {
	return point3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b point3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sort2(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Intersects reports whether two closed triangles share at least one
// point in R3. It implements Tomas Moller's 1997 triangle-triangle
// intersection test: reject early via each triangle's plane equation,
// then — for the non-coplanar case — compare the two triangles'
// intervals along the line where their planes meet; coplanar triangles
// fall back to a 2D edge/edge and point-in-triangle test in the
// dominant projection plane.
//
// Degenerate triangles (collinear or zero-area) are not rejected before
// the test; they are passed through like any other input, per the
// narrow-phase predicate's contract.
func Intersects(t1, t2 yaaacd.Triangle) bool {
	v0, v1, v2 := fromVertex(t1[0]), fromVertex(t1[1]), fromVertex(t1[2])
	u0, u1, u2 := fromVertex(t2[0]), fromVertex(t2[1]), fromVertex(t2[2])

	// Plane of triangle 1.
	e1 := sub(v1, v0)
	e2 := sub(v2, v0)
	n1 := cross(e1, e2)
	d1 := -dot(n1, v0)

	du0 := dot(n1, u0) + d1
	du1 := dot(n1, u1) + d1
	du2 := dot(n1, u2) + d1

	if abs(du0) < epsilon {
		du0 = 0
	}
	if abs(du1) < epsilon {
		du1 = 0
	}
	if abs(du2) < epsilon {
		du2 = 0
	}

	du0du1 := du0 * du1
	du0du2 := du0 * du2
	if du0du1 > 0 && du0du2 > 0 {
		return false
	}

	// Plane of triangle 2.
	f1 := sub(u1, u0)
	f2 := sub(u2, u0)
	n2 := cross(f1, f2)
	d2 := -dot(n2, u0)

	dv0 := dot(n2, v0) + d2
	dv1 := dot(n2, v1) + d2
	dv2 := dot(n2, v2) + d2

	if abs(dv0) < epsilon {
		dv0 = 0
	}
	if abs(dv1) < epsilon {
		dv1 = 0
	}
	if abs(dv2) < epsilon {
		dv2 = 0
	}

	dv0dv1 := dv0 * dv1
	dv0dv2 := dv0 * dv2
	if dv0dv1 > 0 && dv0dv2 > 0 {
		return false
	}

	// Direction of the line where the two planes intersect, and the
	// axis along which it has the largest component (used to project
	// both triangles onto that line without dividing by near-zero
	// components).
	d := cross(n1, n2)
	maxAxis, maxVal := 0, abs(d[0])
	if v := abs(d[1]); v > maxVal {
		maxAxis, maxVal = 1, v
	}
	if v := abs(d[2]); v > maxVal {
		maxAxis = 2
	}

	vp0, vp1, vp2 := v0[maxAxis], v1[maxAxis], v2[maxAxis]
	up0, up1, up2 := u0[maxAxis], u1[maxAxis], u2[maxAxis]

	a, b, c, x0, x1, coplanar := computeIntervals(vp0, vp1, vp2, dv0, dv1, dv2, dv0dv1, dv0dv2)
	if coplanar {
		return coplanarIntersects(n1, v0, v1, v2, u0, u1, u2)
	}
	dd, e, f, y0, y1, coplanar2 := computeIntervals(up0, up1, up2, du0, du1, du2, du0du1, du0du2)
	if coplanar2 {
		return coplanarIntersects(n1, v0, v1, v2, u0, u1, u2)
	}

	xx := x0 * x1
	yy := y0 * y1
	xxyy := xx * yy

	isect1Lo := a*xxyy + b*x1*yy
	isect1Hi := a*xxyy + c*x0*yy
	isect1Lo, isect1Hi = sort2(isect1Lo, isect1Hi)

	isect2Lo := dd*xxyy + e*y1*xx
	isect2Hi := dd*xxyy + f*y0*xx
	isect2Lo, isect2Hi = sort2(isect2Lo, isect2Hi)

	return !(isect1Hi < isect2Lo || isect2Hi < isect1Lo)
}

// computeIntervals isolates the one vertex lying alone on one side of the
// other triangle's plane (or signals coplanarity when all three signed
// distances are zero), returning the coefficients used to build the
// projected interval without ever dividing by a possibly-zero term.
func computeIntervals(vv0, vv1, vv2, d0, d1, d2, d0d1, d0d2 float64) (a, b, c, x0, x1 float64, coplanar bool) {
	switch {
	case d0d1 > 0:
		return vv2, (vv0 - vv2) * d2, (vv1 - vv2) * d2, d2 - d0, d2 - d1, false
	case d0d2 > 0:
		return vv1, (vv0 - vv1) * d1, (vv2 - vv1) * d1, d1 - d0, d1 - d2, false
	case d1*d2 > 0 || d0 != 0:
		return vv0, (vv1 - vv0) * d0, (vv2 - vv0) * d0, d0 - d1, d0 - d2, false
	case d1 != 0:
		return vv1, (vv0 - vv1) * d1, (vv2 - vv1) * d1, d1 - d0, d1 - d2, false
	case d2 != 0:
		return vv2, (vv0 - vv2) * d2, (vv1 - vv2) * d2, d2 - d0, d2 - d1, false
	default:
		return 0, 0, 0, 0, 0, true
	}
}

// coplanarIntersects handles the coplanar case: project both triangles
// onto the axis-aligned plane best aligned with n (dropping the axis of
// its largest component), then test edge pairs and point containment in
// 2D.
func coplanarIntersects(n, v0, v1, v2, u0, u1, u2 point3) bool {
	ax, ay, az := abs(n[0]), abs(n[1]), abs(n[2])

	var i0, i1 int
	switch {
	case ax > ay:
		if ax > az {
			i0, i1 = 1, 2
		} else {
			i0, i1 = 0, 1
		}
	default:
		if az > ay {
			i0, i1 = 0, 1
		} else {
			i0, i1 = 0, 2
		}
	}

	if edgeAgainstTriEdges(v0, v1, u0, u1, u2, i0, i1) ||
		edgeAgainstTriEdges(v1, v2, u0, u1, u2, i0, i1) ||
		edgeAgainstTriEdges(v2, v0, u0, u1, u2, i0, i1) {
		return true
	}

	return pointInTriangle(v0, u0, u1, u2, i0, i1) || pointInTriangle(u0, v0, v1, v2, i0, i1)
}

func edgeAgainstTriEdges(v0, v1, u0, u1, u2 point3, i0, i1 int) bool {
	ax := v1[i0] - v0[i0]
	ay := v1[i1] - v0[i1]

	return edgeEdgeTest(v0, u0, u1, ax, ay, i0, i1) ||
		edgeEdgeTest(v0, u1, u2, ax, ay, i0, i1) ||
		edgeEdgeTest(v0, u2, u0, ax, ay, i0, i1)
}

func edgeEdgeTest(v0, u0, u1 point3, ax, ay float64, i0, i1 int) bool {
	bx := u0[i0] - u1[i0]
	by := u0[i1] - u1[i1]
	cx := v0[i0] - u0[i0]
	cy := v0[i1] - u0[i1]

	f := ay*bx - ax*by
	d := by*cx - bx*cy

	if (f > 0 && d >= 0 && d <= f) || (f < 0 && d <= 0 && d >= f) {
		e := ax*cy - ay*cx
		if f > 0 {
			return e >= 0 && e <= f
		}
		return e <= 0 && e >= f
	}
	return false
}

func pointInTriangle(v0, u0, u1, u2 point3, i0, i1 int) bool {
	a := u1[i1] - u0[i1]
	b := -(u1[i0] - u0[i0])
	c := -a*u0[i0] - b*u0[i1]
	d0 := a*v0[i0] + b*v0[i1] + c

	a = u2[i1] - u1[i1]
	b = -(u2[i0] - u1[i0])
	c = -a*u1[i0] - b*u1[i1]
	d1 := a*v0[i0] + b*v0[i1] + c

	a = u0[i1] - u2[i1]
	b = -(u0[i0] - u2[i0])
	c = -a*u2[i0] - b*u2[i1]
	d2 := a*v0[i0] + b*v0[i1] + c

	return d0*d1 > 0 && d0*d2 > 0
}
