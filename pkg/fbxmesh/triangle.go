package fbxmesh

import "sort"

// TriangleVertices is a fan-triangulated view over a PolygonVertices
// table. A polygon with n vertices yields n-2 triangles; triangle k of
// a polygon consists of its polygon vertices (0, k+1, k+2).
//
// The fan convention is index arithmetic, not geometry: for non-convex
// polygons it can produce degenerate or overlapping triangles. That
// matches the wire format's established index-mapping contract and is
// deliberately not corrected here.
//
// The view is computed, not materialized: it holds only a per-polygon
// cumulative triangle count next to the shared polygon table.
type TriangleVertices struct {
	pv *PolygonVertices
	// triEnds[p] is the exclusive cumulative triangle count through
	// polygon p.
	triEnds []int
}

// TriangleCount returns the total number of triangles.
func (tv *TriangleVertices) TriangleCount() int {
	if len(tv.triEnds) == 0 {
		return 0
	}
	return tv.triEnds[len(tv.triEnds)-1]
}

// Len returns the total number of triangle vertices (3 per triangle).
func (tv *TriangleVertices) Len() int {
	return tv.TriangleCount() * 3
}

// PolygonOf returns the polygon a triangle was derived from.
func (tv *TriangleVertices) PolygonOf(t TriangleIndex) (PolygonIndex, bool) {
	if t < 0 || int(t) >= tv.TriangleCount() {
		return 0, false
	}
	p := sort.SearchInts(tv.triEnds, int(t)+1)
	return PolygonIndex(p), true
}

// triangleStart returns the cumulative triangle count before polygon p.
func (tv *TriangleVertices) triangleStart(p PolygonIndex) int {
	if p == 0 {
		return 0
	}
	return tv.triEnds[p-1]
}

// PolygonVertexOf converts a triangle vertex back into the originating
// polygon vertex.
func (tv *TriangleVertices) PolygonVertexOf(i TriangleVertexIndex) (PolygonVertexIndex, bool) {
	if i < 0 || int(i) >= tv.Len() {
		return 0, false
	}
	p, _ := tv.PolygonOf(i.Triangle())
	start, _ := tv.pv.polygonRange(p)
	k := int(i.Triangle()) - tv.triangleStart(p)

	// Fan triangle k spans polygon vertices (0, k+1, k+2).
	switch i.Corner() {
	case 0:
		return PolygonVertexIndex(start), true
	case 1:
		return PolygonVertexIndex(start + k + 1), true
	default:
		return PolygonVertexIndex(start + k + 2), true
	}
}

// ControlPointOf converts a triangle vertex into the control point it
// ultimately references.
func (tv *TriangleVertices) ControlPointOf(i TriangleVertexIndex) (ControlPointIndex, bool) {
	pvi, ok := tv.PolygonVertexOf(i)
	if !ok {
		return 0, false
	}
	return tv.pv.ControlPoint(pvi)
}

// Triangle returns the three polygon vertices of one triangle.
func (tv *TriangleVertices) Triangle(t TriangleIndex) ([3]PolygonVertexIndex, bool) {
	if t < 0 || int(t) >= tv.TriangleCount() {
		return [3]PolygonVertexIndex{}, false
	}
	var out [3]PolygonVertexIndex
	for c := 0; c < 3; c++ {
		out[c], _ = tv.PolygonVertexOf(TriangleVertexIndex(int(t)*3 + c))
	}
	return out, true
}
