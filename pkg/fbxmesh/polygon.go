package fbxmesh

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedIndexBuffer reports a raw polygon vertex index buffer that
// violates the complement-encoding invariants: a buffer not ending on a
// polygon boundary, or a polygon with fewer than three vertices.
var ErrMalformedIndexBuffer = errors.New("malformed polygon vertex index buffer")

// PolygonVertices is the decoded polygon vertex table of one mesh.
//
// The wire format stores polygons as a flat int32 buffer where every
// polygon's final entry is the bitwise complement of its true
// control-point index; all other entries are stored literally. Decoding
// happens once, here; every query afterwards runs against the
// precomputed boundary table without rescanning the raw buffer.
type PolygonVertices struct {
	// controlPoints holds the decoded control-point index for each
	// polygon vertex, in flat polygon-vertex order.
	controlPoints []ControlPointIndex
	// ends[p] is the exclusive end offset of polygon p in controlPoints.
	ends []int
}

// DecodePolygonVertices decodes the raw complement-encoded index
// buffer. A negative entry closes the current polygon and contributes
// its bitwise complement as that polygon's last control-point index.
func DecodePolygonVertices(raw []int32) (*PolygonVertices, error) {
	pv := &PolygonVertices{
		controlPoints: make([]ControlPointIndex, 0, len(raw)),
	}

	start := 0
	for i, v := range raw {
		cpi := v
		if v < 0 {
			cpi = ^v
		}
		pv.controlPoints = append(pv.controlPoints, ControlPointIndex(cpi))
		if v < 0 {
			if got := i + 1 - start; got < 3 {
				return nil, fmt.Errorf("%w: polygon %d has %d vertices, need at least 3",
					ErrMalformedIndexBuffer, len(pv.ends), got)
			}
			pv.ends = append(pv.ends, i+1)
			start = i + 1
		}
	}
	if start != len(raw) {
		return nil, fmt.Errorf("%w: buffer does not end on a polygon boundary (%d trailing vertices)",
			ErrMalformedIndexBuffer, len(raw)-start)
	}
	return pv, nil
}

// Len returns the total number of polygon vertices across all polygons.
func (pv *PolygonVertices) Len() int {
	return len(pv.controlPoints)
}

// PolygonCount returns the number of polygons.
func (pv *PolygonVertices) PolygonCount() int {
	return len(pv.ends)
}

// polygonRange returns the half-open [start, end) range of polygon p in
// the flat polygon-vertex sequence. p must be in range.
func (pv *PolygonVertices) polygonRange(p PolygonIndex) (int, int) {
	start := 0
	if p > 0 {
		start = pv.ends[p-1]
	}
	return start, pv.ends[p]
}

// Polygon returns the vertices of one polygon in boundary order.
func (pv *PolygonVertices) Polygon(p PolygonIndex) ([]PolygonVertex, bool) {
	if p < 0 || int(p) >= len(pv.ends) {
		return nil, false
	}
	start, end := pv.polygonRange(p)
	out := make([]PolygonVertex, end-start)
	for i := range out {
		out[i] = PolygonVertex{
			Vertex:       PolygonVertexIndex(start + i),
			Polygon:      p,
			ControlPoint: pv.controlPoints[start+i],
		}
	}
	return out, true
}

// ControlPoint returns the control point referenced by the given
// polygon vertex.
func (pv *PolygonVertices) ControlPoint(i PolygonVertexIndex) (ControlPointIndex, bool) {
	if i < 0 || int(i) >= len(pv.controlPoints) {
		return 0, false
	}
	return pv.controlPoints[i], true
}

// PolygonOf returns the polygon owning the given polygon vertex, by
// binary search over the boundary table.
func (pv *PolygonVertices) PolygonOf(i PolygonVertexIndex) (PolygonIndex, bool) {
	if i < 0 || int(i) >= len(pv.controlPoints) {
		return 0, false
	}
	p := sort.SearchInts(pv.ends, int(i)+1)
	return PolygonIndex(p), true
}

// Triangulate returns the fan-triangulated view over these polygons.
// The view shares this table's storage; nothing is copied.
func (pv *PolygonVertices) Triangulate() *TriangleVertices {
	triEnds := make([]int, len(pv.ends))
	total := 0
	for p := range pv.ends {
		start, end := pv.polygonRange(PolygonIndex(p))
		total += (end - start) - 2
		triEnds[p] = total
	}
	return &TriangleVertices{pv: pv, triEnds: triEnds}
}
