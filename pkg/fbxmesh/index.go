// Package fbxmesh models indexed FBX mesh geometry.
//
// Mesh data lives in three distinct index spaces that must never be
// confused: control-point space (deduplicated vertex positions),
// polygon-vertex space (one entry per vertex occurrence per polygon),
// and triangle-vertex space (a fan-triangulated view derived from the
// polygons). Each space gets its own index type; crossing between
// spaces goes through an explicit conversion on PolygonVertices or
// TriangleVertices.
package fbxmesh

// ControlPointIndex addresses one vertex position in a ControlPoints
// store. Valid values are 0 <= i < ControlPoints.Len().
type ControlPointIndex int

// PolygonVertexIndex addresses one entry in the flat decoded
// polygon-vertex sequence across all polygons. A polygon vertex refers
// to a control point but is not interchangeable with it: several
// polygon vertices may reference the same control point.
type PolygonVertexIndex int

// PolygonIndex identifies one polygon among all polygons in the mesh.
type PolygonIndex int

// TriangleIndex identifies one triangle in the fan-triangulated view.
type TriangleIndex int

// TriangleVertexIndex addresses one of the three vertices of one
// triangle: triangle t owns indices 3t, 3t+1, 3t+2.
type TriangleVertexIndex int

// Triangle returns the triangle owning this vertex.
func (i TriangleVertexIndex) Triangle() TriangleIndex {
	return TriangleIndex(i / 3)
}

// Corner returns which of the triangle's three vertices this is (0-2).
func (i TriangleVertexIndex) Corner() int {
	return int(i % 3)
}

// PolygonVertex is one vertex occurrence within one polygon: its
// position in the flat polygon-vertex sequence, the polygon owning it,
// and the control point it references.
type PolygonVertex struct {
	Vertex       PolygonVertexIndex
	Polygon      PolygonIndex
	ControlPoint ControlPointIndex
}
