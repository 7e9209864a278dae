package fbxmesh

import (
	"errors"
	"fmt"

	"fbxscene/pkg/geom"
)

// ErrMalformedVertexBuffer reports a raw vertex buffer whose length is
// not a multiple of three.
var ErrMalformedVertexBuffer = errors.New("malformed vertex buffer")

// ControlPoints is a flat, immutable store of vertex positions
// addressed by ControlPointIndex.
type ControlPoints struct {
	points []geom.Vec3
}

// NewControlPoints wraps a position slice. The slice must not be
// mutated afterwards.
func NewControlPoints(points []geom.Vec3) ControlPoints {
	return ControlPoints{points: points}
}

// ControlPointsFromFloat64 builds a store from the wire-format flat
// coordinate buffer (x0, y0, z0, x1, y1, z1, ...).
func ControlPointsFromFloat64(raw []float64) (ControlPoints, error) {
	if len(raw)%3 != 0 {
		return ControlPoints{}, fmt.Errorf("%w: %d coordinates, not a multiple of 3", ErrMalformedVertexBuffer, len(raw))
	}
	points := make([]geom.Vec3, len(raw)/3)
	for i := range points {
		points[i] = geom.Vec3{X: raw[i*3], Y: raw[i*3+1], Z: raw[i*3+2]}
	}
	return ControlPoints{points: points}, nil
}

// Len returns the number of control points.
func (c ControlPoints) Len() int {
	return len(c.points)
}

// Get returns the position at the given index. Out-of-range indices
// return false rather than panicking: malformed documents may reference
// control points that do not exist.
func (c ControlPoints) Get(i ControlPointIndex) (geom.Vec3, bool) {
	if i < 0 || int(i) >= len(c.points) {
		return geom.Vec3{}, false
	}
	return c.points[i], true
}
