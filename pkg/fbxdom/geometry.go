package fbxdom

import (
	"fmt"
	"strings"

	"fbxscene/pkg/fbx"
	"fbxscene/pkg/fbxmesh"
)

// Geometry is a facade over one Geometry object node, exposing its
// indexed mesh data through the fbxmesh index model.
type Geometry struct {
	node  *fbx.Node
	props ObjectProperties
}

// The subclass name under which Geometry templates are filed.
const geometrySubclass = "FbxMesh"

func newGeometry(doc *Document, node *fbx.Node) *Geometry {
	return &Geometry{
		node:  node,
		props: NewObjectProperties(node.FirstChildByName("Properties70"), doc.templateNode("Geometry", geometrySubclass)),
	}
}

// ObjectID returns the object's document-unique ID, or 0 if absent.
func (g *Geometry) ObjectID() int64 {
	if attr, ok := g.node.Attr(0); ok {
		if id, ok := attr.AsInt64(); ok {
			return id
		}
	}
	return 0
}

// Name returns the object name. The wire format stores names as
// "Name\x00\x01ClassName"; only the name part is returned.
func (g *Geometry) Name() string {
	attr, ok := g.node.Attr(1)
	if !ok {
		return ""
	}
	full, ok := attr.AsString()
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(full, "\x00\x01")
	return name
}

// Properties returns the object's resolved properties.
func (g *Geometry) Properties() ObjectProperties {
	return g.props
}

// ControlPoints builds the control point store from the Vertices
// attribute.
func (g *Geometry) ControlPoints() (fbxmesh.ControlPoints, error) {
	node := g.node.FirstChildByName("Vertices")
	if node == nil {
		return fbxmesh.ControlPoints{}, fmt.Errorf("geometry %q: expected Vertices node: %w", g.Name(), ErrNodeNotFound)
	}
	attr, ok := node.Attr(0)
	if !ok {
		return fbxmesh.ControlPoints{}, fmt.Errorf("geometry %q: Vertices node has no attribute: %w", g.Name(), ErrPropertyTypeMismatch)
	}
	raw, ok := attr.AsFloat64Array()
	if !ok {
		return fbxmesh.ControlPoints{}, fmt.Errorf("geometry %q: Vertices attribute is %s, expected float64[]: %w",
			g.Name(), attr.TypeName(), ErrPropertyTypeMismatch)
	}
	return fbxmesh.ControlPointsFromFloat64(raw)
}

// PolygonVertices decodes the PolygonVertexIndex attribute into the
// polygon vertex table.
func (g *Geometry) PolygonVertices() (*fbxmesh.PolygonVertices, error) {
	node := g.node.FirstChildByName("PolygonVertexIndex")
	if node == nil {
		return nil, fmt.Errorf("geometry %q: expected PolygonVertexIndex node: %w", g.Name(), ErrNodeNotFound)
	}
	attr, ok := node.Attr(0)
	if !ok {
		return nil, fmt.Errorf("geometry %q: PolygonVertexIndex node has no attribute: %w", g.Name(), ErrPropertyTypeMismatch)
	}
	raw, ok := attr.AsInt32Array()
	if !ok {
		return nil, fmt.Errorf("geometry %q: PolygonVertexIndex attribute is %s, expected int32[]: %w",
			g.Name(), attr.TypeName(), ErrPropertyTypeMismatch)
	}
	return fbxmesh.DecodePolygonVertices(raw)
}
