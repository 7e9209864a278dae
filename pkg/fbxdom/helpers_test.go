package fbxdom

import (
	"fbxscene/pkg/fbx"
)

// propNode builds one Properties70 "P" entry with the standard
// (name, type, label, flags, values...) attribute layout.
func propNode(name, typeName string, values ...any) *fbx.Node {
	attrs := []fbx.Attribute{
		{Value: name},
		{Value: typeName},
		{Value: ""},
		{Value: ""},
	}
	for _, v := range values {
		attrs = append(attrs, fbx.Attribute{Value: v})
	}
	return &fbx.Node{Name: "P", Attributes: attrs}
}

func props70(entries ...*fbx.Node) *fbx.Node {
	return &fbx.Node{Name: "Properties70", Children: entries}
}

// defaultGlobalSettingsProps is the property set of the end-to-end
// fixture: +Y up, +Z front, +X right, unit = 100 cm.
func defaultGlobalSettingsProps() *fbx.Node {
	return props70(
		propNode("UpAxis", "int", int32(1)),
		propNode("UpAxisSign", "int", int32(1)),
		propNode("FrontAxis", "int", int32(2)),
		propNode("FrontAxisSign", "int", int32(1)),
		propNode("CoordAxis", "int", int32(0)),
		propNode("CoordAxisSign", "int", int32(1)),
		propNode("OriginalUpAxis", "int", int32(1)),
		propNode("OriginalUpAxisSign", "int", int32(1)),
		propNode("UnitScaleFactor", "double", float64(100)),
	)
}

// buildTestDocument assembles an in-memory document with global
// settings, a Definitions template for Geometry, and one quad mesh.
func buildTestDocument() *Document {
	geometry := &fbx.Node{
		Name: "Geometry",
		Attributes: []fbx.Attribute{
			{Value: int64(140500)},
			{Value: "Plane\x00\x01Geometry"},
			{Value: "Mesh"},
		},
		Children: []*fbx.Node{
			{Name: "Vertices", Attributes: []fbx.Attribute{
				{Value: []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}},
			}},
			{Name: "PolygonVertexIndex", Attributes: []fbx.Attribute{
				{Value: []int32{0, 1, 2, -4}},
			}},
		},
	}

	root := &fbx.Node{Children: []*fbx.Node{
		{Name: "GlobalSettings", Children: []*fbx.Node{
			defaultGlobalSettingsProps(),
		}},
		{Name: "Definitions", Children: []*fbx.Node{
			{
				Name:       "ObjectType",
				Attributes: []fbx.Attribute{{Value: "Geometry"}},
				Children: []*fbx.Node{{
					Name:       "PropertyTemplate",
					Attributes: []fbx.Attribute{{Value: "FbxMesh"}},
					Children: []*fbx.Node{props70(
						propNode("Primary Visibility", "bool", int32(1)),
					)},
				}},
			},
		}},
		{Name: "Objects", Children: []*fbx.Node{geometry}},
	}}

	return NewDocument(fbx.NewTree(root, 7400))
}
