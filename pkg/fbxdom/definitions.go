package fbxdom

import "fbxscene/pkg/fbx"

// DefinitionsCache maps (object class name, subclass name) to the
// Properties70 node holding that class's default property template.
//
// The cache is built once from the document's Definitions section at
// load time and is read-only afterwards, so lookups need no
// synchronization. A class without a template is a normal outcome, not
// an error: many documents define templates for only some classes.
type DefinitionsCache struct {
	templates map[templateKey]fbx.NodeID
}

type templateKey struct {
	class    string
	subclass string
}

// newDefinitionsCache scans Definitions/ObjectType/PropertyTemplate
// entries. Layout per entry:
//
//	ObjectType: "Geometry"
//	    PropertyTemplate: "FbxMesh"
//	        Properties70: ...
func newDefinitionsCache(root *fbx.Node) *DefinitionsCache {
	cache := &DefinitionsCache{templates: make(map[templateKey]fbx.NodeID)}

	defs := root.FirstChildByName("Definitions")
	for _, objType := range defs.ChildrenByName("ObjectType") {
		attr, ok := objType.Attr(0)
		if !ok {
			continue
		}
		class, ok := attr.AsString()
		if !ok {
			continue
		}
		for _, tmpl := range objType.ChildrenByName("PropertyTemplate") {
			attr, ok := tmpl.Attr(0)
			if !ok {
				continue
			}
			subclass, ok := attr.AsString()
			if !ok {
				continue
			}
			props := tmpl.FirstChildByName("Properties70")
			if props == nil {
				continue
			}
			cache.templates[templateKey{class, subclass}] = props.ID()
		}
	}
	return cache
}

// PropsNodeID returns the Properties70 node of the default template for
// the given class and subclass, if the document defines one.
func (c *DefinitionsCache) PropsNodeID(class, subclass string) (PropsNodeID, bool) {
	id, ok := c.templates[templateKey{class, subclass}]
	return PropsNodeID(id), ok
}
