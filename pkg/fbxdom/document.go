// Package fbxdom exposes a typed, queryable view over a parsed FBX 7.x
// node tree: per-object properties with class-level default templates,
// document-wide settings, and mesh geometry access.
//
// A Document and every view derived from it are immutable once built
// and safe for unlimited concurrent readers.
package fbxdom

import (
	"fmt"

	"fbxscene/pkg/fbx"
)

// Document is the object-model view over one parsed FBX tree. The
// definitions cache is populated eagerly during construction, before
// any object properties can be built, so later reads never fill state.
type Document struct {
	tree *fbx.Tree
	defs *DefinitionsCache
}

// NewDocument builds a Document over the given tree. The tree must not
// be mutated afterwards.
func NewDocument(tree *fbx.Tree) *Document {
	return &Document{
		tree: tree,
		defs: newDefinitionsCache(tree.Root()),
	}
}

// Tree returns the underlying node tree.
func (d *Document) Tree() *fbx.Tree {
	return d.tree
}

// DefinitionsCache returns the class default template cache.
func (d *Document) DefinitionsCache() *DefinitionsCache {
	return d.defs
}

// templateNode resolves a class's default template Properties70 node,
// or nil if the document defines none for that class.
func (d *Document) templateNode(class, subclass string) *fbx.Node {
	id, ok := d.defs.PropsNodeID(class, subclass)
	if !ok {
		return nil
	}
	return d.tree.Node(fbx.NodeID(id))
}

// GlobalSettings returns the typed facade over the /GlobalSettings
// node.
func (d *Document) GlobalSettings() (*GlobalSettings, error) {
	return newGlobalSettings(d)
}

// Geometries returns a facade for every Geometry object under /Objects.
func (d *Document) Geometries() []*Geometry {
	objects := d.tree.Root().FirstChildByName("Objects")
	var out []*Geometry
	for _, node := range objects.ChildrenByName("Geometry") {
		out = append(out, newGeometry(d, node))
	}
	return out
}

// GeometryByName returns the Geometry object with the given name.
func (d *Document) GeometryByName(name string) (*Geometry, error) {
	for _, g := range d.Geometries() {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("geometry %q: %w", name, ErrNodeNotFound)
}
