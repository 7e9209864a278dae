// Package fbx provides a reader for the FBX 7.x binary node tree.
//
// The package exposes the raw node structure only: named nodes carrying
// typed attributes and child nodes. Interpreting the tree (objects,
// properties, geometry) is the job of the fbxdom and fbxmesh packages.
package fbx

// NodeID is a stable handle identifying one node within its Tree.
// IDs are assigned in depth-first order when the tree is built and
// never change afterwards.
type NodeID int

// Node is a single node in the FBX tree.
type Node struct {
	Name       string
	Attributes []Attribute
	Children   []*Node

	id NodeID
}

// ID returns the node's handle within its tree. Only meaningful for
// nodes reachable from a Tree built with NewTree or Parse.
func (n *Node) ID() NodeID {
	return n.id
}

// FirstChildByName returns the first direct child with the given name,
// or nil if there is none. Safe to call on a nil node.
func (n *Node) FirstChildByName(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenByName returns all direct children with the given name.
func (n *Node) ChildrenByName(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the i-th attribute, or a zero Attribute if out of range.
func (n *Node) Attr(i int) (Attribute, bool) {
	if n == nil || i < 0 || i >= len(n.Attributes) {
		return Attribute{}, false
	}
	return n.Attributes[i], true
}

// Tree is an immutable FBX node tree. The root node itself is synthetic
// (empty name); the document's top-level nodes are its children.
type Tree struct {
	root    *Node
	nodes   []*Node
	version uint32
}

// NewTree builds a Tree over the given root node, assigning depth-first
// node IDs. The version is the FBX binary version (e.g. 7400), or 0 for
// trees built in memory.
func NewTree(root *Node, version uint32) *Tree {
	t := &Tree{root: root, version: version}
	t.index(root)
	return t
}

func (t *Tree) index(n *Node) {
	n.id = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	for _, c := range n.Children {
		t.index(c)
	}
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Node resolves a NodeID back to its node, or nil if the ID is not
// part of this tree.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// NodeCount returns the number of nodes in the tree, root included.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// Version returns the FBX binary version the tree was parsed from.
func (t *Tree) Version() uint32 {
	return t.version
}
