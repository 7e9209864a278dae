package fbxdom

import (
	"fmt"

	"fbxscene/pkg/fbx"
)

// PropsNodeID identifies a Properties70 node within the document tree.
type PropsNodeID fbx.NodeID

// Property is one entry of a Properties70 node: a named, typed value.
// In FBX 7.x each entry is a "P" child node whose attributes are
// (name, type name, label, flags, value...).
type Property struct {
	name string
	node *fbx.Node
}

// Name returns the property key.
func (p *Property) Name() string {
	return p.name
}

// TypeName returns the FBX type name string stored with the property
// (e.g. "int", "double", "KString"), or "" if absent.
func (p *Property) TypeName() string {
	if attr, ok := p.node.Attr(1); ok {
		if s, ok := attr.AsString(); ok {
			return s
		}
	}
	return ""
}

// valueAttr returns the i-th value attribute. Values start after the
// four fixed leading attributes.
func (p *Property) valueAttr(i int) (fbx.Attribute, bool) {
	return p.node.Attr(4 + i)
}

// Int32 decodes the property value as an int32.
func (p *Property) Int32() (int32, error) {
	attr, ok := p.valueAttr(0)
	if !ok {
		return 0, fmt.Errorf("property %q has no value: %w", p.name, ErrPropertyTypeMismatch)
	}
	v, ok := attr.AsInt32()
	if !ok {
		return 0, fmt.Errorf("property %q: expected int32 value but got %s: %w",
			p.name, attr.TypeName(), ErrPropertyTypeMismatch)
	}
	return v, nil
}

// Int64 decodes the property value as an int64.
func (p *Property) Int64() (int64, error) {
	attr, ok := p.valueAttr(0)
	if !ok {
		return 0, fmt.Errorf("property %q has no value: %w", p.name, ErrPropertyTypeMismatch)
	}
	v, ok := attr.AsInt64()
	if !ok {
		return 0, fmt.Errorf("property %q: expected int64 value but got %s: %w",
			p.name, attr.TypeName(), ErrPropertyTypeMismatch)
	}
	return v, nil
}

// Float64 decodes the property value as a float64.
func (p *Property) Float64() (float64, error) {
	attr, ok := p.valueAttr(0)
	if !ok {
		return 0, fmt.Errorf("property %q has no value: %w", p.name, ErrPropertyTypeMismatch)
	}
	v, ok := attr.AsFloat64()
	if !ok {
		return 0, fmt.Errorf("property %q: expected float64 value but got %s: %w",
			p.name, attr.TypeName(), ErrPropertyTypeMismatch)
	}
	return v, nil
}

// StringValue decodes the property value as a string.
func (p *Property) StringValue() (string, error) {
	attr, ok := p.valueAttr(0)
	if !ok {
		return "", fmt.Errorf("property %q has no value: %w", p.name, ErrPropertyTypeMismatch)
	}
	v, ok := attr.AsString()
	if !ok {
		return "", fmt.Errorf("property %q: expected string value but got %s: %w",
			p.name, attr.TypeName(), ErrPropertyTypeMismatch)
	}
	return v, nil
}

// Bool decodes the property value as a bool. FBX stores Properties70
// bools as int32 0/1, so both representations are accepted.
func (p *Property) Bool() (bool, error) {
	attr, ok := p.valueAttr(0)
	if !ok {
		return false, fmt.Errorf("property %q has no value: %w", p.name, ErrPropertyTypeMismatch)
	}
	if v, ok := attr.AsBool(); ok {
		return v, nil
	}
	if v, ok := attr.AsInt32(); ok {
		return v != 0, nil
	}
	return false, fmt.Errorf("property %q: expected bool value but got %s: %w",
		p.name, attr.TypeName(), ErrPropertyTypeMismatch)
}

// ObjectProperties resolves property lookups for one object against two
// ordered scopes: the object's own Properties70 node first, then the
// class default template from the definitions cache. Both scopes are
// optional; a key present in neither fails with ErrPropertyNotFound.
//
// ObjectProperties is a view into the shared tree and is safe for
// concurrent reads.
type ObjectProperties struct {
	direct   *fbx.Node
	template *fbx.Node
}

// NewObjectProperties builds a resolver over a direct Properties70 node
// and a class default template node. Either or both may be nil.
func NewObjectProperties(direct, template *fbx.Node) ObjectProperties {
	return ObjectProperties{direct: direct, template: template}
}

// Get returns the property for the given key, checking the direct scope
// before the default template. Returns nil if neither scope holds the
// key.
func (op ObjectProperties) Get(name string) *Property {
	if p := findProperty(op.direct, name); p != nil {
		return p
	}
	return findProperty(op.template, name)
}

// findProperty scans one Properties70 node for a "P" entry keyed by
// name. Keys are unique within a node, so the first match wins.
func findProperty(props *fbx.Node, name string) *Property {
	if props == nil {
		return nil
	}
	for _, child := range props.Children {
		if child.Name != "P" {
			continue
		}
		attr, ok := child.Attr(0)
		if !ok {
			continue
		}
		if key, ok := attr.AsString(); ok && key == name {
			return &Property{name: name, node: child}
		}
	}
	return nil
}

// Int32 resolves and decodes an int32 property.
func (op ObjectProperties) Int32(name string) (int32, error) {
	p := op.Get(name)
	if p == nil {
		return 0, fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	return p.Int32()
}

// Int64 resolves and decodes an int64 property.
func (op ObjectProperties) Int64(name string) (int64, error) {
	p := op.Get(name)
	if p == nil {
		return 0, fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	return p.Int64()
}

// Float64 resolves and decodes a float64 property.
func (op ObjectProperties) Float64(name string) (float64, error) {
	p := op.Get(name)
	if p == nil {
		return 0, fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	return p.Float64()
}

// StringValue resolves and decodes a string property.
func (op ObjectProperties) StringValue(name string) (string, error) {
	p := op.Get(name)
	if p == nil {
		return "", fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	return p.StringValue()
}

// Bool resolves and decodes a bool property.
func (op ObjectProperties) Bool(name string) (bool, error) {
	p := op.Get(name)
	if p == nil {
		return false, fmt.Errorf("property %q: %w", name, ErrPropertyNotFound)
	}
	return p.Bool()
}
