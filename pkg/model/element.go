package model

import (
	"slices"

	"github.com/matzehuels/archtower/pkg/errors"
)

// Element is a node of the architecture model. A single struct covers every
// [Kind]; fields that only apply to some kinds (technology, environment,
// instance count) are zero for the others.
//
// Elements are created through the model and are live handles: tags,
// location, URL and properties may be changed after creation, identity,
// name, kind and parent may not.
type Element struct {
	id          string
	kind        Kind
	name        string
	description string
	technology  string
	tags        *TagSet
	location    Location
	url         string
	properties  map[string]string

	model    *Model
	parent   *Element
	children []*Element

	// Deployment node only.
	environment   string
	instanceCount int
	instances     []*Instance
}

// ID returns the immutable identity of the element.
func (e *Element) ID() string { return e.id }

// Kind returns the element variant.
func (e *Element) Kind() Kind { return e.kind }

// Name returns the element name, unique within its scope.
func (e *Element) Name() string { return e.name }

// Description returns the free-text description.
func (e *Element) Description() string { return e.description }

// Technology returns the technology label of containers, components and
// deployment nodes. Empty for other kinds.
func (e *Element) Technology() string { return e.technology }

// Tags returns the live tag set. Adding tags affects style resolution.
func (e *Element) Tags() *TagSet { return e.tags }

// Location returns the internal/external classification.
func (e *Element) Location() Location { return e.location }

// SetLocation classifies the element as internal or external.
func (e *Element) SetLocation(l Location) { e.location = l }

// URL returns the optional documentation link.
func (e *Element) URL() string { return e.url }

// SetURL sets the documentation link.
func (e *Element) SetURL(url string) { e.url = url }

// Properties returns the live key-value property map. Never nil.
func (e *Element) Properties() map[string]string { return e.properties }

// Model returns the model that owns the element.
func (e *Element) Model() *Model { return e.model }

// Parent returns the containing element, or nil for top-level elements.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the directly contained elements in insertion order.
func (e *Element) Children() []*Element { return slices.Clone(e.children) }

// Environment returns the deployment environment of a deployment node.
func (e *Element) Environment() string { return e.environment }

// InstanceCount returns how many replicas of a deployment node exist.
func (e *Element) InstanceCount() int { return e.instanceCount }

// Instances returns the deployment instances hosted directly on a
// deployment node, in insertion order.
func (e *Element) Instances() []*Instance { return slices.Clone(e.instances) }

// CanonicalName returns the slash-separated path of names from the
// top-level ancestor down to e (e.g. "Monkey Factory/storage").
func (e *Element) CanonicalName() string {
	if e.parent == nil {
		return e.name
	}
	return e.parent.CanonicalName() + "/" + e.name
}

// String returns the canonical name.
func (e *Element) String() string { return e.CanonicalName() }

// AddContainer registers a container inside a software system.
// It fails with ErrCodeInvalidParent when e is not a software system and
// with ErrCodeNameConflict when the system already has a container named name.
func (e *Element) AddContainer(name, description, technology string) (*Element, error) {
	if e.kind != KindSoftwareSystem {
		return nil, errors.New(errors.ErrCodeInvalidParent,
			"cannot add container %q to %s %q", name, e.kind, e.name)
	}
	return e.model.add(&Element{
		kind:        KindContainer,
		name:        name,
		description: description,
		technology:  technology,
		parent:      e,
	})
}

// AddComponent registers a component inside a container.
func (e *Element) AddComponent(name, description, technology string) (*Element, error) {
	if e.kind != KindContainer {
		return nil, errors.New(errors.ErrCodeInvalidParent,
			"cannot add component %q to %s %q", name, e.kind, e.name)
	}
	return e.model.add(&Element{
		kind:        KindComponent,
		name:        name,
		description: description,
		technology:  technology,
		parent:      e,
	})
}

// AddDeploymentNode registers a child deployment node. The child inherits
// the environment of e.
func (e *Element) AddDeploymentNode(name, description, technology string, instances int) (*Element, error) {
	return e.model.AddDeploymentNode(e, name, description, technology, e.environment, instances)
}

// Container returns the container of a software system with the given
// name, or nil.
func (e *Element) Container(name string) *Element {
	return e.child(KindContainer, name)
}

// Component returns the component of a container with the given name, or nil.
func (e *Element) Component(name string) *Element {
	return e.child(KindComponent, name)
}

// DeploymentNode returns the child deployment node with the given name, or nil.
func (e *Element) DeploymentNode(name string) *Element {
	return e.child(KindDeploymentNode, name)
}

func (e *Element) child(kind Kind, name string) *Element {
	for _, c := range e.children {
		if c.kind == kind && c.name == name {
			return c
		}
	}
	return nil
}

// Uses records a relationship from e to destination.
// See [Model.Uses].
func (e *Element) Uses(destination *Element, description string, opts ...RelationshipOption) (*Relationship, error) {
	return e.model.Uses(e, destination, description, opts...)
}

// InteractsWith records a relationship from a person to another person (or
// any element). It behaves exactly like [Element.Uses].
func (e *Element) InteractsWith(destination *Element, description string, opts ...RelationshipOption) (*Relationship, error) {
	return e.model.Uses(e, destination, description, opts...)
}

// Deploy records that element runs on deployment node e.
// See [Model.Deploy].
func (e *Element) Deploy(element *Element) (*Instance, error) {
	return e.model.Deploy(e, element)
}

// Ancestors returns the containment chain above e, nearest first.
func (e *Element) Ancestors() []*Element {
	var out []*Element
	for p := e.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// Descendants returns every element contained in e, transitively, in
// depth-first pre-order.
func (e *Element) Descendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(e)
	return out
}

// IsDescendantOf reports whether e is contained, transitively, in other.
func (e *Element) IsDescendantOf(other *Element) bool {
	for p := e.parent; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

// HostsAny reports whether deployment node e, or any of its descendant
// nodes, hosts an instance of one of elements.
func (e *Element) HostsAny(elements ...*Element) bool {
	if e.kind != KindDeploymentNode {
		return false
	}
	for _, inst := range e.instances {
		if slices.Contains(elements, inst.element) {
			return true
		}
	}
	for _, c := range e.children {
		if c.HostsAny(elements...) {
			return true
		}
	}
	return false
}
