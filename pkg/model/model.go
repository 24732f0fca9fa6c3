package model

import (
	"slices"

	"github.com/matzehuels/archtower/pkg/errors"
)

// DefaultEnvironment is the environment of deployment nodes created
// without one.
const DefaultEnvironment = "Default"

// Model is the architecture model: the element registry, the relationship
// graph and the containment hierarchy bundled as one owned aggregate.
//
// The zero value is not usable - use [New].
// Model is not safe for concurrent use without external synchronization.
type Model struct {
	ids    IDGenerator
	policy DeploymentPolicy

	elements map[string]*Element
	order    []*Element // every element, insertion order
	topLevel []*Element // parentless elements, insertion order

	relationships []*Relationship
	relByID       map[string]*Relationship
	outgoing      map[string][]*Relationship // element ID -> relationships starting there
	incoming      map[string][]*Relationship // element ID -> relationships ending there
	involving     map[string][]*Relationship // element ID -> relationships touching it

	instances []*Instance
}

// Option configures a Model.
type Option func(*Model)

// WithIDGenerator selects the identity strategy. The default is
// [SequentialIDs].
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Model) {
		if g != nil {
			m.ids = g
		}
	}
}

// WithDeploymentPolicy selects the duplicate-deployment policy. The default
// is [DeployAnywhere].
func WithDeploymentPolicy(p DeploymentPolicy) Option {
	return func(m *Model) { m.policy = p }
}

// New creates an empty model.
func New(opts ...Option) *Model {
	m := &Model{
		ids:       &SequentialIDs{},
		policy:    DeployAnywhere,
		elements:  make(map[string]*Element),
		relByID:   make(map[string]*Relationship),
		outgoing:  make(map[string][]*Relationship),
		incoming:  make(map[string][]*Relationship),
		involving: make(map[string][]*Relationship),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DeploymentPolicy returns the duplicate-deployment policy in effect.
func (m *Model) DeploymentPolicy() DeploymentPolicy { return m.policy }

// AddPerson registers a top-level person. People and software systems
// share one name scope.
func (m *Model) AddPerson(name, description string) (*Element, error) {
	return m.add(&Element{kind: KindPerson, name: name, description: description})
}

// AddSoftwareSystem registers a top-level software system.
func (m *Model) AddSoftwareSystem(name, description string) (*Element, error) {
	return m.add(&Element{kind: KindSoftwareSystem, name: name, description: description})
}

// AddDeploymentNode registers a deployment node. A nil parent creates a
// top-level node; otherwise parent must be a deployment node of the same
// environment (an empty environment inherits the parent's). Names are unique
// per parent and, for top-level nodes, per environment. The instance count
// is stored as given and must be at least one.
func (m *Model) AddDeploymentNode(parent *Element, name, description, technology, environment string, instances int) (*Element, error) {
	if parent != nil {
		if !m.owns(parent) {
			return nil, errors.New(errors.ErrCodeUnknownElement,
				"parent of deployment node %q is not registered in this model", name)
		}
		if parent.kind != KindDeploymentNode {
			return nil, errors.New(errors.ErrCodeInvalidParent,
				"cannot add deployment node %q to %s %q", name, parent.kind, parent.name)
		}
		if environment == "" {
			environment = parent.environment
		}
		if environment != parent.environment {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"deployment node %q environment %q differs from parent environment %q",
				name, environment, parent.environment)
		}
	}
	if environment == "" {
		environment = DefaultEnvironment
	}
	if instances < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"deployment node %q: instance count must be at least 1, got %d", name, instances)
	}
	return m.add(&Element{
		kind:          KindDeploymentNode,
		name:          name,
		description:   description,
		technology:    technology,
		parent:        parent,
		environment:   environment,
		instanceCount: instances,
	})
}

// add validates and registers e. Nothing is mutated unless it succeeds.
func (m *Model) add(e *Element) (*Element, error) {
	if err := errors.ValidateName(e.kind.String()+" name", e.name); err != nil {
		return nil, err
	}
	if existing := m.sibling(e); existing != nil {
		if e.parent == nil {
			return nil, errors.New(errors.ErrCodeNameConflict,
				"a %s named %q already exists", existing.kind, e.name)
		}
		return nil, errors.New(errors.ErrCodeNameConflict,
			"a %s named %q already exists in %q", existing.kind, e.name, e.parent.CanonicalName())
	}

	e.id = m.ids.Next()
	e.model = m
	e.tags = NewTagSet(TagElement, e.kind.Tag())
	e.properties = make(map[string]string)

	m.elements[e.id] = e
	m.order = append(m.order, e)
	if e.parent != nil {
		e.parent.children = append(e.parent.children, e)
	} else {
		m.topLevel = append(m.topLevel, e)
	}
	return e, nil
}

// sibling returns the element that would share e's name in e's scope.
func (m *Model) sibling(e *Element) *Element {
	scope := m.topLevel
	if e.parent != nil {
		scope = e.parent.children
	}
	for _, s := range scope {
		if s.name != e.name || !sameScope(s, e) {
			continue
		}
		return s
	}
	return nil
}

func sameScope(a, b *Element) bool {
	switch b.kind {
	case KindPerson, KindSoftwareSystem:
		return a.kind == KindPerson || a.kind == KindSoftwareSystem
	case KindDeploymentNode:
		return a.kind == KindDeploymentNode && a.environment == b.environment
	default:
		return a.kind == b.kind
	}
}

// owns reports whether e is a live handle registered in m.
func (m *Model) owns(e *Element) bool {
	return e != nil && m.elements[e.id] == e
}

// Contains reports whether e is registered in this model.
func (m *Model) Contains(e *Element) bool { return m.owns(e) }

// Element returns the element with the given ID, or nil and false.
func (m *Model) Element(id string) (*Element, bool) {
	e, ok := m.elements[id]
	return e, ok
}

// Elements returns every element in registration order.
func (m *Model) Elements() []*Element { return slices.Clone(m.order) }

// ElementCount returns the number of registered elements.
func (m *Model) ElementCount() int { return len(m.order) }

// ElementsOfKind returns every element of kind k in registration order.
func (m *Model) ElementsOfKind(k Kind) []*Element {
	var out []*Element
	for _, e := range m.order {
		if e.kind == k {
			out = append(out, e)
		}
	}
	return out
}

// People returns every person in registration order.
func (m *Model) People() []*Element { return m.topLevelOfKind(KindPerson) }

// SoftwareSystems returns every software system in registration order.
func (m *Model) SoftwareSystems() []*Element { return m.topLevelOfKind(KindSoftwareSystem) }

// DeploymentNodes returns the top-level deployment nodes of every
// environment in registration order.
func (m *Model) DeploymentNodes() []*Element { return m.topLevelOfKind(KindDeploymentNode) }

// Environments returns the distinct deployment environments in order of
// first use.
func (m *Model) Environments() []string {
	var envs []string
	for _, n := range m.DeploymentNodes() {
		if !slices.Contains(envs, n.environment) {
			envs = append(envs, n.environment)
		}
	}
	return envs
}

func (m *Model) topLevelOfKind(k Kind) []*Element {
	var out []*Element
	for _, e := range m.topLevel {
		if e.kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Person returns the person with the given name, or nil.
func (m *Model) Person(name string) *Element { return m.topLevelNamed(KindPerson, name) }

// SoftwareSystem returns the software system with the given name, or nil.
func (m *Model) SoftwareSystem(name string) *Element {
	return m.topLevelNamed(KindSoftwareSystem, name)
}

// DeploymentNode returns the top-level deployment node with the given name
// in environment, or nil.
func (m *Model) DeploymentNode(environment, name string) *Element {
	for _, e := range m.topLevel {
		if e.kind == KindDeploymentNode && e.environment == environment && e.name == name {
			return e
		}
	}
	return nil
}

func (m *Model) topLevelNamed(k Kind, name string) *Element {
	for _, e := range m.topLevel {
		if e.kind == k && e.name == name {
			return e
		}
	}
	return nil
}

// Uses records a directed relationship from source to destination and
// returns it. Both endpoints must be registered in m, otherwise the call
// fails with ErrCodeUnknownElement. Any kinds may be related, deployment
// nodes included. Duplicates and self-loops are recorded as given.
func (m *Model) Uses(source, destination *Element, description string, opts ...RelationshipOption) (*Relationship, error) {
	if !m.owns(source) {
		return nil, errors.New(errors.ErrCodeUnknownElement, "relationship source is not registered in this model")
	}
	if !m.owns(destination) {
		return nil, errors.New(errors.ErrCodeUnknownElement, "relationship destination is not registered in this model")
	}

	cfg := relationshipConfig{style: Synchronous}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Relationship{
		id:          m.ids.Next(),
		source:      source,
		destination: destination,
		description: description,
		technology:  cfg.technology,
		style:       cfg.style,
		tags:        NewTagSet(TagRelationship, cfg.style.Tag()),
	}
	r.tags.Add(cfg.tags...)

	m.relationships = append(m.relationships, r)
	m.relByID[r.id] = r
	m.outgoing[source.id] = append(m.outgoing[source.id], r)
	m.incoming[destination.id] = append(m.incoming[destination.id], r)
	m.involving[source.id] = append(m.involving[source.id], r)
	if destination != source {
		m.involving[destination.id] = append(m.involving[destination.id], r)
	}
	return r, nil
}

// Relationship returns the relationship with the given ID, or nil and false.
func (m *Model) Relationship(id string) (*Relationship, bool) {
	r, ok := m.relByID[id]
	return r, ok
}

// Relationships returns every relationship in insertion order.
func (m *Model) Relationships() []*Relationship { return slices.Clone(m.relationships) }

// RelationshipCount returns the number of recorded relationships.
func (m *Model) RelationshipCount() int { return len(m.relationships) }

// Outgoing returns the relationships starting at e, in insertion order.
func (m *Model) Outgoing(e *Element) []*Relationship {
	if e == nil {
		return nil
	}
	return slices.Clone(m.outgoing[e.id])
}

// Incoming returns the relationships ending at e, in insertion order.
func (m *Model) Incoming(e *Element) []*Relationship {
	if e == nil {
		return nil
	}
	return slices.Clone(m.incoming[e.id])
}

// RelationshipsOf returns the relationships starting or ending at e, in
// insertion order. Self-loops appear once.
func (m *Model) RelationshipsOf(e *Element) []*Relationship {
	if e == nil {
		return nil
	}
	return slices.Clone(m.involving[e.id])
}

// Between returns the relationships from a to b, in insertion order.
// The direction matters: Between(b, a) returns the reverse edges.
func (m *Model) Between(a, b *Element) []*Relationship {
	if a == nil || b == nil {
		return nil
	}
	var out []*Relationship
	for _, r := range m.outgoing[a.id] {
		if r.destination == b {
			out = append(out, r)
		}
	}
	return out
}

// Neighbours returns the elements directly related to e in either
// direction, in relationship insertion order, without duplicates.
func (m *Model) Neighbours(e *Element) []*Element {
	var out []*Element
	for _, r := range m.RelationshipsOf(e) {
		if o := r.Other(e); !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	return out
}
