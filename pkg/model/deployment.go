package model

import (
	"slices"

	"github.com/matzehuels/archtower/pkg/errors"
)

// DeploymentPolicy decides whether one element may be deployed on several
// deployment nodes.
type DeploymentPolicy int

const (
	// DeployAnywhere permits deploying an element on any number of nodes,
	// since a container commonly runs on several.
	DeployAnywhere DeploymentPolicy = iota
	// DeployOncePerParent rejects deploying an element on a node when a
	// sibling node (same parent, same environment) already hosts it.
	DeployOncePerParent
)

func (p DeploymentPolicy) String() string {
	if p == DeployOncePerParent {
		return "once-per-parent"
	}
	return "anywhere"
}

// Instance records that a software system, container or component runs on
// a deployment node. The environment and instance count are copied from the
// hosting node when the instance is recorded.
type Instance struct {
	id          string
	element     *Element
	node        *Element
	environment string
	count       int
	ordinal     int
}

// ID returns the immutable identity of the instance.
func (i *Instance) ID() string { return i.id }

// Element returns the deployed element.
func (i *Instance) Element() *Element { return i.element }

// Node returns the hosting deployment node.
func (i *Instance) Node() *Element { return i.node }

// Environment returns the deployment environment.
func (i *Instance) Environment() string { return i.environment }

// Count returns the number of replicas, taken from the hosting node.
func (i *Instance) Count() int { return i.count }

// Ordinal numbers the instances of one element within one environment,
// starting at 1.
func (i *Instance) Ordinal() int { return i.ordinal }

// Deploy records that element runs on deployment node node and returns the
// instance.
//
// It fails with ErrCodeUnknownElement when either argument is not
// registered in m, and with ErrCodeNotDeployable when node is not a
// deployment node, when element is not a software system, container or
// component, or when the [DeployOncePerParent] policy is in effect and a
// sibling node already hosts element. Deploying the same element on the same
// node again returns the existing instance.
func (m *Model) Deploy(node, element *Element) (*Instance, error) {
	if !m.owns(node) {
		return nil, errors.New(errors.ErrCodeUnknownElement, "deployment node is not registered in this model")
	}
	if node.kind != KindDeploymentNode {
		return nil, errors.New(errors.ErrCodeNotDeployable,
			"%s %q is not a deployment node", node.kind, node.name)
	}
	if !m.owns(element) {
		return nil, errors.New(errors.ErrCodeUnknownElement,
			"element deployed on %q is not registered in this model", node.name)
	}
	if !element.kind.IsDeployable() {
		return nil, errors.New(errors.ErrCodeNotDeployable,
			"%s %q cannot be deployed", element.kind, element.name)
	}

	for _, inst := range node.instances {
		if inst.element == element {
			return inst, nil
		}
	}

	if m.policy == DeployOncePerParent {
		for _, sib := range m.siblingNodes(node) {
			if sib.hostsDirectly(element) {
				return nil, errors.New(errors.ErrCodeNotDeployable,
					"%q is already deployed on sibling node %q in environment %q",
					element.CanonicalName(), sib.name, node.environment)
			}
		}
	}

	ordinal := 1
	for _, inst := range m.instances {
		if inst.element == element && inst.environment == node.environment {
			ordinal++
		}
	}

	inst := &Instance{
		id:          m.ids.Next(),
		element:     element,
		node:        node,
		environment: node.environment,
		count:       node.instanceCount,
		ordinal:     ordinal,
	}
	node.instances = append(node.instances, inst)
	m.instances = append(m.instances, inst)
	return inst, nil
}

func (m *Model) siblingNodes(node *Element) []*Element {
	scope := m.topLevel
	if node.parent != nil {
		scope = node.parent.children
	}
	var out []*Element
	for _, s := range scope {
		if s != node && s.kind == KindDeploymentNode && s.environment == node.environment {
			out = append(out, s)
		}
	}
	return out
}

func (e *Element) hostsDirectly(element *Element) bool {
	return slices.ContainsFunc(e.instances, func(i *Instance) bool { return i.element == element })
}

// DeploymentInstances returns every deployment instance in insertion order.
func (m *Model) DeploymentInstances() []*Instance { return slices.Clone(m.instances) }

// InstancesOf returns the deployment instances of element, in insertion
// order.
func (m *Model) InstancesOf(element *Element) []*Instance {
	var out []*Instance
	for _, inst := range m.instances {
		if inst.element == element {
			out = append(out, inst)
		}
	}
	return out
}
