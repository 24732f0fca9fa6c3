package view

import "github.com/matzehuels/archtower/pkg/model"

// Snapshot is the materialized state of a view, handed to renderers.
// Its slices are copies; element and relationship handles are shared with
// the model.
type Snapshot struct {
	Kind          Kind
	Key           string
	Title         string
	Description   string
	Scope         *model.Element
	Environment   string
	Elements      []*model.Element
	Relationships []*model.Relationship
	Instances     []*model.Instance
}

// ScopeID returns the ID of the scope element, or "" when unscoped.
func (s *Snapshot) ScopeID() string {
	if s.Scope == nil {
		return ""
	}
	return s.Scope.ID()
}

// Contains reports whether e is one of the snapshot's elements.
func (s *Snapshot) Contains(e *model.Element) bool {
	for _, x := range s.Elements {
		if x == e {
			return true
		}
	}
	return false
}

// InstancesOn returns the instances hosted directly on node.
func (s *Snapshot) InstancesOn(node *model.Element) []*model.Instance {
	var out []*model.Instance
	for _, inst := range s.Instances {
		if inst.Node() == node {
			out = append(out, inst)
		}
	}
	return out
}
