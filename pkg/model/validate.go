package model

import (
	"github.com/matzehuels/archtower/pkg/errors"
)

// Validate checks the structural integrity of the model and returns nil if
// it is consistent. It verifies that:
//
//  1. Every relationship and deployment instance references registered elements
//  2. Containment forms a forest: every element is reached exactly once when
//     walking down from the top-level elements, and no element contains itself
//
// The Add* methods maintain these invariants, so a failure indicates a bug
// rather than bad input. Validate returns an ErrCodeInconsistent error.
//
// The walk runs in O(N+E) time using depth-first search.
func (m *Model) Validate() error {
	for _, r := range m.relationships {
		if !m.owns(r.source) || !m.owns(r.destination) {
			return errors.New(errors.ErrCodeInconsistent, "relationship %s has an unregistered endpoint", r.id)
		}
	}
	for _, inst := range m.instances {
		if !m.owns(inst.node) || !m.owns(inst.element) {
			return errors.New(errors.ErrCodeInconsistent, "deployment instance %s has an unregistered endpoint", inst.id)
		}
	}
	return m.detectContainmentCycles()
}

func (m *Model) detectContainmentCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(m.elements))
	var bad *Element

	var dfs func(e *Element)
	dfs = func(e *Element) {
		color[e.id] = gray
		for _, c := range e.children {
			if c.parent != e {
				bad = c
				return
			}
			switch color[c.id] {
			case white:
				dfs(c)
				if bad != nil {
					return
				}
			default:
				bad = c
				return
			}
		}
		color[e.id] = black
	}

	for _, e := range m.topLevel {
		if e.parent != nil || color[e.id] != white {
			return errors.New(errors.ErrCodeInconsistent, "element %q is listed as top-level but has a parent", e.name)
		}
		dfs(e)
		if bad != nil {
			return errors.New(errors.ErrCodeInconsistent, "containment of %q is not a tree", bad.name)
		}
	}

	for id, e := range m.elements {
		if color[id] != black {
			return errors.New(errors.ErrCodeInconsistent, "element %q is not reachable from a top-level element", e.name)
		}
	}
	return nil
}
