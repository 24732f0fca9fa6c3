package view

import (
	"strings"

	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/model"
)

// Kind selects which element kinds a view may contain and what its scope is.
type Kind int

const (
	// SystemLandscape shows every person and software system. No scope.
	SystemLandscape Kind = iota
	// SystemContext shows one software system and its surroundings.
	SystemContext
	// Container shows the containers of one software system.
	Container
	// Component shows the components of one container.
	Component
	// Deployment shows deployment nodes and the instances they host,
	// optionally scoped to one software system.
	Deployment
)

var kindNames = [...]string{
	SystemLandscape: "SystemLandscape",
	SystemContext:   "SystemContext",
	Container:       "Container",
	Component:       "Component",
	Deployment:      "Deployment",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name. Matching ignores case,
// spaces, dashes and a trailing "View".
func ParseKind(name string) (Kind, error) {
	norm := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
	norm = strings.TrimSuffix(norm, "view")
	for i, n := range kindNames {
		if strings.ToLower(n) == norm {
			return Kind(i), nil
		}
	}
	switch norm {
	case "landscape":
		return SystemLandscape, nil
	case "context":
		return SystemContext, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown view kind %q", name)
}

// scopeKind returns the element kind a view of kind k is scoped to.
// Deployment scopes are optional.
func (k Kind) scopeKind() (model.Kind, bool) {
	switch k {
	case SystemContext, Container, Deployment:
		return model.KindSoftwareSystem, true
	case Component:
		return model.KindContainer, true
	default:
		return 0, false
	}
}

// admits reports whether an element of kind ek may appear in a view of
// kind k.
func (k Kind) admits(ek model.Kind) bool {
	switch k {
	case SystemLandscape, SystemContext:
		return ek == model.KindPerson || ek == model.KindSoftwareSystem
	case Container:
		return ek == model.KindPerson || ek == model.KindSoftwareSystem || ek == model.KindContainer
	case Component:
		return ek == model.KindPerson || ek == model.KindSoftwareSystem ||
			ek == model.KindContainer || ek == model.KindComponent
	case Deployment:
		return ek == model.KindDeploymentNode
	default:
		return false
	}
}

// State is the lifecycle stage of a view.
type State int

const (
	// Created views have not been populated since creation.
	Created State = iota
	// Populated views have had elements added since the last snapshot.
	Populated
	// Frozen views have been handed out as a snapshot and not changed since.
	Frozen
)

func (s State) String() string {
	switch s {
	case Populated:
		return "populated"
	case Frozen:
		return "frozen"
	default:
		return "created"
	}
}
