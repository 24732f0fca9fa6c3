package model

// Kind discriminates the element variants of the model.
type Kind int

const (
	KindPerson Kind = iota
	KindSoftwareSystem
	KindContainer
	KindComponent
	KindDeploymentNode
)

// String returns the display name of the kind (e.g. "Software System").
func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "Person"
	case KindSoftwareSystem:
		return "Software System"
	case KindContainer:
		return "Container"
	case KindComponent:
		return "Component"
	case KindDeploymentNode:
		return "Deployment Node"
	default:
		return "Unknown"
	}
}

// Tag returns the built-in tag every element of this kind carries.
func (k Kind) Tag() Tag { return Tag(k.String()) }

// IsDeployable reports whether elements of this kind can be deployed on a
// deployment node.
func (k Kind) IsDeployable() bool {
	return k == KindSoftwareSystem || k == KindContainer || k == KindComponent
}

// Location classifies an element as inside or outside the modeled enterprise.
type Location int

const (
	LocationUnspecified Location = iota
	LocationInternal
	LocationExternal
)

func (l Location) String() string {
	switch l {
	case LocationInternal:
		return "Internal"
	case LocationExternal:
		return "External"
	default:
		return "Unspecified"
	}
}

// InteractionStyle describes how a relationship's source talks to its
// destination. It is descriptive only; the model itself is synchronous.
type InteractionStyle int

const (
	Synchronous InteractionStyle = iota
	Asynchronous
)

func (s InteractionStyle) String() string {
	if s == Asynchronous {
		return "Asynchronous"
	}
	return "Synchronous"
}

// Tag returns the built-in tag relationships with this style carry.
func (s InteractionStyle) Tag() Tag {
	if s == Asynchronous {
		return TagAsynchronous
	}
	return TagSynchronous
}
