package model

// Relationship is a directed, described edge between two elements.
// Several relationships may connect the same ordered pair; they are told
// apart by description and technology, never deduplicated.
type Relationship struct {
	id          string
	source      *Element
	destination *Element
	description string
	technology  string
	style       InteractionStyle
	tags        *TagSet
}

// ID returns the immutable identity of the relationship.
func (r *Relationship) ID() string { return r.id }

// Source returns the element the relationship starts at.
func (r *Relationship) Source() *Element { return r.source }

// Destination returns the element the relationship points to.
func (r *Relationship) Destination() *Element { return r.destination }

// Description returns what the source does with the destination.
func (r *Relationship) Description() string { return r.description }

// Technology returns the optional technology label (e.g. "HTTPS").
func (r *Relationship) Technology() string { return r.technology }

// InteractionStyle returns whether the interaction is synchronous.
func (r *Relationship) InteractionStyle() InteractionStyle { return r.style }

// Tags returns the live tag set of the relationship.
func (r *Relationship) Tags() *TagSet { return r.tags }

// Connects reports whether e is the source or the destination.
func (r *Relationship) Connects(e *Element) bool {
	return r.source == e || r.destination == e
}

// Other returns the endpoint opposite to e. For self-loops it returns e.
func (r *Relationship) Other(e *Element) *Element {
	if r.source == e {
		return r.destination
	}
	return r.source
}

// RelationshipOption configures a relationship recorded by [Model.Uses].
type RelationshipOption func(*relationshipConfig)

type relationshipConfig struct {
	technology string
	style      InteractionStyle
	tags       []Tag
}

// WithTechnology sets the technology label.
func WithTechnology(technology string) RelationshipOption {
	return func(c *relationshipConfig) { c.technology = technology }
}

// WithInteractionStyle sets the interaction style. The default is Synchronous.
func WithInteractionStyle(style InteractionStyle) RelationshipOption {
	return func(c *relationshipConfig) { c.style = style }
}

// WithTags adds custom tags after the built-in ones.
func WithTags(tags ...Tag) RelationshipOption {
	return func(c *relationshipConfig) { c.tags = append(c.tags, tags...) }
}
