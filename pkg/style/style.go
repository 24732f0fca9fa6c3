package style

import (
	"slices"

	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/model"
)

// Ptr returns a pointer to v. Style attributes are pointers so that an unset
// attribute can be told apart from a zero value.
func Ptr[T any](v T) *T { return &v }

// ElementStyle is a rule for elements. Nil attributes are left unchanged.
type ElementStyle struct {
	Tags []model.Tag

	Shape      *Shape
	Width      *int
	Height     *int
	Background *string
	Color      *string
	Stroke     *string
	FontSize   *int
	Border     *Border
	Opacity    *int
	Icon       *string
}

// RelationshipStyle is a rule for relationships. Nil attributes are left
// unchanged.
type RelationshipStyle struct {
	Tags []model.Tag

	Thickness *int
	Color     *string
	Dashed    *bool
	Routing   *Routing
	FontSize  *int
	Width     *int
	Position  *int
	Opacity   *int
}

// ElementAttributes is a fully resolved element style.
type ElementAttributes struct {
	Shape      Shape
	Width      int
	Height     int
	Background string
	Color      string
	Stroke     string
	FontSize   int
	Border     Border
	Opacity    int
	Icon       string
}

// RelationshipAttributes is a fully resolved relationship style.
type RelationshipAttributes struct {
	Thickness int
	Color     string
	Dashed    bool
	Routing   Routing
	FontSize  int
	Width     int
	Position  int
	Opacity   int
}

// DefaultElement returns the attributes of an element no rule matches.
func DefaultElement() ElementAttributes {
	return ElementAttributes{
		Shape:      Box,
		Width:      450,
		Height:     300,
		Background: "#dddddd",
		Color:      "#000000",
		FontSize:   24,
		Border:     Solid,
		Opacity:    100,
	}
}

// DefaultRelationship returns the attributes of a relationship no rule
// matches.
func DefaultRelationship() RelationshipAttributes {
	return RelationshipAttributes{
		Thickness: 2,
		Color:     "#707070",
		FontSize:  24,
		Width:     200,
		Position:  50,
		Routing:   Direct,
		Opacity:   100,
	}
}

// Styles holds the ordered element and relationship rule tables.
// The zero value is an empty, usable table.
type Styles struct {
	elements      []ElementStyle
	relationships []RelationshipStyle
}

// New returns empty style tables.
func New() *Styles { return &Styles{} }

// AddElementStyle appends an element rule. It fails with
// ErrCodeInvalidInput when the selector has no tags.
func (s *Styles) AddElementStyle(rule ElementStyle) error {
	tags, err := selector(rule.Tags)
	if err != nil {
		return err
	}
	rule.Tags = tags
	s.elements = append(s.elements, rule)
	return nil
}

// AddRelationshipStyle appends a relationship rule. It fails with
// ErrCodeInvalidInput when the selector has no tags.
func (s *Styles) AddRelationshipStyle(rule RelationshipStyle) error {
	tags, err := selector(rule.Tags)
	if err != nil {
		return err
	}
	rule.Tags = tags
	s.relationships = append(s.relationships, rule)
	return nil
}

func selector(tags []model.Tag) ([]model.Tag, error) {
	set := model.NewTagSet(tags...)
	if set.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "style rule needs at least one tag")
	}
	return set.List(), nil
}

// ElementStyles returns the element rules in insertion order.
func (s *Styles) ElementStyles() []ElementStyle { return slices.Clone(s.elements) }

// RelationshipStyles returns the relationship rules in insertion order.
func (s *Styles) RelationshipStyles() []RelationshipStyle {
	return slices.Clone(s.relationships)
}

// ResolveElement computes the attributes for an element carrying tags.
func (s *Styles) ResolveElement(tags *model.TagSet) ElementAttributes {
	a := DefaultElement()
	if s == nil {
		return a
	}
	for _, r := range s.elements {
		if !tags.HasAny(r.Tags...) {
			continue
		}
		set(&a.Shape, r.Shape)
		set(&a.Width, r.Width)
		set(&a.Height, r.Height)
		set(&a.Background, r.Background)
		set(&a.Color, r.Color)
		set(&a.Stroke, r.Stroke)
		set(&a.FontSize, r.FontSize)
		set(&a.Border, r.Border)
		set(&a.Opacity, r.Opacity)
		set(&a.Icon, r.Icon)
	}
	return a
}

// ResolveRelationship computes the attributes for a relationship carrying
// tags.
func (s *Styles) ResolveRelationship(tags *model.TagSet) RelationshipAttributes {
	a := DefaultRelationship()
	if s == nil {
		return a
	}
	for _, r := range s.relationships {
		if !tags.HasAny(r.Tags...) {
			continue
		}
		set(&a.Thickness, r.Thickness)
		set(&a.Color, r.Color)
		set(&a.Dashed, r.Dashed)
		set(&a.Routing, r.Routing)
		set(&a.FontSize, r.FontSize)
		set(&a.Width, r.Width)
		set(&a.Position, r.Position)
		set(&a.Opacity, r.Opacity)
	}
	return a
}

// ForElement resolves the style of e.
func (s *Styles) ForElement(e *model.Element) ElementAttributes {
	return s.ResolveElement(e.Tags())
}

// ForRelationship resolves the style of r.
func (s *Styles) ForRelationship(r *model.Relationship) RelationshipAttributes {
	return s.ResolveRelationship(r.Tags())
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
