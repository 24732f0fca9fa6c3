package graph

import (
	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/style"
	"github.com/matzehuels/archtower/pkg/view"
)

// View is the serialized form of a view snapshot.
type View struct {
	Key           string         `json:"key"`
	Kind          string         `json:"kind"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Scope         string         `json:"scope,omitempty"`
	Environment   string         `json:"environment,omitempty"`
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
	Instances     []Instance     `json:"instances,omitempty"`
}

// Element is one included element.
type Element struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Name        string            `json:"name"`
	Path        string            `json:"path"`
	Description string            `json:"description,omitempty"`
	Technology  string            `json:"technology,omitempty"`
	Parent      string            `json:"parent,omitempty"`
	Location    string            `json:"location,omitempty"`
	URL         string            `json:"url,omitempty"`
	Environment string            `json:"environment,omitempty"`
	Replicas    int               `json:"replicas,omitempty"`
	Tags        []string          `json:"tags"`
	Properties  map[string]string `json:"properties,omitempty"`
	Style       ElementStyle      `json:"style"`
}

// Relationship is one included relationship.
type Relationship struct {
	ID          string            `json:"id"`
	Source      string            `json:"source"`
	Destination string            `json:"destination"`
	Description string            `json:"description,omitempty"`
	Technology  string            `json:"technology,omitempty"`
	Interaction string            `json:"interaction"`
	Tags        []string          `json:"tags"`
	Style       RelationshipStyle `json:"style"`
}

// Instance is a deployed element on a deployment node.
type Instance struct {
	ID          string `json:"id"`
	Element     string `json:"element"`
	Node        string `json:"node"`
	Environment string `json:"environment"`
	Replicas    int    `json:"replicas"`
}

// ElementStyle is the resolved style of an element.
type ElementStyle struct {
	Shape      string `json:"shape"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	Color      string `json:"color"`
	Stroke     string `json:"stroke,omitempty"`
	FontSize   int    `json:"font_size"`
	Border     string `json:"border"`
	Opacity    int    `json:"opacity"`
	Icon       string `json:"icon,omitempty"`
}

// RelationshipStyle is the resolved style of a relationship.
type RelationshipStyle struct {
	Thickness int    `json:"thickness"`
	Color     string `json:"color"`
	Dashed    bool   `json:"dashed"`
	Routing   string `json:"routing"`
	FontSize  int    `json:"font_size"`
	Opacity   int    `json:"opacity"`
}

// FromSnapshot flattens a snapshot, resolving styles with styles. A nil
// styles table resolves to the defaults.
func FromSnapshot(snap *view.Snapshot, styles *style.Styles) View {
	out := View{
		Key:           snap.Key,
		Kind:          snap.Kind.String(),
		Title:         snap.Title,
		Description:   snap.Description,
		Scope:         snap.ScopeID(),
		Environment:   snap.Environment,
		Elements:      make([]Element, 0, len(snap.Elements)),
		Relationships: make([]Relationship, 0, len(snap.Relationships)),
	}
	for _, e := range snap.Elements {
		out.Elements = append(out.Elements, fromElement(e, styles.ForElement(e)))
	}
	for _, r := range snap.Relationships {
		out.Relationships = append(out.Relationships, fromRelationship(r, styles.ForRelationship(r)))
	}
	for _, inst := range snap.Instances {
		out.Instances = append(out.Instances, Instance{
			ID:          inst.ID(),
			Element:     inst.Element().ID(),
			Node:        inst.Node().ID(),
			Environment: inst.Environment(),
			Replicas:    inst.Count(),
		})
	}
	return out
}

func fromElement(e *model.Element, a style.ElementAttributes) Element {
	out := Element{
		ID:          e.ID(),
		Kind:        e.Kind().String(),
		Name:        e.Name(),
		Path:        e.CanonicalName(),
		Description: e.Description(),
		Technology:  e.Technology(),
		URL:         e.URL(),
		Environment: e.Environment(),
		Replicas:    e.InstanceCount(),
		Tags:        e.Tags().Strings(),
		Style: ElementStyle{
			Shape:      a.Shape.String(),
			Width:      a.Width,
			Height:     a.Height,
			Background: a.Background,
			Color:      a.Color,
			Stroke:     a.Stroke,
			FontSize:   a.FontSize,
			Border:     a.Border.String(),
			Opacity:    a.Opacity,
			Icon:       a.Icon,
		},
	}
	if p := e.Parent(); p != nil {
		out.Parent = p.ID()
	}
	if e.Location() != model.LocationUnspecified {
		out.Location = e.Location().String()
	}
	if len(e.Properties()) > 0 {
		out.Properties = e.Properties()
	}
	return out
}

func fromRelationship(r *model.Relationship, a style.RelationshipAttributes) Relationship {
	return Relationship{
		ID:          r.ID(),
		Source:      r.Source().ID(),
		Destination: r.Destination().ID(),
		Description: r.Description(),
		Technology:  r.Technology(),
		Interaction: r.InteractionStyle().String(),
		Tags:        r.Tags().Strings(),
		Style: RelationshipStyle{
			Thickness: a.Thickness,
			Color:     a.Color,
			Dashed:    a.Dashed,
			Routing:   a.Routing.String(),
			FontSize:  a.FontSize,
			Opacity:   a.Opacity,
		},
	}
}
