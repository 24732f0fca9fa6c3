package dsl

import (
	"fmt"
	"strings"

	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/style"
	"github.com/matzehuels/archtower/pkg/view"
	"github.com/matzehuels/archtower/pkg/workspace"
)

// Build creates the workspace described by f. Entries are applied in file
// order: people, systems, deployment nodes, relationships, styles, views.
// The first failing entry aborts the build; its error keeps the code
// reported by the model or view set.
func Build(f *File) (*workspace.Workspace, error) {
	opts, err := modelOptions(f)
	if err != nil {
		return nil, err
	}
	b := &builder{ws: workspace.New(f.Name, f.Description, opts...)}
	b.m = b.ws.Model

	for _, step := range []func(*File) error{
		b.people, b.systems, b.deployment, b.relationships, b.styles, b.views,
	} {
		if err := step(f); err != nil {
			return nil, err
		}
	}
	return b.ws, nil
}

func modelOptions(f *File) ([]model.Option, error) {
	var opts []model.Option
	switch strings.ToLower(f.IDs) {
	case "", "sequential":
	case "uuid":
		opts = append(opts, model.WithIDGenerator(model.UUIDs{}))
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "ids: unknown strategy %q (want sequential or uuid)", f.IDs)
	}
	switch strings.ToLower(f.Policy) {
	case "", "anywhere":
	case "once-per-parent":
		opts = append(opts, model.WithDeploymentPolicy(model.DeployOncePerParent))
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"deployment_policy: unknown policy %q (want anywhere or once-per-parent)", f.Policy)
	}
	return opts, nil
}

type builder struct {
	ws *workspace.Workspace
	m  *model.Model
}

func (b *builder) people(f *File) error {
	for i, p := range f.People {
		e, err := b.m.AddPerson(p.Name, p.Description)
		if err == nil {
			err = decorate(e, p.Location, p.URL, p.Tags, p.Properties)
		}
		if err != nil {
			return fmt.Errorf("people[%d] %q: %w", i, p.Name, err)
		}
	}
	return nil
}

func (b *builder) systems(f *File) error {
	for i, s := range f.Systems {
		if err := b.system(s); err != nil {
			return fmt.Errorf("systems[%d] %q: %w", i, s.Name, err)
		}
	}
	return nil
}

func (b *builder) system(s System) error {
	sys, err := b.m.AddSoftwareSystem(s.Name, s.Description)
	if err != nil {
		return err
	}
	if err := decorate(sys, s.Location, s.URL, s.Tags, s.Properties); err != nil {
		return err
	}
	for i, c := range s.Containers {
		ctr, err := sys.AddContainer(c.Name, c.Description, c.Technology)
		if err == nil {
			err = decorate(ctr, "", c.URL, c.Tags, c.Properties)
		}
		if err != nil {
			return fmt.Errorf("containers[%d] %q: %w", i, c.Name, err)
		}
		for j, k := range c.Components {
			cmp, err := ctr.AddComponent(k.Name, k.Description, k.Technology)
			if err == nil {
				err = decorate(cmp, "", k.URL, k.Tags, k.Properties)
			}
			if err != nil {
				return fmt.Errorf("containers[%d] %q: components[%d] %q: %w", i, c.Name, j, k.Name, err)
			}
		}
	}
	return nil
}

func (b *builder) deployment(f *File) error {
	for i, n := range f.Deployment {
		if err := b.node(nil, n); err != nil {
			return fmt.Errorf("deployment[%d] %q: %w", i, n.Name, err)
		}
	}
	return nil
}

func (b *builder) node(parent *model.Element, n Node) error {
	instances := 1
	if n.Instances != nil {
		instances = *n.Instances
	}
	node, err := b.m.AddDeploymentNode(parent, n.Name, n.Description, n.Technology, n.Environment, instances)
	if err != nil {
		return err
	}
	if err := decorate(node, "", "", n.Tags, n.Properties); err != nil {
		return err
	}
	for _, path := range n.Deploy {
		e, err := b.resolve(path)
		if err != nil {
			return err
		}
		if _, err := node.Deploy(e); err != nil {
			return err
		}
	}
	for i, c := range n.Children {
		if err := b.node(node, c); err != nil {
			return fmt.Errorf("children[%d] %q: %w", i, c.Name, err)
		}
	}
	return nil
}

func (b *builder) relationships(f *File) error {
	for i, r := range f.Relationships {
		if err := b.relationship(r); err != nil {
			return fmt.Errorf("relationships[%d] %s -> %s: %w", i, r.From, r.To, err)
		}
	}
	return nil
}

func (b *builder) relationship(r Relationship) error {
	src, err := b.resolve(r.From)
	if err != nil {
		return err
	}
	dst, err := b.resolve(r.To)
	if err != nil {
		return err
	}
	opts := []model.RelationshipOption{model.WithTechnology(r.Technology)}
	if r.Async {
		opts = append(opts, model.WithInteractionStyle(model.Asynchronous))
	}
	if len(r.Tags) > 0 {
		opts = append(opts, model.WithTags(tags(r.Tags)...))
	}
	_, err = b.m.Uses(src, dst, r.Description, opts...)
	return err
}

func (b *builder) styles(f *File) error {
	s := b.ws.Views.Styles()
	for i, r := range f.Styles.Elements {
		rule, err := elementStyle(r)
		if err == nil {
			err = s.AddElementStyle(rule)
		}
		if err != nil {
			return fmt.Errorf("styles.elements[%d]: %w", i, err)
		}
	}
	for i, r := range f.Styles.Relationships {
		rule, err := relationshipStyle(r)
		if err == nil {
			err = s.AddRelationshipStyle(rule)
		}
		if err != nil {
			return fmt.Errorf("styles.relationships[%d]: %w", i, err)
		}
	}
	return nil
}

func elementStyle(r ElementStyle) (style.ElementStyle, error) {
	rule := style.ElementStyle{
		Tags:       tags(r.Tags),
		Width:      r.Width,
		Height:     r.Height,
		Background: r.Background,
		Color:      r.Color,
		Stroke:     r.Stroke,
		FontSize:   r.FontSize,
		Opacity:    r.Opacity,
		Icon:       r.Icon,
	}
	if r.Shape != "" {
		shape, err := style.ParseShape(r.Shape)
		if err != nil {
			return rule, err
		}
		rule.Shape = &shape
	}
	if r.Border != "" {
		border, err := style.ParseBorder(r.Border)
		if err != nil {
			return rule, err
		}
		rule.Border = &border
	}
	return rule, nil
}

func relationshipStyle(r RelationshipStyle) (style.RelationshipStyle, error) {
	rule := style.RelationshipStyle{
		Tags:      tags(r.Tags),
		Thickness: r.Thickness,
		Color:     r.Color,
		Dashed:    r.Dashed,
		FontSize:  r.FontSize,
		Width:     r.Width,
		Position:  r.Position,
		Opacity:   r.Opacity,
	}
	if r.Routing != "" {
		routing, err := style.ParseRouting(r.Routing)
		if err != nil {
			return rule, err
		}
		rule.Routing = &routing
	}
	return rule, nil
}

func (b *builder) views(f *File) error {
	for i, v := range f.Views {
		if err := b.view(v); err != nil {
			return fmt.Errorf("views[%d] %q: %w", i, v.Key, err)
		}
	}
	return nil
}

func (b *builder) view(def View) error {
	kind, err := view.ParseKind(def.Kind)
	if err != nil {
		return err
	}
	var scope *model.Element
	if def.Scope != "" {
		if scope, err = b.resolve(def.Scope); err != nil {
			return err
		}
	}
	if def.Environment != "" && kind != view.Deployment {
		return errors.New(errors.ErrCodeInvalidInput, "environment only applies to deployment views")
	}

	vs := b.ws.Views
	var v *view.View
	switch kind {
	case view.SystemLandscape:
		v, err = vs.CreateSystemLandscapeView(def.Key, def.Description)
	case view.SystemContext:
		v, err = vs.CreateSystemContextView(scope, def.Key, def.Description)
	case view.Container:
		v, err = vs.CreateContainerView(scope, def.Key, def.Description)
	case view.Component:
		v, err = vs.CreateComponentView(scope, def.Key, def.Description)
	case view.Deployment:
		v, err = vs.CreateDeploymentView(def.Key, def.Description, scope)
	}
	if err != nil {
		return err
	}
	if def.Title != "" {
		v.SetTitle(def.Title)
	}
	v.SetEnvironment(def.Environment)

	for _, path := range def.Include {
		if path == "*" {
			includeDefaults(v)
			continue
		}
		e, err := b.resolve(path)
		if err != nil {
			return err
		}
		v.Add(e)
	}
	for _, path := range def.Neighbours {
		e, err := b.resolve(path)
		if err != nil {
			return err
		}
		v.AddNearestNeighbours(e)
	}
	for _, path := range def.Exclude {
		e, err := b.resolve(path)
		if err != nil {
			return err
		}
		v.Remove(e)
	}
	return nil
}

// includeDefaults applies the "*" include of v's kind.
func includeDefaults(v *view.View) {
	scope := v.Scope()
	switch v.Kind() {
	case view.SystemLandscape:
		v.AddAllElements()
	case view.SystemContext:
		v.AddNearestNeighbours(scope)
	case view.Container, view.Component:
		if v.Kind() == view.Container {
			v.AddAllContainers()
		} else {
			v.AddAllComponents()
		}
		v.AddNearestNeighbours(scope)
		for _, c := range scope.Children() {
			v.AddNearestNeighbours(c)
		}
	case view.Deployment:
		v.AddAllDeploymentNodes()
	}
}

// resolve looks up an element by path.
func (b *builder) resolve(path string) (*model.Element, error) {
	if env, rest, ok := strings.Cut(path, "::"); ok {
		if env == "" {
			env = model.DefaultEnvironment
		}
		parts := strings.Split(rest, "/")
		e := b.m.DeploymentNode(env, parts[0])
		for _, name := range parts[1:] {
			if e == nil {
				break
			}
			e = e.DeploymentNode(name)
		}
		if e == nil {
			return nil, errors.New(errors.ErrCodeUnknownElement, "no deployment node at %q", path)
		}
		return e, nil
	}

	parts := strings.Split(path, "/")
	if len(parts) > 3 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "path %q is deeper than system/container/component", path)
	}
	e := b.m.Person(parts[0])
	if e == nil {
		e = b.m.SoftwareSystem(parts[0])
	}
	if e != nil && len(parts) > 1 {
		e = e.Container(parts[1])
	}
	if e != nil && len(parts) > 2 {
		e = e.Component(parts[2])
	}
	if e == nil {
		return nil, errors.New(errors.ErrCodeUnknownElement, "no element at %q", path)
	}
	return e, nil
}

func decorate(e *model.Element, location, url string, tagNames []string, props map[string]string) error {
	switch strings.ToLower(location) {
	case "":
	case "internal":
		e.SetLocation(model.LocationInternal)
	case "external":
		e.SetLocation(model.LocationExternal)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown location %q (want internal or external)", location)
	}
	if url != "" {
		e.SetURL(url)
	}
	e.Tags().AddStrings(tagNames...)
	for k, v := range props {
		e.Properties()[k] = v
	}
	return nil
}

func tags(names []string) []model.Tag {
	out := make([]model.Tag, 0, len(names))
	for _, n := range names {
		out = append(out, model.Tag(n))
	}
	return out
}
