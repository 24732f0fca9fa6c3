package view

import (
	"slices"

	"github.com/matzehuels/archtower/pkg/model"
)

// View is a named, typed inclusion set over a model. Elements are added
// explicitly or in bulk; relationships follow automatically: after every
// change the view holds each model relationship whose endpoints are both
// included, in model insertion order.
//
// Operations on a view are total. Elements from another model, or of a kind
// the view does not admit, are skipped.
type View struct {
	model       *model.Model
	kind        Kind
	key         string
	title       string
	description string
	scope       *model.Element
	environment string
	state       State

	elements      []*model.Element
	included      map[*model.Element]struct{}
	relationships []*model.Relationship
	instances     []*model.Instance
}

func newView(m *model.Model, kind Kind, key, description string, scope *model.Element) *View {
	return &View{
		model:       m,
		kind:        kind,
		key:         key,
		description: description,
		scope:       scope,
		included:    make(map[*model.Element]struct{}),
	}
}

// Kind returns the view kind.
func (v *View) Kind() Kind { return v.kind }

// Key returns the unique view key.
func (v *View) Key() string { return v.key }

// Description returns the view description.
func (v *View) Description() string { return v.description }

// Scope returns the scoped element, or nil for landscape and unscoped
// deployment views.
func (v *View) Scope() *model.Element { return v.scope }

// Environment returns the deployment environment filter, empty for none.
func (v *View) Environment() string { return v.environment }

// State returns the lifecycle state.
func (v *View) State() State { return v.state }

// SetTitle overrides the generated title.
func (v *View) SetTitle(title string) { v.title = title }

// Title returns the explicit title, or one generated from kind, scope and
// environment.
func (v *View) Title() string {
	if v.title != "" {
		return v.title
	}
	switch v.kind {
	case SystemLandscape:
		return "System Landscape"
	case SystemContext:
		return "System Context view: " + v.scope.Name()
	case Container:
		return "Container view: " + v.scope.Name()
	case Component:
		return "Component view: " + v.scope.CanonicalName()
	}
	t := "Deployment view"
	if v.scope != nil {
		t += ": " + v.scope.Name()
	}
	if v.environment != "" {
		t += " - " + v.environment
	}
	return t
}

// SetEnvironment restricts a deployment view to one environment. Included
// nodes of other environments are dropped. An empty environment lifts the
// restriction. It has no effect on other kinds.
func (v *View) SetEnvironment(env string) {
	if v.kind != Deployment {
		return
	}
	v.environment = env
	if env == "" {
		return
	}
	for _, e := range v.Elements() {
		if e.Environment() != env {
			v.drop(e)
		}
	}
	v.touch()
}

// Elements returns the included elements in inclusion order.
func (v *View) Elements() []*model.Element { return slices.Clone(v.elements) }

// Relationships returns the included relationships in model order.
func (v *View) Relationships() []*model.Relationship { return slices.Clone(v.relationships) }

// Instances returns the deployment instances shown by a deployment view.
func (v *View) Instances() []*model.Instance { return slices.Clone(v.instances) }

// Contains reports whether e is included.
func (v *View) Contains(e *model.Element) bool {
	_, ok := v.included[e]
	return ok
}

// Add includes e. In deployment views adding a node also includes its
// ancestors, so it is drawn nested, and its descendants.
func (v *View) Add(e *model.Element) {
	if v.kind == Deployment && v.admits(e) {
		for _, a := range slices.Backward(e.Ancestors()) {
			v.include(a)
		}
		v.include(e)
		for _, d := range e.Descendants() {
			v.include(d)
		}
	} else {
		v.include(e)
	}
	v.touch()
}

// Remove drops e, and for deployment nodes its descendants, from the view.
// The model is not changed.
func (v *View) Remove(e *model.Element) {
	if !v.Contains(e) {
		return
	}
	v.drop(e)
	v.touch()
}

func (v *View) drop(e *model.Element) {
	gone := map[*model.Element]bool{e: true}
	if e.Kind() == model.KindDeploymentNode {
		for _, d := range e.Descendants() {
			gone[d] = true
		}
	}
	v.elements = slices.DeleteFunc(v.elements, func(x *model.Element) bool { return gone[x] })
	for x := range gone {
		delete(v.included, x)
	}
}

// AddAllPeople includes every person.
func (v *View) AddAllPeople() {
	for _, p := range v.model.People() {
		v.include(p)
	}
	v.touch()
}

// AddAllSoftwareSystems includes every software system except the scope of
// container and component views.
func (v *View) AddAllSoftwareSystems() {
	for _, s := range v.model.SoftwareSystems() {
		v.include(s)
	}
	v.touch()
}

// AddAllContainers includes the containers of the scope system in container
// views, or the sibling containers of the scope in component views.
func (v *View) AddAllContainers() {
	switch v.kind {
	case Container:
		v.includeAll(v.scope.Children())
	case Component:
		v.includeAll(v.scope.Parent().Children())
	}
	v.touch()
}

// AddAllComponents includes the components of the scope container in
// component views.
func (v *View) AddAllComponents() {
	if v.kind == Component {
		v.includeAll(v.scope.Children())
	}
	v.touch()
}

// AddAllElements includes everything the view kind shows by default:
// people and software systems, plus the containers or components of the
// scope, or the deployment nodes of deployment views.
func (v *View) AddAllElements() {
	if v.kind == Deployment {
		v.AddAllDeploymentNodes()
		return
	}
	v.AddAllPeople()
	v.AddAllSoftwareSystems()
	v.AddAllContainers()
	v.AddAllComponents()
}

// AddNearestNeighbours includes e and every element directly related to e
// in either direction, in relationship insertion order. It does not follow
// relationships any further and does not look at containment. An element
// with no relationships is added alone.
//
// An element the view cannot show is ignored, neighbours included. The
// scope of a container or component view is the exception: it is drawn as
// the boundary, so its neighbours are added around it.
func (v *View) AddNearestNeighbours(e *model.Element) {
	boundary := e != nil && e == v.scope && (v.kind == Container || v.kind == Component)
	if !boundary && !v.admits(e) {
		return
	}
	v.include(e)
	for _, n := range v.model.Neighbours(e) {
		v.include(n)
	}
	v.touch()
}

// AddAllDeploymentNodes includes every top-level deployment node with its
// descendants and the instances they host, honouring the environment filter.
// A scoped view only includes nodes that host, directly or through a child,
// an instance of the scope system or one of its containers or components.
func (v *View) AddAllDeploymentNodes() {
	if v.kind != Deployment {
		return
	}
	hosted := v.hosted()

	var walk func(n *model.Element)
	walk = func(n *model.Element) {
		if hosted != nil && !n.HostsAny(hosted...) {
			return
		}
		v.include(n)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, n := range v.model.DeploymentNodes() {
		if v.environment != "" && n.Environment() != v.environment {
			continue
		}
		walk(n)
	}
	v.touch()
}

// hosted returns the scope system and its descendants, or nil when the view
// is unscoped.
func (v *View) hosted() []*model.Element {
	if v.scope == nil {
		return nil
	}
	return append([]*model.Element{v.scope}, v.scope.Descendants()...)
}

func (v *View) includeAll(es []*model.Element) {
	for _, e := range es {
		v.include(e)
	}
}

func (v *View) include(e *model.Element) {
	if !v.admits(e) || v.Contains(e) {
		return
	}
	v.included[e] = struct{}{}
	v.elements = append(v.elements, e)
}

func (v *View) admits(e *model.Element) bool {
	if e == nil || !v.model.Contains(e) || !v.kind.admits(e.Kind()) {
		return false
	}
	if (v.kind == Container || v.kind == Component) && e == v.scope {
		return false
	}
	if v.kind == Deployment && v.environment != "" && e.Environment() != v.environment {
		return false
	}
	return true
}

// touch re-opens the view after an inclusion change.
func (v *View) touch() {
	v.state = Populated
	v.sync()
}

// sync recomputes instances and relationships from the inclusion set.
func (v *View) sync() {
	v.instances = nil
	deployed := make(map[*model.Element]bool)
	if v.kind == Deployment {
		hosted := v.hosted()
		for _, n := range v.elements {
			for _, inst := range n.Instances() {
				if hosted != nil && !slices.Contains(hosted, inst.Element()) {
					continue
				}
				v.instances = append(v.instances, inst)
				deployed[inst.Element()] = true
			}
		}
	}

	// Deployed elements are shown through their instances, so a relationship
	// between a node and a deployed element is part of a deployment view.
	shown := func(e *model.Element) bool { return v.Contains(e) || deployed[e] }
	v.relationships = nil
	for _, r := range v.model.Relationships() {
		if shown(r.Source()) && shown(r.Destination()) {
			v.relationships = append(v.relationships, r)
		}
	}
}

// Snapshot freezes the view and returns a copy of its current state.
// Later changes to the view do not affect the snapshot.
func (v *View) Snapshot() *Snapshot {
	v.state = Frozen
	s := &Snapshot{
		Kind:          v.kind,
		Key:           v.key,
		Title:         v.Title(),
		Description:   v.description,
		Scope:         v.scope,
		Environment:   v.environment,
		Elements:      v.Elements(),
		Relationships: v.Relationships(),
		Instances:     v.Instances(),
	}
	return s
}
