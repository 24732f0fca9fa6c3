package view

import (
	"slices"

	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/style"
)

// ViewSet owns the views of one model and the style tables used to render
// them. View keys are unique across the set.
type ViewSet struct {
	model  *model.Model
	views  []*View
	byKey  map[string]*View
	styles *style.Styles
}

// New creates an empty view set over m.
func New(m *model.Model) *ViewSet {
	return &ViewSet{
		model:  m,
		byKey:  make(map[string]*View),
		styles: style.New(),
	}
}

// Model returns the model the views are computed from.
func (s *ViewSet) Model() *model.Model { return s.model }

// Styles returns the style tables shared by every view.
func (s *ViewSet) Styles() *style.Styles { return s.styles }

// Views returns every view in creation order.
func (s *ViewSet) Views() []*View { return slices.Clone(s.views) }

// View returns the view with the given key, or nil and false.
func (s *ViewSet) View(key string) (*View, bool) {
	v, ok := s.byKey[key]
	return v, ok
}

// CreateSystemLandscapeView creates an empty landscape view.
func (s *ViewSet) CreateSystemLandscapeView(key, description string) (*View, error) {
	return s.create(SystemLandscape, key, description, nil)
}

// CreateSystemContextView creates a context view around system. The view
// starts out holding system.
func (s *ViewSet) CreateSystemContextView(system *model.Element, key, description string) (*View, error) {
	v, err := s.create(SystemContext, key, description, system)
	if err != nil {
		return nil, err
	}
	v.include(system)
	v.sync()
	return v, nil
}

// CreateContainerView creates an empty container view of system. The
// system itself is drawn as the boundary and never included.
func (s *ViewSet) CreateContainerView(system *model.Element, key, description string) (*View, error) {
	return s.create(Container, key, description, system)
}

// CreateComponentView creates an empty component view of container.
func (s *ViewSet) CreateComponentView(container *model.Element, key, description string) (*View, error) {
	return s.create(Component, key, description, container)
}

// CreateDeploymentView creates an empty deployment view. A non-nil scope
// must be a software system; bulk inclusion is then restricted to nodes
// hosting it.
func (s *ViewSet) CreateDeploymentView(key, description string, scope *model.Element) (*View, error) {
	return s.create(Deployment, key, description, scope)
}

func (s *ViewSet) create(kind Kind, key, description string, scope *model.Element) (*View, error) {
	if err := errors.ValidateName("view key", key); err != nil {
		return nil, err
	}
	if _, ok := s.byKey[key]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateViewKey, "a view with key %q already exists", key)
	}
	if err := s.checkScope(kind, scope); err != nil {
		return nil, err
	}

	v := newView(s.model, kind, key, description, scope)
	s.views = append(s.views, v)
	s.byKey[key] = v
	return v, nil
}

func (s *ViewSet) checkScope(kind Kind, scope *model.Element) error {
	want, scoped := kind.scopeKind()
	if !scoped {
		return nil
	}
	if scope == nil {
		if kind == Deployment {
			return nil
		}
		return errors.New(errors.ErrCodeInvalidInput, "%s view needs a %s scope", kind, want)
	}
	if !s.model.Contains(scope) {
		return errors.New(errors.ErrCodeUnknownElement, "scope %q is not registered in this model", scope.Name())
	}
	if scope.Kind() != want {
		return errors.New(errors.ErrCodeInvalidInput,
			"%s view cannot be scoped to %s %q", kind, scope.Kind(), scope.Name())
	}
	return nil
}
