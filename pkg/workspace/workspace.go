// Package workspace bundles a model with its views and styles.
//
// A Workspace is the unit loaded from a definition file and handed to the
// rendering pipeline. It owns exactly one [model.Model] and one
// [view.ViewSet] built over it; nothing is shared between workspaces.
package workspace

import (
	"github.com/google/uuid"

	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/view"
)

// Workspace is a named model plus the views derived from it.
type Workspace struct {
	ID          string
	Name        string
	Description string
	Model       *model.Model
	Views       *view.ViewSet
}

// New creates an empty workspace with a random ID. The options configure
// the underlying model.
func New(name, description string, opts ...model.Option) *Workspace {
	m := model.New(opts...)
	return &Workspace{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Model:       m,
		Views:       view.New(m),
	}
}

// Snapshots freezes every view, in creation order, and returns the
// snapshots. When keys are given only those views are returned, in the
// order requested; unknown keys fail with ErrCodeViewNotFound.
func (w *Workspace) Snapshots(keys ...string) ([]*view.Snapshot, error) {
	if len(keys) == 0 {
		var out []*view.Snapshot
		for _, v := range w.Views.Views() {
			out = append(out, v.Snapshot())
		}
		return out, nil
	}
	out := make([]*view.Snapshot, 0, len(keys))
	for _, k := range keys {
		v, ok := w.Views.View(k)
		if !ok {
			return nil, errors.New(errors.ErrCodeViewNotFound, "workspace %q has no view %q", w.Name, k)
		}
		out = append(out, v.Snapshot())
	}
	return out, nil
}

// Validate checks the structural integrity of the model.
func (w *Workspace) Validate() error { return w.Model.Validate() }
