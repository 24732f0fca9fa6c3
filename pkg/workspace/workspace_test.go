package workspace_test

import (
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/archtower/internal/testutil"
	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/workspace"
)

func keys(t *testing.T, ws *workspace.Workspace, sel ...string) []string {
	t.Helper()
	snaps, err := ws.Snapshots(sel...)
	if err != nil {
		t.Fatalf("Snapshots(%v): %v", sel, err)
	}
	var out []string
	for _, s := range snaps {
		out = append(out, s.Key)
	}
	return out
}

func TestNew(t *testing.T) {
	ws := workspace.New("Shop", "online store", model.WithIDGenerator(model.UUIDs{}))
	if _, err := uuid.Parse(ws.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", ws.ID, err)
	}
	if ws.Views.Model() != ws.Model {
		t.Error("view set is not built over the workspace model")
	}
	if other := workspace.New("Shop", ""); other.ID == ws.ID {
		t.Error("two workspaces share an ID")
	}
}

func TestSnapshots(t *testing.T) {
	ws := testutil.MonkeyFactoryWithViews(t).Workspace

	tests := []struct {
		name string
		sel  []string
		want []string
	}{
		{"All", nil, []string{testutil.ContextView, testutil.ContainerView, testutil.DeploymentView}},
		{"One", []string{testutil.DeploymentView}, []string{testutil.DeploymentView}},
		{"RequestOrder", []string{testutil.ContainerView, testutil.ContextView}, []string{testutil.ContainerView, testutil.ContextView}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys(t, ws, tt.sel...); !slices.Equal(got, tt.want) {
				t.Errorf("Snapshots(%v) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

func TestSnapshotsUnknownView(t *testing.T) {
	ws := testutil.MonkeyFactoryWithViews(t).Workspace
	_, err := ws.Snapshots(testutil.ContextView, "nope")
	if !errors.Is(err, errors.ErrCodeViewNotFound) {
		t.Errorf("err = %v, want VIEW_NOT_FOUND", err)
	}
}

func TestSnapshotsAreFrozen(t *testing.T) {
	f := testutil.MonkeyFactoryWithViews(t)
	snaps, err := f.Workspace.Snapshots(testutil.ContextView)
	if err != nil {
		t.Fatal(err)
	}
	before := len(snaps[0].Elements)

	v, _ := f.Workspace.Views.View(testutil.ContextView)
	v.Remove(f.CRM)
	if len(snaps[0].Elements) != before {
		t.Error("snapshot changed after the view was edited")
	}
}

func TestValidate(t *testing.T) {
	if err := testutil.MonkeyFactory(t).Workspace.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := workspace.New("empty", "").Validate(); err != nil {
		t.Errorf("Validate() on empty workspace = %v", err)
	}
}
