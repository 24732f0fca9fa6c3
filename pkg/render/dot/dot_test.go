package dot_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/archtower/internal/testutil"
	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/render/dot"
	"github.com/matzehuels/archtower/pkg/view"
)

func snapshot(t *testing.T, f *testutil.Factory, key string) *view.Snapshot {
	t.Helper()
	v, ok := f.Workspace.Views.View(key)
	if !ok {
		t.Fatalf("view %q missing", key)
	}
	return v.Snapshot()
}

// line returns the DOT statement declaring id.
func line(t *testing.T, src, id string) string {
	t.Helper()
	prefix := fmt.Sprintf("%q [", id)
	for _, l := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), prefix) {
			return l
		}
	}
	t.Fatalf("no statement for %s in:\n%s", id, src)
	return ""
}

// edge returns the DOT edge statement from a to b.
func edge(t *testing.T, src, a, b string) string {
	t.Helper()
	prefix := fmt.Sprintf("%q -> %q [", a, b)
	for _, l := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), prefix) {
			return l
		}
	}
	t.Fatalf("no edge %s -> %s in:\n%s", a, b, src)
	return ""
}

func id(e *model.Element) string { return "el_" + e.ID() }

func TestToDOTContainerView(t *testing.T) {
	f := testutil.MonkeyFactoryWithViews(t)
	snap := snapshot(t, f, testutil.ContainerView)
	src := dot.ToDOT(snap, f.Workspace.Views.Styles(), dot.Options{})

	if !strings.HasPrefix(src, `digraph "factory-containers" {`) {
		t.Errorf("unexpected header: %q", strings.SplitN(src, "\n", 2)[0])
	}
	if !strings.Contains(src, `label="Container view: Monkey Factory";`) {
		t.Error("missing title label")
	}
	if !strings.Contains(src, fmt.Sprintf("subgraph %q {", "cluster_"+f.Factory.ID())) {
		t.Error("missing scope cluster")
	}

	tests := []struct {
		el   *model.Element
		want []string
	}{
		{f.Storage, []string{"shape=cylinder", `label="storage\n[Container: Table Storage]\n\nstores telemetry data"`}},
		{f.Ingress, []string{"shape=cylinder", "orientation=90"}},
		{f.Frontend, []string{"shape=box", `fillcolor="#dddddd"`, "fontsize=24"}},
		{f.User, []string{`label="User\n[Person]\n\nuses the system"`}},
	}
	for _, tt := range tests {
		l := line(t, src, id(tt.el))
		for _, w := range tt.want {
			if !strings.Contains(l, w) {
				t.Errorf("%s: %q does not contain %s", tt.el.Name(), l, w)
			}
		}
	}

	if l := edge(t, src, id(f.Ingress), id(f.Storage)); !strings.Contains(l, "style=dashed") {
		t.Errorf("asynchronous edge not dashed: %s", l)
	}
	if l := edge(t, src, id(f.Frontend), id(f.Storage)); !strings.Contains(l, "style=solid") ||
		!strings.Contains(l, `[Table Storage SDK]`) {
		t.Errorf("synchronous edge: %s", l)
	}
	if strings.Contains(src, id(f.Factory)+`" [`) {
		t.Error("scope drawn as a node in a container view")
	}
}

func TestToDOTContextViewIsFlat(t *testing.T) {
	f := testutil.MonkeyFactoryWithViews(t)
	src := dot.ToDOT(snapshot(t, f, testutil.ContextView), f.Workspace.Views.Styles(), dot.Options{})

	if strings.Contains(src, "subgraph") {
		t.Error("context view should not contain clusters")
	}
	line(t, src, id(f.Factory))
	if l := edge(t, src, id(f.Factory), id(f.CRM)); !strings.Contains(l, "style=dashed") {
		t.Errorf("Factory -> CRM: %s", l)
	}
	if n := strings.Count(src, " -> "); n != 5 {
		t.Errorf("edges = %d, want 5", n)
	}
}

func TestToDOTDeploymentView(t *testing.T) {
	f := testutil.MonkeyFactoryWithViews(t)
	snap := snapshot(t, f, testutil.DeploymentView)
	src := dot.ToDOT(snap, f.Workspace.Views.Styles(), dot.Options{})

	for _, n := range []*model.Element{f.IngressNode, f.StorageNode} {
		if !strings.Contains(src, fmt.Sprintf("subgraph %q {", "cluster_"+n.ID())) {
			t.Errorf("missing cluster for %s", n.Name())
		}
	}
	if !strings.Contains(src, `label="IoT Hub\n[Deployment Node: Azure IoT Hub]\n\nx2";`) {
		t.Error("IoT Hub cluster label missing replica count")
	}

	inst := func(e *model.Element) string {
		insts := snap.Instances
		for _, i := range insts {
			if i.Element() == e {
				return "inst_" + i.ID()
			}
		}
		t.Fatalf("no instance of %s", e.Name())
		return ""
	}
	if l := line(t, src, inst(f.Ingress)); !strings.Contains(l, "x2") {
		t.Errorf("ingress instance label: %s", l)
	}
	if l := edge(t, src, inst(f.Ingress), inst(f.Storage)); !strings.Contains(l, "style=dashed") {
		t.Errorf("ingress -> storage: %s", l)
	}
	edge(t, src, inst(f.Frontend), inst(f.Storage))
	if n := strings.Count(src, " -> "); n != 2 {
		t.Errorf("edges = %d, want 2", n)
	}
}

func TestToDOTNestedNodes(t *testing.T) {
	m := model.New()
	sys, _ := m.AddSoftwareSystem("Shop", "")
	api, _ := sys.AddContainer("api", "", "Go")
	cloud, _ := m.AddDeploymentNode(nil, "Cloud", "", "", "PROD", 1)
	vm, _ := cloud.AddDeploymentNode("VM", "", "", 3)
	dr, _ := m.AddDeploymentNode(nil, "DR", "", "", "PROD", 1)
	if _, err := vm.Deploy(api); err != nil {
		t.Fatal(err)
	}
	if _, err := cloud.Uses(dr, "replicates to"); err != nil {
		t.Fatal(err)
	}

	v, err := view.New(m).CreateDeploymentView("prod", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	v.AddAllDeploymentNodes()
	src := dot.ToDOT(v.Snapshot(), nil, dot.Options{HideTitle: true})

	outer := strings.Index(src, fmt.Sprintf("subgraph %q", "cluster_"+cloud.ID()))
	inner := strings.Index(src, fmt.Sprintf("subgraph %q", "cluster_"+vm.ID()))
	if outer < 0 || inner < outer {
		t.Fatalf("VM cluster not nested in Cloud:\n%s", src)
	}
	if strings.Count(src, fmt.Sprintf("subgraph %q", "cluster_"+vm.ID())) != 1 {
		t.Error("nested cluster written twice")
	}
	l := edge(t, src, "anchor_"+cloud.ID(), "anchor_"+dr.ID())
	if !strings.Contains(l, fmt.Sprintf("lhead=%q", "cluster_"+dr.ID())) {
		t.Errorf("node edge not clipped to cluster: %s", l)
	}
	if strings.Contains(src, "labelloc") {
		t.Error("HideTitle still wrote a title")
	}
}

func TestToDOTNodeToInstanceEdges(t *testing.T) {
	m := model.New()
	user, _ := m.AddPerson("Operator", "")
	sys, _ := m.AddSoftwareSystem("Shop", "")
	api, _ := sys.AddContainer("api", "", "Go")
	vm, _ := m.AddDeploymentNode(nil, "VM", "", "", "PROD", 1)
	backup, _ := m.AddDeploymentNode(nil, "Backup", "", "", "PROD", 1)
	inst, err := vm.Deploy(api)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []struct{ from, to *model.Element }{{api, backup}, {backup, api}, {user, vm}} {
		if _, err := r.from.Uses(r.to, "x"); err != nil {
			t.Fatalf("%s -> %s: %v", r.from.Name(), r.to.Name(), err)
		}
	}

	v, _ := view.New(m).CreateDeploymentView("prod", "", nil)
	v.AddAllDeploymentNodes()
	snap := v.Snapshot()
	if len(snap.Relationships) != 2 {
		t.Fatalf("relationships = %d, want 2 (the person is not shown)", len(snap.Relationships))
	}
	src := dot.ToDOT(snap, nil, dot.Options{})

	out := edge(t, src, "inst_"+inst.ID(), "anchor_"+backup.ID())
	if !strings.Contains(out, fmt.Sprintf("lhead=%q", "cluster_"+backup.ID())) || strings.Contains(out, "ltail") {
		t.Errorf("instance -> node edge: %s", out)
	}
	in := edge(t, src, "anchor_"+backup.ID(), "inst_"+inst.ID())
	if !strings.Contains(in, fmt.Sprintf("ltail=%q", "cluster_"+backup.ID())) || strings.Contains(in, "lhead") {
		t.Errorf("node -> instance edge: %s", in)
	}
}

func TestToDOTOptions(t *testing.T) {
	f := testutil.MonkeyFactoryWithViews(t)
	snap := snapshot(t, f, testutil.ContextView)
	src := dot.ToDOT(snap, nil, dot.Options{Direction: "LR", HideDescriptions: true})

	if !strings.Contains(src, "rankdir=LR;") {
		t.Error("Direction ignored")
	}
	if strings.Contains(src, "uses the system") || strings.Contains(src, "view dashboards") {
		t.Error("HideDescriptions kept descriptions")
	}
	if l := edge(t, src, id(f.Factory), id(f.CRM)); !strings.Contains(l, `label="[AMQP]"`) {
		t.Errorf("technology dropped with description: %s", l)
	}
}

func TestRenderSVG(t *testing.T) {
	f := testutil.MonkeyFactoryWithViews(t)
	src := dot.ToDOT(snapshot(t, f, testutil.ContainerView), f.Workspace.Views.Styles(), dot.Options{})

	svg, err := dot.RenderSVG(context.Background(), src)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `viewBox="0 0 `) {
		t.Error("viewBox not normalized")
	}
	if !strings.Contains(s, "Monkey Factory") {
		t.Error("SVG missing scope label")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := dot.RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("expected error for truncated DOT")
	}
}
