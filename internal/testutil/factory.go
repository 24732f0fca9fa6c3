// Package testutil builds the shared "Monkey Factory" workspace used by
// tests across packages.
package testutil

import (
	"testing"

	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/style"
	"github.com/matzehuels/archtower/pkg/view"
	"github.com/matzehuels/archtower/pkg/workspace"
)

// View keys of the fixture.
const (
	ContextView    = "factory-context"
	ContainerView  = "factory-containers"
	DeploymentView = "factory-deployment"
)

// Factory holds the fixture workspace and handles to its elements.
type Factory struct {
	Workspace *workspace.Workspace
	Model     *model.Model

	User, Admin *model.Element

	Factory                    *model.Element
	Ingress, Storage, Frontend *model.Element
	CRM                        *model.Element

	IngressNode, StorageNode *model.Element
}

// MonkeyFactory builds the model of the fixture without views.
func MonkeyFactory(t testing.TB) *Factory {
	t.Helper()
	must := func(e *model.Element, err error) *model.Element {
		t.Helper()
		if err != nil {
			t.Fatalf("build fixture: %v", err)
		}
		return e
	}
	rel := func(_ *model.Relationship, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("build fixture: %v", err)
		}
	}
	deploy := func(_ *model.Instance, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("build fixture: %v", err)
		}
	}

	ws := workspace.New("Monkey Factory", "")
	m := ws.Model
	f := &Factory{Workspace: ws, Model: m}

	f.User = must(m.AddPerson("User", "uses the system"))
	f.Admin = must(m.AddPerson("Admin", "administers the system and manages user"))
	rel(f.Admin.InteractsWith(f.User, "manages rights"))

	f.Factory = must(m.AddSoftwareSystem("Monkey Factory", "Oversees the production of stuffed monkey animals"))
	f.Factory.SetLocation(model.LocationInternal)

	f.Ingress = must(f.Factory.AddContainer("ingress", "accepts incoming telemetry data", "IoT Hub"))
	f.Ingress.Tags().Add("queue")
	f.Storage = must(f.Factory.AddContainer("storage", "stores telemetry data", "Table Storage"))
	f.Storage.Tags().Add("database")
	f.Frontend = must(f.Factory.AddContainer("frontend", "visualizes telemetry data", "React"))

	rel(f.Ingress.Uses(f.Storage, "store telemetry",
		model.WithTechnology("IoT Hub routing"), model.WithInteractionStyle(model.Asynchronous)))
	rel(f.Frontend.Uses(f.Storage, "load telemetry data", model.WithTechnology("Table Storage SDK")))

	f.CRM = must(m.AddSoftwareSystem("CRM system", "manage tickets"))
	f.CRM.SetLocation(model.LocationExternal)
	rel(f.Factory.Uses(f.CRM, "Create tickets",
		model.WithTechnology("AMQP"), model.WithInteractionStyle(model.Asynchronous)))

	rel(f.User.Uses(f.Factory, "view dashboards"))
	rel(f.User.Uses(f.Frontend, "view dashboards"))
	rel(f.Admin.Uses(f.Factory, "configure users"))
	rel(f.Admin.Uses(f.Frontend, "configure users"))
	rel(f.Admin.Uses(f.CRM, "work on tickets"))

	f.IngressNode = must(m.AddDeploymentNode(nil, "IoT Hub", "Ingress", "Azure IoT Hub", "DEV", 2))
	deploy(f.IngressNode.Deploy(f.Ingress))

	f.StorageNode = must(m.AddDeploymentNode(nil, "Storage", "Storage",
		"Azure Storage Account with web hosting enabled", "DEV", 1))
	deploy(f.StorageNode.Deploy(f.Storage))
	deploy(f.StorageNode.Deploy(f.Frontend))

	return f
}

// MonkeyFactoryWithViews builds the fixture model plus its context,
// container and deployment views and styles.
func MonkeyFactoryWithViews(t testing.TB) *Factory {
	t.Helper()
	f := MonkeyFactory(t)
	vs := f.Workspace.Views

	ctx, err := vs.CreateSystemContextView(f.Factory, ContextView, "The system context view for the monkey factory")
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	ctx.AddNearestNeighbours(f.Factory)

	containers, err := vs.CreateContainerView(f.Factory, ContainerView, "Container view for the monkey factory")
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	containers.AddAllContainers()
	containers.AddNearestNeighbours(f.Factory)

	deployment, err := vs.CreateDeploymentView(DeploymentView, "The deployment view of the monkey factory", f.Factory)
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}
	deployment.AddAllDeploymentNodes()

	AddStyles(t, vs)
	return f
}

// AddStyles registers the fixture styles: databases as cylinders, queues
// as pipes and asynchronous relationships dashed.
func AddStyles(t testing.TB, vs *view.ViewSet) {
	t.Helper()
	s := vs.Styles()
	for _, err := range []error{
		s.AddElementStyle(style.ElementStyle{Tags: []model.Tag{"database"}, Shape: style.Ptr(style.Cylinder)}),
		s.AddElementStyle(style.ElementStyle{Tags: []model.Tag{"queue"}, Shape: style.Ptr(style.Pipe)}),
		s.AddRelationshipStyle(style.RelationshipStyle{Tags: []model.Tag{model.TagAsynchronous}, Dashed: style.Ptr(true)}),
		s.AddRelationshipStyle(style.RelationshipStyle{Tags: []model.Tag{model.TagSynchronous}, Dashed: style.Ptr(false)}),
	} {
		if err != nil {
			t.Fatalf("build fixture styles: %v", err)
		}
	}
}
