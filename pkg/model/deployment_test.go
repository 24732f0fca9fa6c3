package model

import (
	"slices"
	"testing"

	"github.com/matzehuels/archtower/pkg/errors"
)

func TestDeploy(t *testing.T) {
	m := New()
	sys := mustElement(t)(m.AddSoftwareSystem("Factory", ""))
	ingress := mustElement(t)(sys.AddContainer("ingress", "", "IoT Hub"))
	hub := mustElement(t)(m.AddDeploymentNode(nil, "IoT Hub", "Ingress", "Azure IoT Hub", "DEV", 2))

	inst, err := hub.Deploy(ingress)
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if inst.Element() != ingress || inst.Node() != hub {
		t.Error("instance endpoints are wrong")
	}
	if inst.Environment() != "DEV" {
		t.Errorf("Environment() = %q, want DEV", inst.Environment())
	}
	if inst.Count() != 2 {
		t.Errorf("Count() = %d, want 2", inst.Count())
	}
	if inst.Ordinal() != 1 {
		t.Errorf("Ordinal() = %d, want 1", inst.Ordinal())
	}
	if got := hub.Instances(); !slices.Equal(got, []*Instance{inst}) {
		t.Errorf("Instances() = %v", got)
	}

	again, err := hub.Deploy(ingress)
	if err != nil || again != inst {
		t.Errorf("redeploy on same node = (%v, %v), want existing instance", again, err)
	}
	if n := len(m.DeploymentInstances()); n != 1 {
		t.Errorf("DeploymentInstances() len = %d, want 1", n)
	}
}

func TestDeployErrors(t *testing.T) {
	m := New()
	user := mustElement(t)(m.AddPerson("User", ""))
	sys := mustElement(t)(m.AddSoftwareSystem("Factory", ""))
	api := mustElement(t)(sys.AddContainer("api", "", ""))
	node := mustElement(t)(m.AddDeploymentNode(nil, "Server", "", "", "DEV", 1))
	other := mustElement(t)(m.AddDeploymentNode(nil, "Other", "", "", "DEV", 1))
	foreign := mustElement(t)(New().AddSoftwareSystem("Foreign", ""))

	tests := []struct {
		name    string
		node    *Element
		element *Element
		code    errors.Code
	}{
		{"PersonNotDeployable", node, user, errors.ErrCodeNotDeployable},
		{"NodeNotDeployable", node, other, errors.ErrCodeNotDeployable},
		{"HostNotNode", api, sys, errors.ErrCodeNotDeployable},
		{"ForeignElement", node, foreign, errors.ErrCodeUnknownElement},
		{"NilElement", node, nil, errors.ErrCodeUnknownElement},
		{"NilNode", nil, api, errors.ErrCodeUnknownElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Deploy(tt.node, tt.element)
			if !errors.Is(err, tt.code) {
				t.Errorf("Deploy() error = %v, want %s", err, tt.code)
			}
		})
	}

	if n := len(m.DeploymentInstances()); n != 0 {
		t.Errorf("DeploymentInstances() len = %d after failures, want 0", n)
	}
}

func TestDeployPolicy(t *testing.T) {
	setup := func(p DeploymentPolicy) (*Model, *Element, *Element, *Element, *Element) {
		m := New(WithDeploymentPolicy(p))
		sys, _ := m.AddSoftwareSystem("Factory", "")
		api, _ := sys.AddContainer("api", "", "")
		a, _ := m.AddDeploymentNode(nil, "A", "", "", "DEV", 1)
		b, _ := m.AddDeploymentNode(nil, "B", "", "", "DEV", 1)
		prod, _ := m.AddDeploymentNode(nil, "A", "", "", "PROD", 1)
		return m, api, a, b, prod
	}

	t.Run("Anywhere", func(t *testing.T) {
		m, api, a, b, _ := setup(DeployAnywhere)
		i1, err := a.Deploy(api)
		if err != nil {
			t.Fatal(err)
		}
		i2, err := b.Deploy(api)
		if err != nil {
			t.Fatalf("second node: %v", err)
		}
		if i1.Ordinal() != 1 || i2.Ordinal() != 2 {
			t.Errorf("ordinals = %d, %d, want 1, 2", i1.Ordinal(), i2.Ordinal())
		}
		if got := m.InstancesOf(api); !slices.Equal(got, []*Instance{i1, i2}) {
			t.Errorf("InstancesOf() = %v", got)
		}
	})

	t.Run("OncePerParent", func(t *testing.T) {
		m, api, a, b, prod := setup(DeployOncePerParent)
		if m.DeploymentPolicy() != DeployOncePerParent {
			t.Fatalf("DeploymentPolicy() = %v", m.DeploymentPolicy())
		}
		if _, err := a.Deploy(api); err != nil {
			t.Fatal(err)
		}
		if _, err := b.Deploy(api); !errors.Is(err, errors.ErrCodeNotDeployable) {
			t.Errorf("sibling deploy error = %v, want NOT_DEPLOYABLE", err)
		}
		// A different environment is not a sibling.
		inst, err := prod.Deploy(api)
		if err != nil {
			t.Fatalf("other environment: %v", err)
		}
		if inst.Ordinal() != 1 {
			t.Errorf("Ordinal() in PROD = %d, want 1", inst.Ordinal())
		}
	})
}

func TestHostsAny(t *testing.T) {
	m := New()
	sys := mustElement(t)(m.AddSoftwareSystem("Factory", ""))
	api := mustElement(t)(sys.AddContainer("api", "", ""))
	db := mustElement(t)(sys.AddContainer("db", "", ""))
	cloud := mustElement(t)(m.AddDeploymentNode(nil, "Cloud", "", "", "DEV", 1))
	vm := mustElement(t)(cloud.AddDeploymentNode("VM", "", "", 1))
	if _, err := vm.Deploy(api); err != nil {
		t.Fatal(err)
	}

	if !cloud.HostsAny(api) {
		t.Error("Cloud should host api through VM")
	}
	if cloud.HostsAny(db) {
		t.Error("Cloud should not host db")
	}
	if !cloud.HostsAny(append([]*Element{sys}, sys.Descendants()...)...) {
		t.Error("Cloud should host a descendant of Factory")
	}
	if sys.HostsAny(api) {
		t.Error("non-node elements host nothing")
	}
}

func TestEnvironments(t *testing.T) {
	m := New()
	mustElement(t)(m.AddDeploymentNode(nil, "A", "", "", "PROD", 1))
	mustElement(t)(m.AddDeploymentNode(nil, "B", "", "", "DEV", 1))
	mustElement(t)(m.AddDeploymentNode(nil, "C", "", "", "PROD", 1))

	if got := m.Environments(); !slices.Equal(got, []string{"PROD", "DEV"}) {
		t.Errorf("Environments() = %v, want [PROD DEV]", got)
	}
	if m.DeploymentNode("DEV", "B") == nil || m.DeploymentNode("PROD", "B") != nil {
		t.Error("DeploymentNode lookup ignored the environment")
	}
}
