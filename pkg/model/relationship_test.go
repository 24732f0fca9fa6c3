package model

import (
	"slices"
	"testing"

	"github.com/matzehuels/archtower/pkg/errors"
)

func TestUsesRecordsDuplicatesInOrder(t *testing.T) {
	m := New()
	a := mustElement(t)(m.AddPerson("A", ""))
	b := mustElement(t)(m.AddSoftwareSystem("B", ""))

	r1, err := a.Uses(b, "reads")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := a.Uses(b, "reads")
	if err != nil {
		t.Fatal(err)
	}

	if r1 == r2 || r1.ID() == r2.ID() {
		t.Fatal("duplicate relationships were merged")
	}
	if got := m.Between(a, b); !slices.Equal(got, []*Relationship{r1, r2}) {
		t.Errorf("Between(a, b) = %v, want [r1 r2]", got)
	}
	if got := m.Between(b, a); len(got) != 0 {
		t.Errorf("Between(b, a) = %v, want none", got)
	}
	if m.RelationshipCount() != 2 {
		t.Errorf("RelationshipCount() = %d, want 2", m.RelationshipCount())
	}
}

func TestUsesOptions(t *testing.T) {
	m := New()
	a := mustElement(t)(m.AddSoftwareSystem("A", ""))
	b := mustElement(t)(m.AddSoftwareSystem("B", ""))

	r, err := a.Uses(b, "create tickets",
		WithTechnology("AMQP"),
		WithInteractionStyle(Asynchronous),
		WithTags("critical"))
	if err != nil {
		t.Fatal(err)
	}

	if r.Technology() != "AMQP" {
		t.Errorf("Technology() = %q, want AMQP", r.Technology())
	}
	if r.InteractionStyle() != Asynchronous {
		t.Errorf("InteractionStyle() = %v, want Asynchronous", r.InteractionStyle())
	}
	want := []string{"Relationship", "Asynchronous", "critical"}
	if got := r.Tags().Strings(); !slices.Equal(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}

	sync, _ := b.Uses(a, "ack")
	if sync.InteractionStyle() != Synchronous || !sync.Tags().Has(TagSynchronous) {
		t.Error("default interaction style should be Synchronous")
	}
}

func TestUsesUnknownElement(t *testing.T) {
	m := New()
	other := New()
	a := mustElement(t)(m.AddPerson("A", ""))
	foreign := mustElement(t)(other.AddPerson("B", ""))

	tests := []struct {
		name string
		src  *Element
		dst  *Element
	}{
		{name: "NilDestination", src: a, dst: nil},
		{name: "NilSource", src: nil, dst: a},
		{name: "ForeignDestination", src: a, dst: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Uses(tt.src, tt.dst, "x")
			if !errors.Is(err, errors.ErrCodeUnknownElement) {
				t.Errorf("err = %v, want UNKNOWN_ELEMENT", err)
			}
			if m.RelationshipCount() != 0 {
				t.Errorf("RelationshipCount() = %d after failure, want 0", m.RelationshipCount())
			}
		})
	}
}

func TestUsesDeploymentNode(t *testing.T) {
	m := New()
	user := mustElement(t)(m.AddPerson("User", ""))
	a := mustElement(t)(m.AddSoftwareSystem("A", ""))
	n1 := mustElement(t)(m.AddDeploymentNode(nil, "N1", "", "", "", 1))
	n2 := mustElement(t)(m.AddDeploymentNode(nil, "N2", "", "", "", 1))

	tests := []struct {
		name     string
		src, dst *Element
	}{
		{"person to node", user, n1},
		{"system to node", a, n1},
		{"node to system", n1, a},
		{"node to node", n1, n2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.src.Uses(tt.dst, "ssh")
			if err != nil {
				t.Fatalf("Uses() error = %v", err)
			}
			if got := m.Between(tt.src, tt.dst); len(got) != 1 || got[0] != r {
				t.Errorf("Between() = %v, want [%v]", got, r)
			}
		})
	}
}

func TestRelationshipQueries(t *testing.T) {
	m := New()
	user := mustElement(t)(m.AddPerson("User", ""))
	admin := mustElement(t)(m.AddPerson("Admin", ""))
	sys := mustElement(t)(m.AddSoftwareSystem("Factory", ""))

	r1, _ := user.Uses(sys, "view dashboards")
	r2, _ := admin.InteractsWith(user, "manages rights")
	r3, _ := sys.Uses(user, "notifies")
	r4, _ := user.Uses(user, "talks to self")

	tests := []struct {
		name string
		got  []*Relationship
		want []*Relationship
	}{
		{"Outgoing", m.Outgoing(user), []*Relationship{r1, r4}},
		{"Incoming", m.Incoming(user), []*Relationship{r2, r3, r4}},
		{"RelationshipsOf", m.RelationshipsOf(user), []*Relationship{r1, r2, r3, r4}},
		{"Relationships", m.Relationships(), []*Relationship{r1, r2, r3, r4}},
		{"OutgoingNil", m.Outgoing(nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %d relationships, want %d", len(tt.got), len(tt.want))
			}
		})
	}

	if got := m.Neighbours(user); !slices.Equal(got, []*Element{sys, admin, user}) {
		t.Errorf("Neighbours(user) = %v, want [Factory Admin User]", got)
	}
	if r, ok := m.Relationship(r2.ID()); !ok || r != r2 {
		t.Error("Relationship(id) lookup failed")
	}
	if r2.Other(admin) != user || r4.Other(user) != user {
		t.Error("Other() returned the wrong endpoint")
	}
}
