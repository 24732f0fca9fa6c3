package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/matzehuels/archtower/pkg/errors"
)

// TestProperty_RandomModelsStayConsistent builds random models through the
// public API, including operations expected to fail, and checks that
// Validate passes and IDs stay unique.
func TestProperty_RandomModelsStayConsistent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := New()
		names := rapid.SampledFrom([]string{"a", "b", "c", "d"})

		numOps := rapid.IntRange(1, 80).Draw(rt, "numOps")
		for i := 0; i < numOps; i++ {
			all := m.Elements()
			pick := func(label string) *Element {
				if len(all) == 0 {
					return nil
				}
				return all[rapid.IntRange(0, len(all)-1).Draw(rt, label)]
			}

			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				_, _ = m.AddPerson(names.Draw(rt, "name"), "")
			case 1:
				_, _ = m.AddSoftwareSystem(names.Draw(rt, "name"), "")
			case 2:
				if p := pick("parent"); p != nil {
					_, _ = p.AddContainer(names.Draw(rt, "name"), "", "")
				}
			case 3:
				if p := pick("parent"); p != nil {
					_, _ = p.AddComponent(names.Draw(rt, "name"), "", "")
				}
			case 4:
				env := rapid.SampledFrom([]string{"DEV", "PROD"}).Draw(rt, "env")
				_, _ = m.AddDeploymentNode(nil, names.Draw(rt, "name"), "", "", env, 1)
			case 5:
				src, dst := pick("src"), pick("dst")
				_, _ = m.Uses(src, dst, "uses")
			case 6:
				node, el := pick("node"), pick("element")
				_, _ = m.Deploy(node, el)
			}
		}

		require.NoError(rt, m.Validate())

		seen := make(map[string]bool)
		for _, e := range m.Elements() {
			require.False(rt, seen[e.ID()], "duplicate element ID %s", e.ID())
			seen[e.ID()] = true
		}
		for _, r := range m.Relationships() {
			require.False(rt, seen[r.ID()], "duplicate relationship ID %s", r.ID())
			seen[r.ID()] = true
		}
	})
}

// TestProperty_NameConflictIsIdempotent checks that re-adding an existing
// name fails and leaves the model untouched.
func TestProperty_NameConflictIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := New()
		n := rapid.IntRange(1, 10).Draw(rt, "n")
		for i := 0; i < n; i++ {
			_, err := m.AddSoftwareSystem(fmt.Sprintf("sys-%d", i), "")
			require.NoError(rt, err)
		}
		before := m.ElementCount()

		dup := fmt.Sprintf("sys-%d", rapid.IntRange(0, n-1).Draw(rt, "dup"))
		_, err := m.AddSoftwareSystem(dup, "")
		require.True(rt, errors.Is(err, errors.ErrCodeNameConflict))
		_, err = m.AddPerson(dup, "")
		require.True(rt, errors.Is(err, errors.ErrCodeNameConflict))

		require.Equal(rt, before, m.ElementCount())
	})
}

// TestProperty_RelationshipIndexes checks that Outgoing, Incoming and
// Between agree with the ordered relationship list.
func TestProperty_RelationshipIndexes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := New()
		k := rapid.IntRange(1, 6).Draw(rt, "elements")
		els := make([]*Element, k)
		for i := range els {
			e, err := m.AddSoftwareSystem(fmt.Sprintf("s%d", i), "")
			require.NoError(rt, err)
			els[i] = e
		}

		edges := rapid.IntRange(0, 30).Draw(rt, "edges")
		for i := 0; i < edges; i++ {
			a := els[rapid.IntRange(0, k-1).Draw(rt, "a")]
			b := els[rapid.IntRange(0, k-1).Draw(rt, "b")]
			_, err := a.Uses(b, "x")
			require.NoError(rt, err)
		}
		require.Equal(rt, edges, m.RelationshipCount())

		for _, a := range els {
			var out, in int
			for _, r := range m.Relationships() {
				if r.Source() == a {
					out++
				}
				if r.Destination() == a {
					in++
				}
			}
			require.Len(rt, m.Outgoing(a), out)
			require.Len(rt, m.Incoming(a), in)

			for _, b := range els {
				for _, r := range m.Between(a, b) {
					require.Same(rt, a, r.Source())
					require.Same(rt, b, r.Destination())
				}
			}
		}
	})
}
