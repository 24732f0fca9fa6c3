package model

import (
	"slices"
	"testing"
)

func TestTagSet(t *testing.T) {
	tests := []struct {
		name string
		add  []Tag
		want []string
	}{
		{"Empty", nil, nil},
		{"Order", []Tag{"b", "a", "c"}, []string{"b", "a", "c"}},
		{"Duplicates", []Tag{"a", "b", "a"}, []string{"a", "b"}},
		{"Trimmed", []Tag{" a ", "a", ""}, []string{"a"}},
		{"CaseSensitive", []Tag{"Database", "database"}, []string{"Database", "database"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTagSet(tt.add...)
			got := s.Strings()
			if len(got) != len(tt.want) || (len(got) > 0 && !slices.Equal(got, tt.want)) {
				t.Errorf("Strings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagSetOperations(t *testing.T) {
	s := NewTagSet("Element", "Container")
	s.AddStrings("database, not split", "queue")

	if !s.Has("queue") || s.Has("Queue") {
		t.Error("Has() is not exact")
	}
	if !s.HasAny("x", "Container") || s.HasAny("x", "y") {
		t.Error("HasAny() wrong")
	}

	s.Remove("Container")
	if s.Has("Container") || s.Len() != 3 {
		t.Errorf("after Remove: %v", s)
	}

	u := s.Union(NewTagSet("queue", "extra"))
	if got := u.String(); got != "Element,database, not split,queue,extra" {
		t.Errorf("Union().String() = %q", got)
	}
	if s.Len() != 3 {
		t.Error("Union mutated the receiver")
	}

	var nilSet *TagSet
	if nilSet.Has("x") || nilSet.Len() != 0 || nilSet.List() != nil {
		t.Error("nil TagSet should behave as empty")
	}
}

func TestElementTagsAreLive(t *testing.T) {
	m := New()
	sys := mustElement(t)(m.AddSoftwareSystem("Factory", ""))
	db := mustElement(t)(sys.AddContainer("storage", "", "Table Storage"))
	db.Tags().Add("database")

	if got := db.Tags().Strings(); !slices.Equal(got, []string{"Element", "Container", "database"}) {
		t.Errorf("Tags() = %v", got)
	}
}
