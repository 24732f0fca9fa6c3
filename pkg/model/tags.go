package model

import (
	"slices"
	"strings"
)

// Tag labels an element or relationship. Tags select styling rules.
type Tag string

// Built-in tags assigned on creation.
const (
	TagElement        Tag = "Element"
	TagPerson         Tag = "Person"
	TagSoftwareSystem Tag = "Software System"
	TagContainer      Tag = "Container"
	TagComponent      Tag = "Component"
	TagDeploymentNode Tag = "Deployment Node"

	TagRelationship Tag = "Relationship"
	TagSynchronous  Tag = "Synchronous"
	TagAsynchronous Tag = "Asynchronous"
)

// TagSet is an insertion-ordered set of tags. Tags are case-sensitive and
// surrounding whitespace is trimmed; empty tags are ignored.
//
// The zero value is an empty, usable set.
type TagSet struct {
	tags []Tag
}

// NewTagSet returns a set holding tags in first-occurrence order.
func NewTagSet(tags ...Tag) *TagSet {
	s := &TagSet{}
	s.Add(tags...)
	return s
}

// Add appends tags not yet present, keeping first-insertion order.
func (s *TagSet) Add(tags ...Tag) {
	for _, t := range tags {
		t = Tag(strings.TrimSpace(string(t)))
		if t == "" || s.Has(t) {
			continue
		}
		s.tags = append(s.tags, t)
	}
}

// AddStrings is Add for plain strings.
func (s *TagSet) AddStrings(tags ...string) {
	for _, t := range tags {
		s.Add(Tag(t))
	}
}

// Remove deletes a tag if present.
func (s *TagSet) Remove(t Tag) {
	s.tags = slices.DeleteFunc(s.tags, func(x Tag) bool { return x == t })
}

// Has reports whether t is in the set.
func (s *TagSet) Has(t Tag) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.tags, t)
}

// HasAny reports whether any of tags is in the set.
func (s *TagSet) HasAny(tags ...Tag) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (s *TagSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tags)
}

// List returns the tags in insertion order. The slice is a copy.
func (s *TagSet) List() []Tag {
	if s == nil {
		return nil
	}
	return slices.Clone(s.tags)
}

// Strings returns the tags as plain strings in insertion order.
func (s *TagSet) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = string(t)
	}
	return out
}

// Union returns a new set with the tags of s followed by the tags of other
// not already in s.
func (s *TagSet) Union(other *TagSet) *TagSet {
	out := NewTagSet(s.List()...)
	out.Add(other.List()...)
	return out
}

// String joins the tags with commas, the conventional textual form.
func (s *TagSet) String() string {
	return strings.Join(s.Strings(), ",")
}
