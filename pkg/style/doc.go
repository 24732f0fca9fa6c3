// Package style resolves visual attributes for elements and relationships
// from their tags.
//
// # Overview
//
// A [Styles] value holds two ordered rule tables, one for elements and one
// for relationships. Each rule has a tag selector and a set of optional
// attributes:
//
//	s := style.New()
//	s.AddElementStyle(style.ElementStyle{
//	    Tags:  []model.Tag{"database"},
//	    Shape: style.Ptr(style.Cylinder),
//	})
//	s.AddRelationshipStyle(style.RelationshipStyle{
//	    Tags:   []model.Tag{model.TagAsynchronous},
//	    Dashed: style.Ptr(true),
//	})
//
// # Resolution
//
// [Styles.ResolveElement] and [Styles.ResolveRelationship] start from the
// defaults and walk the table in insertion order. A rule applies when any of
// its selector tags is in the tag set; every attribute the rule sets
// replaces the value accumulated so far. Later rules therefore win, and
// rules that set different attributes compose.
//
// Resolution never mutates the model. Styles are disposable and may be
// rebuilt at any time.
package style
