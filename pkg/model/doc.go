// Package model provides the architecture model graph: the element registry,
// the relationship graph and the containment hierarchy.
//
// # Overview
//
// A [Model] owns every element and relationship of an architecture. Elements
// are people, software systems, containers, components and deployment nodes;
// relationships are directed, described edges between them. Containment
// (a software system owning containers, a container owning components, a
// deployment node owning child nodes and deployment instances) is tracked
// separately from relationships.
//
// # Basic Usage
//
// Create a model with [New], register elements with the Add* methods, and
// relate them with [Element.Uses]:
//
//	m := model.New()
//	user, _ := m.AddPerson("User", "uses the system")
//	sys, _ := m.AddSoftwareSystem("Monkey Factory", "produces stuffed monkeys")
//	web, _ := sys.AddContainer("frontend", "visualizes telemetry", "React")
//	user.Uses(web, "view dashboards")
//
// Every Add* call fails with an errors.ErrCodeNameConflict error when an element
// with the same name already exists in the same scope. Failed calls never
// change the model.
//
// # Element Kinds
//
// [Element] is a single struct discriminated by [Kind]. Operations that only
// make sense for some kinds (AddContainer on a software system, Deploy on a
// deployment node) check the kind at runtime and return an error otherwise.
//
// # Identity
//
// Element, relationship and instance IDs are allocated by an [IDGenerator].
// The default [SequentialIDs] strategy yields "1", "2", ... which keeps
// diagram output deterministic; [UUIDs] yields random UUIDs.
//
// # Ordering
//
// All queries return fresh slices in insertion order. Repeating a query on an
// unchanged model returns the same sequence, which the view engine relies on
// for deterministic output.
//
// # Concurrency
//
// Model instances are not safe for concurrent use. Callers must serialize
// mutations; read-only queries on an unchanged model may run in parallel.
package model
