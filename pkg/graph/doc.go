// Package graph defines the JSON wire format for materialized views.
//
// A view snapshot references live model handles; this package flattens it
// into plain structs suitable for files, caches and other tools:
//
//	out := graph.FromSnapshot(snap, styles)
//	err := graph.WriteViewFile(out, "factory-context.json")
//
// Elements keep the order of the snapshot, relationships keep model order,
// and each entry carries its resolved style so that consumers do not need
// the style tables. Decoding with [ReadView] yields the same struct back.
package graph
