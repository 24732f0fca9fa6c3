// Package view derives diagram views from an architecture model.
//
// # Overview
//
// A [ViewSet] owns the views of one [model.Model]. Each [View] has a kind,
// a unique key and, depending on the kind, a scope element:
//
//	vs := view.New(m)
//	ctx, _ := vs.CreateSystemContextView(factory, "factory-context", "")
//	ctx.AddNearestNeighbours(factory)
//	snap := ctx.Snapshot()
//
// # Inclusion
//
// A view is a set of elements keyed by identity. Elements enter it one by
// one ([View.Add]), through nearest-neighbour expansion
// ([View.AddNearestNeighbours]) or in bulk ([View.AddAllContainers],
// [View.AddAllDeploymentNodes], ...). Each kind admits certain element kinds
// and silently skips the others:
//
//   - SystemLandscape, SystemContext: people and software systems
//   - Container: people, software systems and containers; the scope system is
//     the diagram boundary and is never included
//   - Component: as Container plus components; the scope container is the
//     boundary
//   - Deployment: deployment nodes, with their hosted instances
//
// Relationships are never added by hand. After each change the view holds
// every model relationship whose endpoints are both included. Deployment
// views also hold relationships between elements deployed by the instances
// they show, and between such an element and an included node.
//
// # Determinism
//
// Elements keep inclusion order, neighbours are discovered in relationship
// insertion order and relationships follow model order. The same sequence of
// calls on the same model always yields the same snapshot.
//
// # Lifecycle
//
// Views move from Created to Populated on the first change and to Frozen when
// [View.Snapshot] hands out a copy. Any later change re-opens the view.
// Snapshots are not updated by later changes to the view or model.
package view
