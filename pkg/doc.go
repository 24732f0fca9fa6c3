// Package pkg provides the core libraries for Archtower architecture diagrams.
//
// # Overview
//
// Archtower models software architecture in the C4 style: people and
// software systems, the containers inside a system, the components inside a
// container, and the deployment nodes that run them. Views select a subset of
// the model for one diagram, and styles decide how each element and
// relationship is drawn.
//
// # Architecture
//
// The typical data flow through Archtower:
//
//	workspace.toml / workspace.yaml
//	         ↓
//	    [dsl] package (decode + build)
//	         ↓
//	    [workspace] package (model + views)
//	         ↓
//	    [view] package (snapshot)
//	         ↓
//	    [render/dot] package (DOT → Graphviz)
//	         ↓
//	    DOT/SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Build a model in code and render its context view:
//
//	ws := workspace.New("Shop", "")
//	user, _ := ws.Model.AddPerson("Customer", "buys things")
//	shop, _ := ws.Model.AddSoftwareSystem("Shop", "sells things")
//	user.Uses(shop, "buys from")
//
//	v, _ := ws.Views.CreateSystemContextView(shop, "context", "")
//	v.AddNearestNeighbours(shop)
//
//	src := dot.ToDOT(v.Snapshot(), ws.Views.Styles(), dot.Options{})
//	svg, _ := dot.RenderSVG(ctx, src)
//
// # Main Packages
//
// ## Domain
//
// [model] - Element registry and relationship graph. Elements form a
// containment tree (system → container → component, node → child node) and
// names are unique among siblings.
//
// [view] - The five view kinds (landscape, context, container, component,
// deployment) with their inclusion rules. A [view.Snapshot] freezes a view for
// rendering.
//
// [style] - Tag-based element and relationship styles, resolved by merging
// every matching rule in definition order over the defaults.
//
// [workspace] - A named model plus its view set.
//
// ## Input and Output
//
// [dsl] - TOML and YAML workspace definitions.
//
// [render/dot] - Graphviz DOT generation and SVG rendering.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [graph] - JSON serialization of view snapshots with resolved styles.
//
// ## Infrastructure
//
// [pipeline] - Load → snapshot → render, shared by the CLI and tests.
//
// [cache] - Content-addressed artifact cache (file and null backends).
//
// [observability] - Pipeline and cache hooks.
//
// [errors] - Coded errors shared across packages.
//
// # Testing
//
// Run tests:
//
//	go test ./...                # All tests
//	go test ./pkg/view/...       # Specific package
//	go test -run Example ./pkg/...
//
// [model]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/model
// [view]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/view
// [style]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/style
// [workspace]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/workspace
// [dsl]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/dsl
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/render/dot
// [render]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/render
// [graph]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/archtower/pkg/errors
package pkg
