// Package dot renders view snapshots as Graphviz diagrams.
//
// A snapshot is first converted to DOT source with [ToDOT], resolving every
// element and relationship against the workspace styles. The source is then
// laid out by the embedded Graphviz:
//
//	src := dot.ToDOT(snap, styles, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// # Layout
//
// Landscape and context views are flat graphs. Container and component
// views draw the scope element as a dashed cluster around its children.
// Deployment views draw each deployment node as a cluster, nested the way
// the nodes are nested, with one graph node per instance. A relationship
// between two deployed elements becomes one edge per pair of instances in
// the same environment; a relationship between two nodes is drawn between
// their clusters, and one between a node and a deployed element joins the
// node's cluster to each instance of the element.
//
// # Styles
//
// Shapes map onto the closest Graphviz shape. Sizes are minimums, so long
// labels grow a node rather than overflow it. Relationship routing is
// graph-wide in Graphviz and is only applied when every relationship of a
// view resolves to the same routing.
//
// # Dependencies
//
// SVG layout uses [github.com/goccy/go-graphviz], which needs no system
// Graphviz. PDF and PNG conversion requires librsvg (rsvg-convert).
package dot
