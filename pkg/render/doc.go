// Package render holds output conversions shared by the diagram renderers.
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := dot.RenderSVG(ctx, src)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Diagram generation itself lives in the [dot] subpackage.
//
// [dot]: github.com/matzehuels/archtower/pkg/render/dot
package render
