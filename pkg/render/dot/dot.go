package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/archtower/pkg/model"
	"github.com/matzehuels/archtower/pkg/style"
	"github.com/matzehuels/archtower/pkg/view"
)

// Options configures DOT generation.
type Options struct {
	// Direction is the Graphviz rankdir. Defaults to "TB".
	Direction string

	// HideDescriptions drops element and relationship descriptions from
	// labels, leaving names and technologies.
	HideDescriptions bool

	// HideTitle omits the graph label.
	HideTitle bool
}

// wrapWidth is the column at which descriptions are wrapped.
const wrapWidth = 32

// ToDOT converts a view snapshot to Graphviz DOT. Element and relationship
// attributes are resolved against styles, which may be nil.
//
// Container and component views draw their scope as a dashed cluster around
// its children. Deployment views draw each node as a nested cluster holding
// one graph node per instance, and connect instances whose elements are
// related.
func ToDOT(snap *view.Snapshot, styles *style.Styles, opts Options) string {
	w := &writer{snap: snap, styles: styles, opts: opts}
	w.header()
	if snap.Kind == view.Deployment {
		w.deployment()
	} else {
		w.static()
	}
	w.buf.WriteString("}\n")
	return w.buf.String()
}

type writer struct {
	buf    bytes.Buffer
	snap   *view.Snapshot
	styles *style.Styles
	opts   Options
}

func (w *writer) header() {
	dir := w.opts.Direction
	if dir == "" {
		dir = "TB"
	}
	fmt.Fprintf(&w.buf, "digraph %q {\n", w.snap.Key)
	fmt.Fprintf(&w.buf, "  rankdir=%s;\n", dir)
	w.buf.WriteString("  bgcolor=\"transparent\";\n")
	w.buf.WriteString("  compound=true;\n")
	w.buf.WriteString("  fontname=\"Helvetica\";\n")
	w.buf.WriteString("  node [fontname=\"Helvetica\", margin=\"0.2,0.1\"];\n")
	w.buf.WriteString("  edge [fontname=\"Helvetica\", arrowsize=0.8];\n")
	w.buf.WriteString("  ranksep=0.8;\n")
	w.buf.WriteString("  nodesep=0.6;\n")
	if splines := w.splines(); splines != "" {
		fmt.Fprintf(&w.buf, "  splines=%s;\n", splines)
	}
	if !w.opts.HideTitle && w.snap.Title != "" {
		fmt.Fprintf(&w.buf, "  label=%q;\n  labelloc=t;\n  fontsize=32;\n", w.snap.Title)
	}
	w.buf.WriteString("\n")
}

// splines maps relationship routing to the graph-wide Graphviz setting.
// Graphviz cannot route edges individually, so a setting is only emitted
// when every relationship agrees.
func (w *writer) splines() string {
	if len(w.snap.Relationships) == 0 {
		return ""
	}
	first := w.styles.ForRelationship(w.snap.Relationships[0]).Routing
	for _, r := range w.snap.Relationships[1:] {
		if w.styles.ForRelationship(r).Routing != first {
			return ""
		}
	}
	switch first {
	case style.Orthogonal:
		return "ortho"
	case style.Curved:
		return "curved"
	default:
		return ""
	}
}

// static writes the elements of a landscape, context, container or
// component view.
func (w *writer) static() {
	scope := w.snap.Scope
	boxed := w.snap.Kind == view.Container || w.snap.Kind == view.Component

	var inside, outside []*model.Element
	for _, e := range w.snap.Elements {
		if boxed && e.Parent() == scope {
			inside = append(inside, e)
		} else {
			outside = append(outside, e)
		}
	}

	for _, e := range outside {
		w.element("  ", elementID(e), e)
	}
	if len(inside) > 0 {
		fmt.Fprintf(&w.buf, "\n  subgraph %q {\n", "cluster_"+scope.ID())
		fmt.Fprintf(&w.buf, "    label=%q;\n", label(scope.Name(), typeLabel(scope), ""))
		w.buf.WriteString("    style=\"dashed,rounded\";\n    color=\"#444444\";\n    fontsize=24;\n")
		for _, e := range inside {
			w.element("    ", elementID(e), e)
		}
		w.buf.WriteString("  }\n")
	}

	w.buf.WriteString("\n")
	for _, r := range w.snap.Relationships {
		w.edge(elementID(r.Source()), elementID(r.Destination()), r, nil)
	}
}

// deployment writes nested node clusters and instance nodes.
func (w *writer) deployment() {
	for _, n := range w.snap.Elements {
		if n.Kind() == model.KindDeploymentNode && !w.snap.Contains(n.Parent()) {
			w.cluster("  ", n)
		}
	}

	w.buf.WriteString("\n")
	for _, r := range w.snap.Relationships {
		src, dst := w.endpoints(r.Source()), w.endpoints(r.Destination())
		for _, a := range src {
			for _, b := range dst {
				if a.env == b.env || (a.cluster != "" && b.cluster != "") {
					w.edge(a.id, b.id, r, append(a.attrs("ltail"), b.attrs("lhead")...))
				}
			}
		}
	}
}

// endpoint is one end of a deployment edge: an instance node, or the anchor
// of a node cluster.
type endpoint struct {
	id      string
	env     string
	cluster string
}

func (p endpoint) attrs(name string) []string {
	if p.cluster == "" {
		return nil
	}
	return []string{fmt.Sprintf("%s=%q", name, p.cluster)}
}

// endpoints returns where edges of e attach: its cluster for deployment
// nodes, otherwise every shown instance of e.
func (w *writer) endpoints(e *model.Element) []endpoint {
	if e.Kind() == model.KindDeploymentNode {
		return []endpoint{{id: anchorID(e), env: e.Environment(), cluster: "cluster_" + e.ID()}}
	}
	var out []endpoint
	for _, inst := range w.instancesOf(e) {
		out = append(out, endpoint{id: instanceID(inst), env: inst.Environment()})
	}
	return out
}

func (w *writer) cluster(indent string, n *model.Element) {
	a := w.styles.ForElement(n)
	extra := ""
	if n.InstanceCount() > 1 {
		extra = fmt.Sprintf("x%d", n.InstanceCount())
	}
	fmt.Fprintf(&w.buf, "%ssubgraph %q {\n", indent, "cluster_"+n.ID())
	inner := indent + "  "
	fmt.Fprintf(&w.buf, "%slabel=%q;\n", inner, label(n.Name(), typeLabel(n), extra))
	fmt.Fprintf(&w.buf, "%sstyle=%q;\n", inner, clusterStyle(a.Border))
	fmt.Fprintf(&w.buf, "%scolor=%q;\n", inner, strokeColor(a))
	fmt.Fprintf(&w.buf, "%sfontcolor=%q;\n", inner, a.Color)
	fmt.Fprintf(&w.buf, "%sfontsize=%d;\n", inner, a.FontSize)
	fmt.Fprintf(&w.buf, "%s%q [shape=point, style=invis, width=0, label=\"\"];\n", inner, anchorID(n))

	for _, inst := range w.snap.InstancesOn(n) {
		extra := ""
		if inst.Count() > 1 {
			extra = fmt.Sprintf("x%d", inst.Count())
		}
		w.node(inner, instanceID(inst), inst.Element(), extra)
	}
	for _, c := range n.Children() {
		if c.Kind() == model.KindDeploymentNode && w.snap.Contains(c) {
			w.cluster(inner, c)
		}
	}
	fmt.Fprintf(&w.buf, "%s}\n", indent)
}

func (w *writer) instancesOf(e *model.Element) []*model.Instance {
	var out []*model.Instance
	for _, inst := range w.snap.Instances {
		if inst.Element() == e {
			out = append(out, inst)
		}
	}
	return out
}

func (w *writer) element(indent, id string, e *model.Element) {
	w.node(indent, id, e, "")
}

func (w *writer) node(indent, id string, e *model.Element, extra string) {
	a := w.styles.ForElement(e)
	desc := ""
	if !w.opts.HideDescriptions {
		desc = wrap(e.Description(), wrapWidth)
	}
	if extra != "" {
		desc = strings.TrimPrefix(desc+"\n"+extra, "\n")
	}
	attrs := []string{fmt.Sprintf("label=%q", label(e.Name(), typeLabel(e), desc))}
	attrs = append(attrs, nodeAttrs(a)...)
	if e.URL() != "" {
		attrs = append(attrs, fmt.Sprintf("URL=%q", e.URL()))
	}
	fmt.Fprintf(&w.buf, "%s%q [%s];\n", indent, id, strings.Join(attrs, ", "))
}

func (w *writer) edge(from, to string, r *model.Relationship, extra []string) {
	a := w.styles.ForRelationship(r)
	text := r.Description()
	if w.opts.HideDescriptions {
		text = ""
	}
	text = wrap(text, wrapWidth)
	if r.Technology() != "" {
		text = strings.TrimPrefix(text+"\n["+r.Technology()+"]", "\n")
	}
	attrs := []string{fmt.Sprintf("label=%q", text)}
	attrs = append(attrs, edgeAttrs(a)...)
	attrs = append(attrs, extra...)
	fmt.Fprintf(&w.buf, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
}

func elementID(e *model.Element) string   { return "el_" + e.ID() }
func anchorID(e *model.Element) string    { return "anchor_" + e.ID() }
func instanceID(i *model.Instance) string { return "inst_" + i.ID() }

// typeLabel returns the bracketed kind line, e.g. "[Container: React]".
func typeLabel(e *model.Element) string {
	if e.Technology() == "" {
		return "[" + e.Kind().String() + "]"
	}
	return "[" + e.Kind().String() + ": " + e.Technology() + "]"
}

func label(name, kind, rest string) string {
	s := name + "\n" + kind
	if rest != "" {
		s += "\n\n" + rest
	}
	return s
}

// wrap breaks s into lines of at most width runes at word boundaries.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := 0
	for i, word := range words {
		n := len([]rune(word))
		if i > 0 {
			if line+1+n > width {
				b.WriteByte('\n')
				line = 0
			} else {
				b.WriteByte(' ')
				line++
			}
		}
		b.WriteString(word)
		line += n
	}
	return b.String()
}
