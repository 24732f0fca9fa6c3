package dot

import (
	"fmt"
	"strings"

	"github.com/matzehuels/archtower/pkg/style"
)

// pixelsPerInch converts style sizes to Graphviz inches.
const pixelsPerInch = 150.0

var shapes = map[style.Shape]string{
	style.Box:                   "box",
	style.RoundedBox:            "box",
	style.Circle:                "circle",
	style.Ellipse:               "ellipse",
	style.Hexagon:               "hexagon",
	style.Cylinder:              "cylinder",
	style.Pipe:                  "cylinder",
	style.Person:                "box",
	style.Robot:                 "septagon",
	style.Folder:                "folder",
	style.WebBrowser:            "tab",
	style.MobileDevicePortrait:  "box",
	style.MobileDeviceLandscape: "box",
	style.Component:             "component",
}

func nodeAttrs(a style.ElementAttributes) []string {
	shape, ok := shapes[a.Shape]
	if !ok {
		shape = "box"
	}
	styles := []string{"filled"}
	switch a.Shape {
	case style.RoundedBox, style.Person, style.MobileDevicePortrait, style.MobileDeviceLandscape:
		styles = append(styles, "rounded")
	}
	if b := borderStyle(a.Border); b != "" {
		styles = append(styles, b)
	}

	width, height := float64(a.Width)/pixelsPerInch, float64(a.Height)/pixelsPerInch
	if a.Shape == style.MobileDevicePortrait && width > height {
		width, height = height, width
	}

	attrs := []string{
		fmt.Sprintf("shape=%s", shape),
		fmt.Sprintf("style=%q", strings.Join(styles, ",")),
		fmt.Sprintf("fillcolor=%q", withOpacity(a.Background, a.Opacity)),
		fmt.Sprintf("fontcolor=%q", withOpacity(a.Color, a.Opacity)),
		fmt.Sprintf("color=%q", withOpacity(strokeColor(a), a.Opacity)),
		fmt.Sprintf("fontsize=%d", a.FontSize),
		fmt.Sprintf("width=%.2f", width),
		fmt.Sprintf("height=%.2f", height),
	}
	if a.Shape == style.Pipe {
		attrs = append(attrs, "orientation=90")
	}
	if a.Icon != "" {
		attrs = append(attrs, fmt.Sprintf("image=%q", a.Icon), "imagepos=tc")
	}
	return attrs
}

func edgeAttrs(a style.RelationshipAttributes) []string {
	line := "solid"
	if a.Dashed {
		line = "dashed"
	}
	attrs := []string{
		fmt.Sprintf("style=%s", line),
		fmt.Sprintf("color=%q", withOpacity(a.Color, a.Opacity)),
		fmt.Sprintf("fontcolor=%q", withOpacity(a.Color, a.Opacity)),
		fmt.Sprintf("penwidth=%d", a.Thickness),
		fmt.Sprintf("fontsize=%d", a.FontSize),
	}
	return attrs
}

func borderStyle(b style.Border) string {
	switch b {
	case style.Dashed:
		return "dashed"
	case style.Dotted:
		return "dotted"
	default:
		return ""
	}
}

func clusterStyle(b style.Border) string {
	if s := borderStyle(b); s != "" {
		return "rounded," + s
	}
	return "rounded"
}

// strokeColor falls back to a darkened background when no stroke is set.
func strokeColor(a style.ElementAttributes) string {
	if a.Stroke != "" {
		return a.Stroke
	}
	if c, ok := darken(a.Background); ok {
		return c
	}
	return "#888888"
}

func darken(hex string) (string, bool) {
	var r, g, b int
	if len(hex) != 7 {
		return "", false
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", r*7/10, g*7/10, b*7/10), true
}

// withOpacity appends an alpha channel to a #rrggbb colour when opacity is
// below 100.
func withOpacity(color string, opacity int) string {
	if opacity >= 100 || opacity < 0 || len(color) != 7 || !strings.HasPrefix(color, "#") {
		return color
	}
	return fmt.Sprintf("%s%02x", color, opacity*255/100)
}
