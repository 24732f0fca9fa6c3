package style

import (
	"strings"

	"github.com/matzehuels/archtower/pkg/errors"
)

// Shape is the outline used to draw an element.
type Shape int

const (
	Box Shape = iota
	RoundedBox
	Circle
	Ellipse
	Hexagon
	Cylinder
	Pipe
	Person
	Robot
	Folder
	WebBrowser
	MobileDevicePortrait
	MobileDeviceLandscape
	Component
)

var shapeNames = [...]string{
	Box:                   "Box",
	RoundedBox:            "RoundedBox",
	Circle:                "Circle",
	Ellipse:               "Ellipse",
	Hexagon:               "Hexagon",
	Cylinder:              "Cylinder",
	Pipe:                  "Pipe",
	Person:                "Person",
	Robot:                 "Robot",
	Folder:                "Folder",
	WebBrowser:            "WebBrowser",
	MobileDevicePortrait:  "MobileDevicePortrait",
	MobileDeviceLandscape: "MobileDeviceLandscape",
	Component:             "Component",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "Box"
	}
	return shapeNames[s]
}

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeNames))
	for i := range shapeNames {
		out[i] = Shape(i)
	}
	return out
}

// ParseShape returns the shape with the given name. Matching ignores case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Shape(i), nil
		}
	}
	return Box, errors.New(errors.ErrCodeInvalidInput, "unknown shape %q", name)
}

// Border is the outline stroke of an element.
type Border int

const (
	Solid Border = iota
	Dashed
	Dotted
)

func (b Border) String() string {
	switch b {
	case Dashed:
		return "Dashed"
	case Dotted:
		return "Dotted"
	default:
		return "Solid"
	}
}

// ParseBorder returns the border with the given name. Matching ignores case.
func ParseBorder(name string) (Border, error) {
	for _, b := range []Border{Solid, Dashed, Dotted} {
		if strings.EqualFold(b.String(), strings.TrimSpace(name)) {
			return b, nil
		}
	}
	return Solid, errors.New(errors.ErrCodeInvalidInput, "unknown border %q", name)
}

// Routing is how relationship lines are drawn between elements.
type Routing int

const (
	Direct Routing = iota
	Orthogonal
	Curved
)

func (r Routing) String() string {
	switch r {
	case Orthogonal:
		return "Orthogonal"
	case Curved:
		return "Curved"
	default:
		return "Direct"
	}
}

// ParseRouting returns the routing with the given name. Matching ignores case.
func ParseRouting(name string) (Routing, error) {
	for _, r := range []Routing{Direct, Orthogonal, Curved} {
		if strings.EqualFold(r.String(), strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return Direct, errors.New(errors.ErrCodeInvalidInput, "unknown routing %q", name)
}
