package dsl

// File is the root of a workspace definition.
type File struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`

	// IDs selects the identifier strategy: "sequential" (default) or "uuid".
	IDs string `toml:"ids" yaml:"ids"`
	// Policy selects the deployment policy: "anywhere" (default) or
	// "once-per-parent".
	Policy string `toml:"deployment_policy" yaml:"deployment_policy"`

	People        []Person       `toml:"people" yaml:"people"`
	Systems       []System       `toml:"systems" yaml:"systems"`
	Relationships []Relationship `toml:"relationships" yaml:"relationships"`
	Deployment    []Node         `toml:"deployment" yaml:"deployment"`
	Views         []View         `toml:"views" yaml:"views"`
	Styles        Styles         `toml:"styles" yaml:"styles"`
}

// Person is a person entry.
type Person struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Location    string            `toml:"location" yaml:"location"`
	URL         string            `toml:"url" yaml:"url"`
	Tags        []string          `toml:"tags" yaml:"tags"`
	Properties  map[string]string `toml:"properties" yaml:"properties"`
}

// System is a software system entry with its containers.
type System struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Location    string            `toml:"location" yaml:"location"`
	URL         string            `toml:"url" yaml:"url"`
	Tags        []string          `toml:"tags" yaml:"tags"`
	Properties  map[string]string `toml:"properties" yaml:"properties"`
	Containers  []Container       `toml:"containers" yaml:"containers"`
}

// Container is a container entry with its components.
type Container struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Technology  string            `toml:"technology" yaml:"technology"`
	URL         string            `toml:"url" yaml:"url"`
	Tags        []string          `toml:"tags" yaml:"tags"`
	Properties  map[string]string `toml:"properties" yaml:"properties"`
	Components  []Component       `toml:"components" yaml:"components"`
}

// Component is a component entry.
type Component struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Technology  string            `toml:"technology" yaml:"technology"`
	URL         string            `toml:"url" yaml:"url"`
	Tags        []string          `toml:"tags" yaml:"tags"`
	Properties  map[string]string `toml:"properties" yaml:"properties"`
}

// Relationship connects two element paths.
type Relationship struct {
	From        string   `toml:"from" yaml:"from"`
	To          string   `toml:"to" yaml:"to"`
	Description string   `toml:"description" yaml:"description"`
	Technology  string   `toml:"technology" yaml:"technology"`
	Async       bool     `toml:"async" yaml:"async"`
	Tags        []string `toml:"tags" yaml:"tags"`
}

// Node is a deployment node entry. Environment is only read on top-level
// nodes; children inherit their parent's.
type Node struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Technology  string            `toml:"technology" yaml:"technology"`
	Environment string            `toml:"environment" yaml:"environment"`
	Instances   *int              `toml:"instances" yaml:"instances"` // nil means 1
	Tags        []string          `toml:"tags" yaml:"tags"`
	Properties  map[string]string `toml:"properties" yaml:"properties"`
	Deploy      []string          `toml:"deploy" yaml:"deploy"`
	Children    []Node            `toml:"children" yaml:"children"`
}

// View is a view entry.
type View struct {
	Kind        string   `toml:"kind" yaml:"kind"`
	Key         string   `toml:"key" yaml:"key"`
	Title       string   `toml:"title" yaml:"title"`
	Description string   `toml:"description" yaml:"description"`
	Scope       string   `toml:"scope" yaml:"scope"`
	Environment string   `toml:"environment" yaml:"environment"`
	Include     []string `toml:"include" yaml:"include"`
	Neighbours  []string `toml:"neighbours" yaml:"neighbours"`
	Exclude     []string `toml:"exclude" yaml:"exclude"`
}

// Styles holds the element and relationship rules in application order.
type Styles struct {
	Elements      []ElementStyle      `toml:"elements" yaml:"elements"`
	Relationships []RelationshipStyle `toml:"relationships" yaml:"relationships"`
}

// ElementStyle is an element rule. Unset attributes are left unchanged.
type ElementStyle struct {
	Tags       []string `toml:"tags" yaml:"tags"`
	Shape      string   `toml:"shape" yaml:"shape"`
	Width      *int     `toml:"width" yaml:"width"`
	Height     *int     `toml:"height" yaml:"height"`
	Background *string  `toml:"background" yaml:"background"`
	Color      *string  `toml:"color" yaml:"color"`
	Stroke     *string  `toml:"stroke" yaml:"stroke"`
	FontSize   *int     `toml:"font_size" yaml:"font_size"`
	Border     string   `toml:"border" yaml:"border"`
	Opacity    *int     `toml:"opacity" yaml:"opacity"`
	Icon       *string  `toml:"icon" yaml:"icon"`
}

// RelationshipStyle is a relationship rule. Unset attributes are left
// unchanged.
type RelationshipStyle struct {
	Tags      []string `toml:"tags" yaml:"tags"`
	Thickness *int     `toml:"thickness" yaml:"thickness"`
	Color     *string  `toml:"color" yaml:"color"`
	Dashed    *bool    `toml:"dashed" yaml:"dashed"`
	Routing   string   `toml:"routing" yaml:"routing"`
	FontSize  *int     `toml:"font_size" yaml:"font_size"`
	Width     *int     `toml:"width" yaml:"width"`
	Position  *int     `toml:"position" yaml:"position"`
	Opacity   *int     `toml:"opacity" yaml:"opacity"`
}
