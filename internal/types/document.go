package types

// ManifestDocument is the on-disk shape of a manifest. It is converted
// into a ManifestDescriptor by the core manifest builder.
type ManifestDocument struct {
	Name         string               `yaml:"name"`
	ToolsVersion string               `yaml:"tools_version,omitempty"`
	Products     []ProductDocument    `yaml:"products"`
	Dependencies []DependencyDocument `yaml:"dependencies"`
	Targets      []TargetDocument     `yaml:"targets"`
}

type ProductDocument struct {
	Name    string      `yaml:"name"`
	Kind    ProductKind `yaml:"kind,omitempty"`
	Targets []string    `yaml:"targets"`
}

// DependencyDocument declares exactly one version requirement: Exact,
// From, UpToNextMajor, UpToNextMinor or Range. From is an alias of
// UpToNextMajor. A nil field is absent; a present empty value is still a
// declared requirement and fails version parsing.
type DependencyDocument struct {
	URL           string         `yaml:"url"`
	Exact         *string        `yaml:"exact,omitempty"`
	From          *string        `yaml:"from,omitempty"`
	UpToNextMajor *string        `yaml:"up_to_next_major,omitempty"`
	UpToNextMinor *string        `yaml:"up_to_next_minor,omitempty"`
	Range         *RangeDocument `yaml:"range,omitempty"`
	Products      []string       `yaml:"products,omitempty"`
}

type RangeDocument struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type TargetDocument struct {
	Name         string     `yaml:"name"`
	Type         TargetKind `yaml:"type,omitempty"`
	Dependencies []string   `yaml:"dependencies,omitempty"`
}
