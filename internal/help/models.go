package help

// Topic is one help entry loaded from a YAML file.
type Topic struct {
	Name     string   `yaml:"name" json:"name"`
	Summary  string   `yaml:"summary" json:"summary"`
	Usage    string   `yaml:"usage,omitempty" json:"usage,omitempty"`
	Examples []string `yaml:"examples,omitempty" json:"examples,omitempty"`
	Notes    string   `yaml:"notes,omitempty" json:"notes,omitempty"`
}
