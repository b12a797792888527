package config

import "gopkg.in/yaml.v3"

// Gantryfile represents the structure of the gantry.yaml pipeline file.
type Gantryfile struct {
	Version    int           `yaml:"version"`
	Defaults   DefaultsDTO   `yaml:"defaults"`
	Activities []ActivityDTO `yaml:"activities"`
}

// DefaultsDTO holds pipeline-wide fallback settings.
type DefaultsDTO struct {
	Archive SelectionDTO `yaml:"archive"`
}

// ActivityDTO represents one activity definition in the pipeline file.
type ActivityDTO struct {
	Name    string            `yaml:"name"`
	Run     string            `yaml:"run"`
	Dir     string            `yaml:"dir"`
	Env     map[string]string `yaml:"env"`
	Needs   []NeedDTO         `yaml:"needs"`
	Archive *SelectionDTO     `yaml:"archive"`
	Stash   []StashDTO        `yaml:"stash"`
	Unstash []string          `yaml:"unstash"`
	Tests   *TestsDTO         `yaml:"tests"`
	Cleanup string            `yaml:"cleanup"`
}

// NeedDTO represents one dependency declaration. It accepts either the
// scalar shorthand
//
//	needs: [compile]
//
// or the full map form
//
//	needs:
//	  - activity: compile
//	    propagate_failure: false
//
// Propagation defaults to true in both forms.
type NeedDTO struct {
	Activity  string
	Propagate bool
}

// UnmarshalYAML implements yaml.Unmarshaler for the scalar-or-map forms.
func (n *NeedDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Activity = value.Value
		n.Propagate = true
		return nil
	}

	var full struct {
		Activity  string `yaml:"activity"`
		Propagate *bool  `yaml:"propagate_failure"`
	}
	if err := value.Decode(&full); err != nil {
		return err
	}
	n.Activity = full.Activity
	n.Propagate = full.Propagate == nil || *full.Propagate
	return nil
}

// SelectionDTO represents a file selection for archiving or stashing.
// default_excludes is a tri-state so that an omitted key can default to true.
type SelectionDTO struct {
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
	DefaultExcludes *bool    `yaml:"default_excludes"`
	AllowEmpty      bool     `yaml:"allow_empty"`
}

// StashDTO represents a named stash declaration.
type StashDTO struct {
	ID           string `yaml:"id"`
	SelectionDTO `yaml:",inline"`
}

// TestsDTO represents the test-record gathering block of an activity.
type TestsDTO struct {
	Records string `yaml:"records"`
	Include string `yaml:"include"`
	Exclude string `yaml:"exclude"`
}
