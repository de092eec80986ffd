package jsonfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOptionsYAML reads an Options value from r, starting from Default so
// a partial config file only overrides the fields it mentions.
func LoadOptionsYAML(r io.Reader) (Options, error) {
	opts := Default
	data, err := io.ReadAll(r)
	if err != nil {
		return Options{}, err
	}
	if len(data) == 0 {
		return opts, nil
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
