package userdata

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preferences represents user-wide display defaults stored in preferences.yaml.
type Preferences struct {
	OutputFormat    string `yaml:"output_format,omitempty"`
	LargePrint      bool   `yaml:"large_print,omitempty"`
	TriviaAmount    int    `yaml:"trivia_amount,omitempty"`
	DefaultCategory string `yaml:"default_category,omitempty"`

	// Extras holds arbitrary user-defined fields.
	Extras map[string]interface{} `yaml:",inline"`
}

// LoadPreferences reads and parses preferences.yaml. A missing file yields
// zero-value preferences, so callers can treat the result as defaults.
func LoadPreferences() (*Preferences, error) {
	path, err := GetPreferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}
