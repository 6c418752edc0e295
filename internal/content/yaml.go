package content

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// yaml/v3 does not consult the encoding.Text* interfaces, so the date
// types carry explicit YAML hooks mirroring their text encodings.

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m MonthDay) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *MonthDay) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("decoding month-day: %w", err)
	}
	parsed, err := ParseMonthDay(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
