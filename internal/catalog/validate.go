package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// validateSeed checks raw seed YAML against the embedded JSON Schema for
// that seed file. A failure lists every leaf issue; seed files ship inside
// the binary, so any issue is a packaging bug rather than user error.
func validateSeed(schemaName string, schemaBytes, data []byte) error {
	schema, err := compileSchema(schemaName, schemaBytes)
	if err != nil {
		return err
	}

	// Unmarshal YAML to a generic structure, then re-marshal through JSON
	// so the validator sees JSON-compatible types.
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", schemaName, err)
	}
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return fmt.Errorf("converting %s to JSON: %w", schemaName, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing %s for validation: %w", schemaName, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validating %s: %w", schemaName, err)
	}
	return fmt.Errorf("seed file %s is invalid:\n%s", schemaName, formatIssues(validationErr))
}

// compileSchema compiles an embedded JSON Schema document.
func compileSchema(name string, schemaBytes []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource %s: %w", name, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return schema, nil
}

// formatIssues walks the validation error tree and renders one line per
// leaf issue with its instance path.
func formatIssues(ve *jsonschema.ValidationError) string {
	var lines []string
	seen := make(map[string]bool)
	collectIssueLines(ve, &lines, seen)
	if len(lines) == 0 {
		return "  " + ve.Error()
	}
	return strings.Join(lines, "\n")
}

func collectIssueLines(ve *jsonschema.ValidationError, lines *[]string, seen map[string]bool) {
	if len(ve.Causes) == 0 {
		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}
		// Skip generic container errors that aren't informative.
		if keyword == "" || keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" {
			return
		}

		path := "/" + strings.Join(ve.InstanceLocation, "/")
		msg := ve.ErrorKind.LocalizedString(printer)
		line := fmt.Sprintf("  %s: %s", path, msg)
		if !seen[line] {
			seen[line] = true
			*lines = append(*lines, line)
		}
		return
	}
	for _, cause := range ve.Causes {
		collectIssueLines(cause, lines, seen)
	}
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. yaml/v3 may produce map[string]interface{} but also int/int64 that
// JSON Schema validators may not handle consistently.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
