package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Blurbs maps a category slug to its descriptive text.
type Blurbs map[string]string

// ErrBlurbSchema indicates the blurb sidecar does not match its schema.
var ErrBlurbSchema = errors.New("invalid category blurbs")

const blurbSchemaName = "blurbs.schema.json"

// blurbSchema accepts an object whose values are all strings.
const blurbSchema = `{
  "type": "object",
  "propertyNames": { "minLength": 1 },
  "additionalProperties": { "type": "string" }
}`

var compiledBlurbSchema = mustCompileBlurbSchema()

func mustCompileBlurbSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(blurbSchemaName, strings.NewReader(blurbSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(blurbSchemaName)
}

// BlurbIssue is one schema violation.
type BlurbIssue struct {
	Location string
	Message  string
}

// BlurbSchemaError lists schema violations found in a blurb sidecar.
type BlurbSchemaError struct {
	Path   string
	Issues []BlurbIssue
}

func (e *BlurbSchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issue.Location
		if location == "" {
			location = "/"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%v: %s: %s", ErrBlurbSchema, e.Path, strings.Join(parts, "; "))
}

// Unwrap allows errors.Is(err, ErrBlurbSchema).
func (e *BlurbSchemaError) Unwrap() error {
	return ErrBlurbSchema
}

// LoadBlurbs reads the optional blurb sidecar at path. A missing file
// yields an empty mapping and no error.
func LoadBlurbs(path string) (Blurbs, error) {
	if path == "" {
		return Blurbs{}, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from site config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Blurbs{}, nil
		}
		return nil, fmt.Errorf("reading blurbs %s: %w", path, err)
	}
	return ParseBlurbs(path, data)
}

// ParseBlurbs validates data against the blurb schema and decodes it.
// path is only used in error messages.
func ParseBlurbs(path string, data []byte) (Blurbs, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &BlurbSchemaError{Path: path, Issues: []BlurbIssue{{Message: err.Error()}}}
	}

	if err := compiledBlurbSchema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, &BlurbSchemaError{Path: path, Issues: collectIssues(verr)}
		}
		return nil, fmt.Errorf("validating blurbs %s: %w", path, err)
	}

	blurbs := Blurbs{}
	for k, v := range doc.(map[string]any) {
		blurbs[k] = strings.TrimSpace(v.(string))
	}
	return blurbs, nil
}

// collectIssues flattens the leaves of a jsonschema error tree.
func collectIssues(err *jsonschema.ValidationError) []BlurbIssue {
	var issues []BlurbIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			issues = append(issues, BlurbIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
