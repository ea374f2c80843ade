package catalog

import (
	"fmt"
	"io"

	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// yamlDocument is the top-level shape of a catalog file.
type yamlDocument struct {
	Catalog []map[string]any `yaml:"catalog"`
}

// LoadYAML reads a catalog definition from a YAML document of the form
//
//	catalog:
//	  - id: system_name
//	    kind: text
//	    required: true
//	  ...
//
// Questions are decoded forgivingly (weak typing, unknown keys ignored)
// and then pass the same validation as the builtin catalog.
func LoadYAML(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(doc.Catalog) == 0 {
		return nil, fmt.Errorf("catalog YAML contains no questions")
	}

	questions := make([]domain.Question, 0, len(doc.Catalog))
	for i, raw := range doc.Catalog {
		q, err := decodeQuestion(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog position %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	return New(questions)
}

// decodeQuestion maps one generic YAML node onto the typed Question.
// mapstructure with the yaml tag name keeps the file format and the
// struct tags in one place.
func decodeQuestion(raw map[string]any) (domain.Question, error) {
	var q domain.Question
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           &q,
	})
	if err != nil {
		return q, err
	}
	if err := dec.Decode(raw); err != nil {
		return q, fmt.Errorf("invalid question definition: %w", err)
	}
	return q, nil
}
