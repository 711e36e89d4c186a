package projects

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Serialized shape of the settings payload the API attaches to typed
// fields. Scalar fields carry no settings (or a literal null).
type rawSettings struct {
	Options       []rawOption       `json:"options"`
	Configuration *rawConfiguration `json:"configuration"`
}

type rawOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawConfiguration struct {
	Iterations          []rawIteration `json:"iterations"`
	CompletedIterations []rawIteration `json:"completed_iterations"`
}

type rawIteration struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewField builds a Field from a schema node, classifying it by the
// settings payload it carries. An empty or null payload means a plain
// scalar field.
func NewField(id, name, settings string) (Field, error) {
	field := Field{ID: id, Name: name, Kind: KindScalar}

	trimmed := strings.TrimSpace(settings)
	if trimmed == "" || trimmed == "null" {
		return field, nil
	}

	var raw rawSettings
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Field{}, fmt.Errorf("parse settings for field '%s': %w", name, err)
	}

	if cfg := raw.Configuration; cfg != nil && (len(cfg.Iterations) > 0 || len(cfg.CompletedIterations) > 0) {
		field.Kind = KindIteration
		for _, it := range cfg.Iterations {
			field.Iterations = append(field.Iterations, Iteration{ID: it.ID, Title: it.Title})
		}
		for _, it := range cfg.CompletedIterations {
			field.CompletedIterations = append(field.CompletedIterations, Iteration{ID: it.ID, Title: it.Title})
		}
		return field, nil
	}

	if len(raw.Options) > 0 {
		field.Kind = KindSingleSelect
		for _, opt := range raw.Options {
			field.Options = append(field.Options, Option{ID: opt.ID, Name: opt.Name})
		}
	}

	return field, nil
}
