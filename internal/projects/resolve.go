package projects

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// indexExpr matches the positional index syntax "[<integer>]".
var indexExpr = regexp.MustCompile(`^\[(-?\d+)\]$`)

// ResolutionError reports a value expression with no match in a typed
// field's option or iteration lists. The update for that pair is skipped;
// the raw string is never sent for a typed field.
type ResolutionError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no value matching '%s' for field '%s': %s", e.Value, e.Field, e.Reason)
}

// Resolve converts a raw value expression into the literal value the
// field's type requires.
//
// The index syntax "[<n>]" is checked first and selects by position:
// for iteration fields the index reaches only the active/upcoming list,
// so "[0]" always denotes the current iteration. Without an index,
// single-select values match option names and iteration values match
// iteration titles case-insensitively, the latter falling back to
// completed iterations. Scalar fields return the raw value unchanged;
// no numeric or date validation happens here.
func Resolve(field Field, raw string) (string, error) {
	index, hasIndex := parseIndex(raw)

	switch field.Kind {
	case KindIteration:
		if hasIndex {
			if index < 0 || index >= len(field.Iterations) {
				return "", &ResolutionError{
					Field:  field.Name,
					Value:  raw,
					Reason: fmt.Sprintf("iteration index out of range (%d iterations)", len(field.Iterations)),
				}
			}
			return field.Iterations[index].ID, nil
		}
		for _, it := range field.Iterations {
			if strings.EqualFold(it.Title, raw) {
				return it.ID, nil
			}
		}
		for _, it := range field.CompletedIterations {
			if strings.EqualFold(it.Title, raw) {
				return it.ID, nil
			}
		}
		return "", &ResolutionError{Field: field.Name, Value: raw, Reason: "no iteration with that title"}

	case KindSingleSelect:
		if hasIndex {
			if index < 0 || index >= len(field.Options) {
				return "", &ResolutionError{
					Field:  field.Name,
					Value:  raw,
					Reason: fmt.Sprintf("option index out of range (%d options)", len(field.Options)),
				}
			}
			return field.Options[index].ID, nil
		}
		for _, opt := range field.Options {
			if strings.EqualFold(opt.Name, raw) {
				return opt.ID, nil
			}
		}
		return "", &ResolutionError{Field: field.Name, Value: raw, Reason: "no option with that name"}

	default:
		// Text, number, and date fields take the raw value verbatim.
		return raw, nil
	}
}

func parseIndex(raw string) (int, bool) {
	match := indexExpr.FindStringSubmatch(raw)
	if match == nil {
		return 0, false
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return index, true
}
