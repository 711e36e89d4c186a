package projects

import "strings"

// FindField returns the first field whose name equals name
// case-insensitively. Schemas can contain duplicate names; first in
// fetch order wins. The second return is false when no field matches.
func FindField(fields []Field, name string) (Field, bool) {
	for _, field := range fields {
		if strings.EqualFold(field.Name, name) {
			return field, true
		}
	}
	return Field{}, false
}
