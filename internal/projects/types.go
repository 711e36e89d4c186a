// Package projects implements field resolution and typed updates for
// GitHub Projects (beta) boards.
package projects

// FieldKind discriminates how a field's values are resolved.
type FieldKind string

const (
	// KindScalar covers text, number, and date fields. The raw input
	// value is used verbatim.
	KindScalar FieldKind = "scalar"

	// KindSingleSelect fields carry a fixed list of options; values
	// resolve to an option id.
	KindSingleSelect FieldKind = "single_select"

	// KindIteration fields carry sprint time-boxes; values resolve to an
	// iteration id.
	KindIteration FieldKind = "iteration"
)

// Field describes one field in a project's schema. Fields are immutable
// once fetched; ids are unique within a single fetch.
type Field struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`

	// Options is populated for single-select fields, in schema order.
	Options []Option `json:"options,omitempty"`

	// Iterations holds the active and upcoming iterations in schema
	// order, so the first entry is always the current iteration.
	// Completed iterations are kept separate; positional indexes never
	// reach them.
	Iterations          []Iteration `json:"iterations,omitempty"`
	CompletedIterations []Iteration `json:"completed_iterations,omitempty"`
}

// Option is one selectable value of a single-select field.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Iteration is one time-box of an iteration field.
type Iteration struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
