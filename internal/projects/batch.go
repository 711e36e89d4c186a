package projects

import "context"

// Updater applies one resolved field value to a project item. The GraphQL
// client implements it; tests substitute fakes.
type Updater interface {
	UpdateField(ctx context.Context, projectID, itemID, fieldID, value string) (string, error)
}

// Status classifies the outcome of one requested field update.
type Status string

const (
	// StatusUpdated means the field was resolved and the mutation
	// succeeded.
	StatusUpdated Status = "updated"

	// StatusFieldNotFound means no schema field matches the requested
	// name.
	StatusFieldNotFound Status = "field_not_found"

	// StatusValueNotFound means the field exists but the value expression
	// matched no option or iteration; the update was skipped.
	StatusValueNotFound Status = "value_not_found"

	// StatusUpdateFailed means the mutation was attempted and the API or
	// network failed.
	StatusUpdateFailed Status = "update_failed"
)

// Outcome records what happened to one request pair.
type Outcome struct {
	Status        Status `json:"status"`
	FieldName     string `json:"field_name"`
	RawValue      string `json:"raw_value"`
	FieldID       string `json:"field_id,omitempty"`
	ResolvedValue string `json:"resolved_value,omitempty"`
	ResultID      string `json:"result_id,omitempty"`
	ErrorDetail   string `json:"error,omitempty"`

	// Err carries the underlying error for StatusValueNotFound and
	// StatusUpdateFailed.
	Err error `json:"-"`
}

// ApplyAll applies each requested update in order against the fetched
// schema. Updates are strictly sequential, attempted exactly once, and
// never abort the batch: every pair yields exactly one Outcome, in input
// order, regardless of individual failures.
func ApplyAll(ctx context.Context, updater Updater, projectID, itemID string, fields []Field, request Request) []Outcome {
	outcomes := make([]Outcome, 0, len(request))
	for _, pair := range request {
		outcomes = append(outcomes, applyOne(ctx, updater, projectID, itemID, fields, pair))
	}
	return outcomes
}

func applyOne(ctx context.Context, updater Updater, projectID, itemID string, fields []Field, pair Pair) Outcome {
	outcome := Outcome{FieldName: pair.Name, RawValue: pair.Value}

	field, found := FindField(fields, pair.Name)
	if !found {
		outcome.Status = StatusFieldNotFound
		return outcome
	}
	outcome.FieldID = field.ID

	value, err := Resolve(field, pair.Value)
	if err != nil {
		outcome.Status = StatusValueNotFound
		outcome.Err = err
		outcome.ErrorDetail = err.Error()
		return outcome
	}
	outcome.ResolvedValue = value

	resultID, err := updater.UpdateField(ctx, projectID, itemID, field.ID, value)
	if err != nil {
		outcome.Status = StatusUpdateFailed
		outcome.Err = err
		outcome.ErrorDetail = err.Error()
		return outcome
	}

	outcome.Status = StatusUpdated
	outcome.ResultID = resultID
	return outcome
}

// Updated reports how many outcomes succeeded.
func Updated(outcomes []Outcome) int {
	count := 0
	for _, outcome := range outcomes {
		if outcome.Status == StatusUpdated {
			count++
		}
	}
	return count
}
