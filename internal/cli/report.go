package cli

import (
	"fmt"

	"github.com/austenstone/project-update/internal/projects"
	"github.com/austenstone/project-update/internal/ui"
)

// reportOutcomes renders the batch result: the JSON envelope in --json
// mode, one line per outcome plus a summary otherwise.
func reportOutcomes(itemID string, outcomes []projects.Outcome) {
	if isJSONOutput() {
		data := map[string]interface{}{
			"item_id":  itemID,
			"outcomes": outcomes,
		}
		outputSuccess(data, outcomeWarnings(outcomes), &Meta{Count: len(outcomes)})
		return
	}

	for _, outcome := range outcomes {
		fmt.Println(renderOutcome(outcome))
	}
	fmt.Println(ui.Bold.Render(renderSummary(outcomes)))
}

func renderOutcome(outcome projects.Outcome) string {
	name := ui.Accent.Render(outcome.FieldName)
	switch outcome.Status {
	case projects.StatusUpdated:
		return fmt.Sprintf("✓ %s = %s %s", name, outcome.ResolvedValue,
			ui.Muted.Render("("+outcome.ResultID+")"))
	case projects.StatusFieldNotFound:
		return fmt.Sprintf("✗ %s: no field with that name", name)
	case projects.StatusValueNotFound:
		return fmt.Sprintf("✗ %s: %s", name, outcome.ErrorDetail)
	case projects.StatusUpdateFailed:
		return fmt.Sprintf("✗ %s = %s: %s", name, outcome.ResolvedValue, outcome.ErrorDetail)
	default:
		return fmt.Sprintf("? %s: %s", name, outcome.Status)
	}
}

func renderSummary(outcomes []projects.Outcome) string {
	return fmt.Sprintf("Updated %d of %d fields", projects.Updated(outcomes), len(outcomes))
}

// outcomeWarnings turns non-updated outcomes into envelope warnings.
func outcomeWarnings(outcomes []projects.Outcome) []Warning {
	var warnings []Warning
	for _, outcome := range outcomes {
		code := ""
		switch outcome.Status {
		case projects.StatusFieldNotFound:
			code = WarnFieldNotFound
		case projects.StatusValueNotFound:
			code = WarnValueNotFound
		case projects.StatusUpdateFailed:
			code = WarnUpdateFailed
		default:
			continue
		}
		message := outcome.ErrorDetail
		if message == "" {
			message = fmt.Sprintf("no field named '%s'", outcome.FieldName)
		}
		warnings = append(warnings, Warning{
			Code:    code,
			Field:   outcome.FieldName,
			Message: message,
		})
	}
	return warnings
}
