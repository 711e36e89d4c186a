package cli

import "github.com/austenstone/project-update/internal/ui"

// startSpinner starts a progress spinner for a network wait, or returns
// nil in JSON mode where stdout must stay machine-parseable.
func startSpinner(message string) *ui.Spinner {
	if isJSONOutput() {
		return nil
	}
	spinner := ui.NewSpinner(message)
	spinner.Start()
	return spinner
}

// stopSpinner stops a spinner started by startSpinner; nil is a no-op.
func stopSpinner(spinner *ui.Spinner) {
	if spinner != nil {
		spinner.Stop()
	}
}
