package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austenstone/project-update/internal/gh"
	"github.com/austenstone/project-update/internal/projects"
	"github.com/austenstone/project-update/internal/ui"
)

var fieldsTarget targetFlags

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List a project's fields",
	Long: `List the fields of a project board with their options and
iterations, including the positional indexes accepted by 'update'.

Examples:
  project-update fields --org my-org -p 5
  project-update fields --user octocat -p 3 --json`,
	Args: cobra.NoArgs,
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := newClient()
	if err != nil {
		return handleError(ErrTokenMissing, err,
			"Set GITHUB_TOKEN, pass --token, or add token to config.toml")
	}

	projectID, err := fieldsTarget.resolveProject(ctx, client)
	if err != nil {
		if errors.Is(err, errNoTarget) {
			return handleError(ErrMissingArgument, err,
				"Pass --org/--user and --project, or set [defaults] in config.toml")
		}
		var transportErr *gh.TransportError
		if errors.As(err, &transportErr) {
			return handleError(ErrTransport, err, "")
		}
		return handleError(ErrProjectNotFound, err, "")
	}

	spinner := startSpinner("Fetching project fields")
	fields, err := client.FetchFields(ctx, projectID)
	stopSpinner(spinner)
	if err != nil {
		return handleError(ErrTransport, err, "")
	}

	if isJSONOutput() {
		data := map[string]interface{}{
			"project_id": projectID,
			"fields":     fields,
		}
		outputSuccess(data, nil, &Meta{Count: len(fields)})
		return nil
	}

	for _, field := range fields {
		fmt.Println(renderField(field))
	}
	return nil
}

func renderField(field projects.Field) string {
	line := fmt.Sprintf("%s %s", ui.Accent.Render(field.Name), ui.Muted.Render(string(field.Kind)))
	switch field.Kind {
	case projects.KindSingleSelect:
		for i, option := range field.Options {
			line += fmt.Sprintf("\n  [%d] %s", i, option.Name)
		}
	case projects.KindIteration:
		for i, iteration := range field.Iterations {
			marker := ""
			if i == 0 {
				marker = " " + ui.Muted.Render("(current)")
			}
			line += fmt.Sprintf("\n  [%d] %s%s", i, iteration.Title, marker)
		}
		for _, iteration := range field.CompletedIterations {
			line += fmt.Sprintf("\n      %s %s", iteration.Title, ui.Muted.Render("(completed)"))
		}
	}
	return line
}

func init() {
	fieldsTarget.register(fieldsCmd.Flags())
	rootCmd.AddCommand(fieldsCmd)
}
