package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/austenstone/project-update/internal/gh"
	"github.com/austenstone/project-update/internal/projects"
)

var (
	updateTarget    targetFlags
	updateItemID    string
	updateRepo      string
	updateIssue     int
	updateFieldsCSV string
	updateValuesCSV string
	updateFromFile  string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Apply typed field updates to a project item",
	Long: `Apply one or more field updates to a single project item.

Field names and values are passed as two parallel comma-separated lists
paired by position; a trailing name with no value is dropped. Each update
is attempted independently: a field that doesn't exist, a value that
doesn't resolve, or an API failure is reported and the rest of the batch
continues.

The item is addressed either directly with --item-id or by issue/PR
number with --repo and --issue.

Examples:
  project-update update --org my-org -p 5 --item-id PNI_xxx \
      --fields "Status,Iteration" --values "Done,[0]"
  project-update update --org my-org -p 5 --repo my-org/api --issue 42 \
      --fields Estimate --values 8
  project-update update --org my-org -p 5 --item-id PNI_xxx \
      --from-file updates.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	request, err := buildUpdateRequest()
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	if len(request) == 0 {
		return handleErrorMsg(ErrMissingArgument, "no field updates provided",
			"Pass --fields and --values, or --from-file")
	}
	if updateItemID == "" && (updateRepo == "" || updateIssue == 0) {
		return handleErrorMsg(ErrMissingArgument, "no item specified",
			"Pass --item-id, or --repo with --issue")
	}

	client, err := newClient()
	if err != nil {
		return handleError(ErrTokenMissing, err,
			"Set GITHUB_TOKEN, pass --token, or add token to config.toml")
	}

	projectID, err := updateTarget.resolveProject(ctx, client)
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

	itemID, err := resolveItem(ctx, client, projectID)
	if err != nil {
		var transportErr *gh.TransportError
		if errors.As(err, &transportErr) {
			return handleError(ErrTransport, err, "")
		}
		return handleError(ErrItemNotFound, err, "")
	}

	spinner := startSpinner("Fetching project fields")
	fields, err := client.FetchFields(ctx, projectID)
	stopSpinner(spinner)
	if err != nil {
		// No schema means nothing can be resolved; fatal to the run.
		return handleError(ErrTransport, err, "")
	}

	outcomes := projects.ApplyAll(ctx, client, projectID, itemID, fields, request)
	reportOutcomes(itemID, outcomes)
	return nil
}

// resolveItem returns the target item id, either given directly or looked
// up from an issue/PR number.
func resolveItem(ctx context.Context, client *gh.Client, projectID string) (string, error) {
	if updateItemID != "" {
		return updateItemID, nil
	}
	owner, repo, err := splitRepo(updateRepo)
	if err != nil {
		return "", err
	}
	return client.ItemIDForIssue(ctx, owner, repo, updateIssue, projectID)
}

func buildUpdateRequest() (projects.Request, error) {
	if updateFromFile != "" {
		if updateFieldsCSV != "" || updateValuesCSV != "" {
			return nil, fmt.Errorf("--from-file cannot be combined with --fields/--values")
		}
		return readUpdatesFile(updateFromFile)
	}
	return projects.ParseLists(updateFieldsCSV, updateValuesCSV), nil
}

// updatesFile is the --from-file document shape.
type updatesFile struct {
	Updates []struct {
		Field string `yaml:"field"`
		Value string `yaml:"value"`
	} `yaml:"updates"`
}

func readUpdatesFile(path string) (projects.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file updatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	request := make(projects.Request, 0, len(file.Updates))
	for _, update := range file.Updates {
		if update.Field == "" {
			continue
		}
		request = append(request, projects.Pair{Name: update.Field, Value: update.Value})
	}
	return request, nil
}

func init() {
	updateTarget.register(updateCmd.Flags())
	updateCmd.Flags().StringVar(&updateItemID, "item-id", "", "Project item node id")
	updateCmd.Flags().StringVar(&updateRepo, "repo", "", "Repository (owner/name) for --issue lookup")
	updateCmd.Flags().IntVar(&updateIssue, "issue", 0, "Issue or PR number whose project item is updated")
	updateCmd.Flags().StringVar(&updateFieldsCSV, "fields", "", "Comma-separated field names")
	updateCmd.Flags().StringVar(&updateValuesCSV, "values", "", "Comma-separated values, paired with --fields by position")
	updateCmd.Flags().StringVar(&updateFromFile, "from-file", "", "YAML file with an ordered list of updates")
	rootCmd.AddCommand(updateCmd)
}
