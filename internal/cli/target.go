package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/austenstone/project-update/internal/gh"
)

// targetFlags identify the project board a command operates on. Values
// left unset fall back to the [defaults] section of the config.
type targetFlags struct {
	org       string
	user      string
	number    int
	projectID string
}

func (t *targetFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&t.org, "org", "", "Organization that owns the project")
	fs.StringVar(&t.user, "user", "", "User that owns the project (instead of --org)")
	fs.IntVarP(&t.number, "project", "p", 0, "Project number")
	fs.StringVar(&t.projectID, "project-id", "", "Project node id (skips the lookup)")
}

// errNoTarget means neither flags nor config defaults identify a board.
var errNoTarget = errors.New("no project specified")

// resolveProject returns the project node id, looking it up by owner and
// number unless --project-id was given.
func (t *targetFlags) resolveProject(ctx context.Context, client *gh.Client) (string, error) {
	if t.projectID != "" {
		return t.projectID, nil
	}

	owner, isUser := t.org, false
	if t.user != "" {
		owner, isUser = t.user, true
	}
	number := t.number

	defaults := getConfig().Defaults
	if owner == "" {
		owner, isUser = defaults.Owner, defaults.User
	}
	if number == 0 {
		number = defaults.Project
	}
	if owner == "" || number == 0 {
		return "", errNoTarget
	}

	if isUser {
		return client.UserProjectID(ctx, owner, number)
	}
	return client.OrgProjectID(ctx, owner, number)
}

// newClient builds the GraphQL client from the resolved token and
// endpoint.
func newClient() (*gh.Client, error) {
	config := getConfig()
	token := config.ResolveToken(tokenFlag)
	if token == "" {
		return nil, fmt.Errorf("no GitHub token provided")
	}
	return gh.NewClient(config.ResolveEndpoint(endpointFlag), token), nil
}

// splitRepo parses an "owner/name" repository reference.
func splitRepo(repo string) (string, string, error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository '%s'", repo)
	}
	return parts[0], parts[1], nil
}
