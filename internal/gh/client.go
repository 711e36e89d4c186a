// Package gh is the GraphQL boundary to the GitHub Projects (beta) API.
package gh

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/machinebox/graphql"

	"github.com/austenstone/project-update/internal/projects"
)

// DefaultEndpoint is the public GitHub GraphQL endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// fieldPageSize is the documented fetch limit for project fields.
const fieldPageSize = 20

// itemPageSize bounds the project item scan when resolving an issue's
// item.
const itemPageSize = 50

// TransportError wraps a network or API failure from the GraphQL layer.
// The orchestrator decides recoverability: fetch-phase failures are fatal
// to the run, update-phase failures are recovered per field.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// Client issues queries and mutations against the GitHub GraphQL API.
type Client struct {
	gql   *graphql.Client
	token string
}

// NewClient creates a client for the given endpoint and token. An empty
// endpoint means DefaultEndpoint.
func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{gql: graphql.NewClient(endpoint), token: token}
}

// NewClientWithHTTP creates a client using a custom HTTP client. Tests
// point this at a local server.
func NewClientWithHTTP(endpoint, token string, httpClient *http.Client) *Client {
	return &Client{gql: graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)), token: token}
}

func (c *Client) run(ctx context.Context, op string, req *graphql.Request, resp interface{}) error {
	req.Header.Set("Authorization", "bearer "+c.token)
	if err := c.gql.Run(ctx, req, resp); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

// OrgProjectID looks up the node id of an organization-owned project by
// number.
func (c *Client) OrgProjectID(ctx context.Context, org string, number int) (string, error) {
	req := graphql.NewRequest(`
		query ($login: String!, $number: Int!) {
			organization(login: $login) {
				projectNext(number: $number) { id }
			}
		}`)
	req.Var("login", org)
	req.Var("number", number)

	var resp struct {
		Organization struct {
			ProjectNext *struct {
				ID string `json:"id"`
			} `json:"projectNext"`
		} `json:"organization"`
	}
	if err := c.run(ctx, "fetch project", req, &resp); err != nil {
		return "", err
	}
	if resp.Organization.ProjectNext == nil || resp.Organization.ProjectNext.ID == "" {
		return "", fmt.Errorf("project %d not found in organization '%s'", number, org)
	}
	return resp.Organization.ProjectNext.ID, nil
}

// UserProjectID looks up the node id of a user-owned project by number.
func (c *Client) UserProjectID(ctx context.Context, login string, number int) (string, error) {
	req := graphql.NewRequest(`
		query ($login: String!, $number: Int!) {
			user(login: $login) {
				projectNext(number: $number) { id }
			}
		}`)
	req.Var("login", login)
	req.Var("number", number)

	var resp struct {
		User struct {
			ProjectNext *struct {
				ID string `json:"id"`
			} `json:"projectNext"`
		} `json:"user"`
	}
	if err := c.run(ctx, "fetch project", req, &resp); err != nil {
		return "", err
	}
	if resp.User.ProjectNext == nil || resp.User.ProjectNext.ID == "" {
		return "", fmt.Errorf("project %d not found for user '%s'", number, login)
	}
	return resp.User.ProjectNext.ID, nil
}

// FetchFields retrieves the project's field schema, parsing each field's
// serialized settings payload into the typed model. At most fieldPageSize
// fields are returned.
func (c *Client) FetchFields(ctx context.Context, projectID string) ([]projects.Field, error) {
	req := graphql.NewRequest(`
		query ($project: ID!, $first: Int!) {
			node(id: $project) {
				... on ProjectNext {
					fields(first: $first) {
						nodes { id name settings }
					}
				}
			}
		}`)
	req.Var("project", projectID)
	req.Var("first", fieldPageSize)

	var resp struct {
		Node struct {
			Fields struct {
				Nodes []struct {
					ID       string `json:"id"`
					Name     string `json:"name"`
					Settings string `json:"settings"`
				} `json:"nodes"`
			} `json:"fields"`
		} `json:"node"`
	}
	if err := c.run(ctx, "fetch fields", req, &resp); err != nil {
		return nil, err
	}

	fields := make([]projects.Field, 0, len(resp.Node.Fields.Nodes))
	for _, node := range resp.Node.Fields.Nodes {
		field, err := projects.NewField(node.ID, node.Name, node.Settings)
		if err != nil {
			return nil, &TransportError{Op: "fetch fields", Err: err}
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// ItemIDForIssue resolves the project item id of an issue or pull request
// on the given project.
func (c *Client) ItemIDForIssue(ctx context.Context, owner, repo string, number int, projectID string) (string, error) {
	req := graphql.NewRequest(`
		query ($owner: String!, $repo: String!, $number: Int!, $first: Int!) {
			repository(owner: $owner, name: $repo) {
				issueOrPullRequest(number: $number) {
					... on Issue {
						projectNextItems(first: $first) {
							nodes { id project { id } }
						}
					}
					... on PullRequest {
						projectNextItems(first: $first) {
							nodes { id project { id } }
						}
					}
				}
			}
		}`)
	req.Var("owner", owner)
	req.Var("repo", repo)
	req.Var("number", number)
	req.Var("first", itemPageSize)

	var resp struct {
		Repository struct {
			IssueOrPullRequest struct {
				ProjectNextItems struct {
					Nodes []struct {
						ID      string `json:"id"`
						Project struct {
							ID string `json:"id"`
						} `json:"project"`
					} `json:"nodes"`
				} `json:"projectNextItems"`
			} `json:"issueOrPullRequest"`
		} `json:"repository"`
	}
	if err := c.run(ctx, "fetch item", req, &resp); err != nil {
		return "", err
	}
	for _, node := range resp.Repository.IssueOrPullRequest.ProjectNextItems.Nodes {
		if node.Project.ID == projectID {
			return node.ID, nil
		}
	}
	return "", fmt.Errorf("%s/%s#%d has no item on the project", owner, repo, number)
}

// UpdateField applies one resolved value to a project item field and
// returns the updated item's id. Implements projects.Updater.
func (c *Client) UpdateField(ctx context.Context, projectID, itemID, fieldID, value string) (string, error) {
	mutation := fmt.Sprintf(`
		mutation {
			updateProjectNextItemField(input: {projectId: %q, itemId: %q, fieldId: %q, value: %s}) {
				projectNextItem { id }
			}
		}`, projectID, itemID, fieldID, ValueLiteral(value))
	req := graphql.NewRequest(mutation)

	var resp struct {
		UpdateProjectNextItemField struct {
			ProjectNextItem struct {
				ID string `json:"id"`
			} `json:"projectNextItem"`
		} `json:"updateProjectNextItemField"`
	}
	if err := c.run(ctx, "update field", req, &resp); err != nil {
		return "", err
	}
	return resp.UpdateProjectNextItemField.ProjectNextItem.ID, nil
}

// numericExpr matches plain decimal literals. Deliberately narrower than
// strconv.ParseFloat, which also accepts "NaN" and "1e9".
var numericExpr = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ValueLiteral encodes a resolved value with its natural literal
// encoding for the mutation document: unquoted when numeric, quoted
// string otherwise.
func ValueLiteral(value string) string {
	if numericExpr.MatchString(value) {
		return value
	}
	return strconv.Quote(value)
}
