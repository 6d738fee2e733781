// Package projectclient talks to the project service over Connect. It is the
// production submission.ProjectCreator.
package projectclient

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/webnest/internal/api"
	"github.com/mmynk/webnest/internal/api/apiconnect"
	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/middleware"
	"github.com/mmynk/webnest/internal/selection"
	"github.com/mmynk/webnest/internal/submission"
)

var _ submission.ProjectCreator = (*Client)(nil)

// Client is a project service client.
type Client struct {
	rpc apiconnect.ProjectServiceClient
}

// New creates a client for the service at baseURL. A non-empty token is sent
// as a bearer token. httpClient may be nil.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	rpc := apiconnect.NewProjectServiceClient(httpClient, baseURL,
		connect.WithInterceptors(middleware.BearerToken(token)),
	)
	return &Client{rpc: rpc}
}

// CreateProject submits a project and returns its id.
func (c *Client) CreateProject(ctx context.Context, req api.CreateProjectRequest) (string, error) {
	resp, err := c.rpc.CreateProject(ctx, connect.NewRequest(&req))
	if err != nil {
		return "", err
	}
	if resp.Msg.ProjectID == "" {
		return "", fmt.Errorf("project service returned no project id")
	}
	return resp.Msg.ProjectID, nil
}

// Catalog fetches the service catalog.
func (c *Client) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	resp, err := c.rpc.GetCatalog(ctx, connect.NewRequest(&api.GetCatalogRequest{}))
	if err != nil {
		return nil, err
	}
	return catalog.New(resp.Msg.Catalog)
}

// Estimate asks the service to price a selection.
func (c *Client) Estimate(ctx context.Context, sel selection.State) (*api.EstimateResponse, error) {
	resp, err := c.rpc.Estimate(ctx, connect.NewRequest(&api.EstimateRequest{Selection: api.FromSelection(sel)}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// Project fetches a stored project.
func (c *Client) Project(ctx context.Context, id string) (*api.Project, error) {
	resp, err := c.rpc.GetProject(ctx, connect.NewRequest(&api.GetProjectRequest{ProjectID: id}))
	if err != nil {
		return nil, err
	}
	return &resp.Msg.Project, nil
}

// Projects lists recent projects.
func (c *Client) Projects(ctx context.Context, limit int) ([]api.Project, error) {
	resp, err := c.rpc.ListProjects(ctx, connect.NewRequest(&api.ListProjectsRequest{Limit: limit}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Projects, nil
}
