// Package apiconnect wires the WebNest project service to Connect: procedure
// names, a handler constructor for servers and a client constructor.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/webnest/internal/api"
)

// ProjectServiceName is the fully-qualified name of the ProjectService.
const ProjectServiceName = "webnest.v1.ProjectService"

// Procedure paths, relative to the server base URL.
const (
	ProjectServiceGetCatalogProcedure    = "/webnest.v1.ProjectService/GetCatalog"
	ProjectServiceEstimateProcedure      = "/webnest.v1.ProjectService/Estimate"
	ProjectServiceCreateProjectProcedure = "/webnest.v1.ProjectService/CreateProject"
	ProjectServiceGetProjectProcedure    = "/webnest.v1.ProjectService/GetProject"
	ProjectServiceListProjectsProcedure  = "/webnest.v1.ProjectService/ListProjects"
)

// ProjectServiceHandler is implemented by the server.
type ProjectServiceHandler interface {
	GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error)
	Estimate(context.Context, *connect.Request[api.EstimateRequest]) (*connect.Response[api.EstimateResponse], error)
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
}

// ProjectServiceClient is a client for the ProjectService.
type ProjectServiceClient interface {
	GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error)
	Estimate(context.Context, *connect.Request[api.EstimateRequest]) (*connect.Response[api.EstimateResponse], error)
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
}

// NewProjectServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewProjectServiceHandler(svc ProjectServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	getCatalog := connect.NewUnaryHandler(ProjectServiceGetCatalogProcedure, svc.GetCatalog, opts...)
	estimate := connect.NewUnaryHandler(ProjectServiceEstimateProcedure, svc.Estimate, opts...)
	createProject := connect.NewUnaryHandler(ProjectServiceCreateProjectProcedure, svc.CreateProject, opts...)
	getProject := connect.NewUnaryHandler(ProjectServiceGetProjectProcedure, svc.GetProject, opts...)
	listProjects := connect.NewUnaryHandler(ProjectServiceListProjectsProcedure, svc.ListProjects, opts...)

	return "/" + ProjectServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProjectServiceGetCatalogProcedure:
			getCatalog.ServeHTTP(w, r)
		case ProjectServiceEstimateProcedure:
			estimate.ServeHTTP(w, r)
		case ProjectServiceCreateProjectProcedure:
			createProject.ServeHTTP(w, r)
		case ProjectServiceGetProjectProcedure:
			getProject.ServeHTTP(w, r)
		case ProjectServiceListProjectsProcedure:
			listProjects.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NewProjectServiceClient constructs a client. baseURL is the server root,
// e.g. http://localhost:8080.
func NewProjectServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProjectServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &projectServiceClient{
		getCatalog:    connect.NewClient[api.GetCatalogRequest, api.GetCatalogResponse](httpClient, baseURL+ProjectServiceGetCatalogProcedure, opts...),
		estimate:      connect.NewClient[api.EstimateRequest, api.EstimateResponse](httpClient, baseURL+ProjectServiceEstimateProcedure, opts...),
		createProject: connect.NewClient[api.CreateProjectRequest, api.CreateProjectResponse](httpClient, baseURL+ProjectServiceCreateProjectProcedure, opts...),
		getProject:    connect.NewClient[api.GetProjectRequest, api.GetProjectResponse](httpClient, baseURL+ProjectServiceGetProjectProcedure, opts...),
		listProjects:  connect.NewClient[api.ListProjectsRequest, api.ListProjectsResponse](httpClient, baseURL+ProjectServiceListProjectsProcedure, opts...),
	}
}

type projectServiceClient struct {
	getCatalog    *connect.Client[api.GetCatalogRequest, api.GetCatalogResponse]
	estimate      *connect.Client[api.EstimateRequest, api.EstimateResponse]
	createProject *connect.Client[api.CreateProjectRequest, api.CreateProjectResponse]
	getProject    *connect.Client[api.GetProjectRequest, api.GetProjectResponse]
	listProjects  *connect.Client[api.ListProjectsRequest, api.ListProjectsResponse]
}

func (c *projectServiceClient) GetCatalog(ctx context.Context, req *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	return c.getCatalog.CallUnary(ctx, req)
}

func (c *projectServiceClient) Estimate(ctx context.Context, req *connect.Request[api.EstimateRequest]) (*connect.Response[api.EstimateResponse], error) {
	return c.estimate.CallUnary(ctx, req)
}

func (c *projectServiceClient) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	return c.createProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	return c.getProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return c.listProjects.CallUnary(ctx, req)
}

// UnimplementedProjectServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedProjectServiceHandler struct{}

func (UnimplementedProjectServiceHandler) GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("webnest.v1.ProjectService.GetCatalog is not implemented"))
}

func (UnimplementedProjectServiceHandler) Estimate(context.Context, *connect.Request[api.EstimateRequest]) (*connect.Response[api.EstimateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("webnest.v1.ProjectService.Estimate is not implemented"))
}

func (UnimplementedProjectServiceHandler) CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("webnest.v1.ProjectService.CreateProject is not implemented"))
}

func (UnimplementedProjectServiceHandler) GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("webnest.v1.ProjectService.GetProject is not implemented"))
}

func (UnimplementedProjectServiceHandler) ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("webnest.v1.ProjectService.ListProjects is not implemented"))
}
