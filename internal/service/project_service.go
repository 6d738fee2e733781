package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/webnest/internal/api"
	"github.com/mmynk/webnest/internal/api/apiconnect"
	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/estimator"
	"github.com/mmynk/webnest/internal/metrics"
	"github.com/mmynk/webnest/internal/middleware"
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/storage"
)

// MaxListLimit caps ListProjects page size.
const MaxListLimit = 200

// ProjectService implements the Connect ProjectService
type ProjectService struct {
	apiconnect.UnimplementedProjectServiceHandler
	store   storage.Store
	cat     *catalog.Catalog
	metrics *metrics.Metrics
}

// NewProjectService creates a new ProjectService with the given storage
// backend and catalog. m may be nil.
func NewProjectService(store storage.Store, cat *catalog.Catalog, m *metrics.Metrics) *ProjectService {
	return &ProjectService{store: store, cat: cat, metrics: m}
}

// validateProject checks the fields a project must carry.
func (s *ProjectService) validateProject(req *api.CreateProjectRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if req.ProjectType == "" {
		return errors.New("project_type is required")
	}
	if _, ok := s.cat.ProjectType(req.ProjectType); !ok {
		return fmt.Errorf("unknown project_type %q", req.ProjectType)
	}
	industry := req.CustomRequirements.Industry
	if industry == "" {
		return errors.New("custom_requirements.industry is required")
	}
	if _, ok := s.cat.Industry(industry); !ok {
		return fmt.Errorf("unknown industry %q", industry)
	}
	if req.Budget < 0 {
		return errors.New("budget cannot be negative")
	}
	if req.Timeline < 0 {
		return errors.New("timeline cannot be negative")
	}
	return nil
}

// GetCatalog returns the catalog the service prices against.
func (s *ProjectService) GetCatalog(ctx context.Context, req *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	return connect.NewResponse(&api.GetCatalogResponse{Catalog: s.cat.Data()}), nil
}

// Estimate prices a selection without storing anything.
func (s *ProjectService) Estimate(ctx context.Context, req *connect.Request[api.EstimateRequest]) (*connect.Response[api.EstimateResponse], error) {
	sel := req.Msg.Selection.ToSelection()

	est, items, ok := estimator.Breakdown(s.cat, sel)
	s.countEstimate(ok)
	slog.Debug("Estimate",
		"project_type", sel.ProjectType,
		"industry", sel.Industry,
		"features", len(sel.Features),
		"team", len(sel.Team),
		"ok", ok,
		"budget", est.Budget.Local,
	)

	return connect.NewResponse(&api.EstimateResponse{
		OK:              ok,
		Estimate:        est,
		Items:           items,
		AdditionalPages: estimator.AdditionalPages(len(sel.Pages)),
	}), nil
}

// CreateProject validates and persists a submitted project.
func (s *ProjectService) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	if err := s.validateProject(req.Msg); err != nil {
		slog.Warn("CreateProject validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	project := &models.Project{
		Title:        req.Msg.Title,
		Description:  req.Msg.Description,
		ProjectType:  req.Msg.ProjectType,
		Budget:       req.Msg.Budget,
		Features:     req.Msg.Features,
		TimelineDays: req.Msg.Timeline,
		Requirements: req.Msg.CustomRequirements,
		CreatedBy:    middleware.GetSubject(ctx),
	}
	if project.Features == nil {
		project.Features = []string{}
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateProject(ctx, project); err != nil {
		slog.Error("CreateProject failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if s.metrics != nil {
		s.metrics.ProjectsCreated.Inc()
		s.metrics.ProjectBudget.Observe(float64(project.Budget))
	}
	slog.Info("Project created",
		"project_id", project.ID,
		"project_type", project.ProjectType,
		"industry", project.Requirements.Industry,
		"budget", project.Budget,
		"starter_package", project.Requirements.StarterPackage,
		"created_by", project.CreatedBy,
	)

	return connect.NewResponse(&api.CreateProjectResponse{ProjectID: project.ID}), nil
}

// GetProject retrieves a project by ID from storage.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	if req.Msg.ProjectID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("project_id required"))
	}

	project, err := s.store.GetProject(ctx, req.Msg.ProjectID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		slog.Error("GetProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.GetProjectResponse{Project: api.FromProject(project)}), nil
}

// ListProjects returns the most recent projects.
func (s *ProjectService) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	limit := req.Msg.Limit
	if limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("limit cannot be negative"))
	}
	limit = min(limit, MaxListLimit)

	projects, err := s.store.ListProjects(ctx, limit)
	if err != nil {
		slog.Error("ListProjects failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Project, len(projects))
	for i, p := range projects {
		out[i] = api.FromProject(p)
	}
	return connect.NewResponse(&api.ListProjectsResponse{Projects: out}), nil
}

func (s *ProjectService) countEstimate(ok bool) {
	if s.metrics == nil {
		return
	}
	result := "priced"
	if !ok {
		result = "incomplete"
	}
	s.metrics.Estimates.WithLabelValues(result).Inc()
}
