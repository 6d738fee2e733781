// Package submission turns a finished wizard selection into a project
// creation request and sends it to the project service.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/webnest/internal/api"
	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/selection"
)

// DefaultTimeout bounds a single submission when none is configured.
const DefaultTimeout = 30 * time.Second

var (
	// ErrSubmissionFailed wraps every failure reported by the project
	// service, including timeouts.
	ErrSubmissionFailed = errors.New("failed to create project, please try again")

	// ErrIncompleteSelection is returned before any request is sent when the
	// selection has no project type or industry.
	ErrIncompleteSelection = errors.New("project type and industry are required")
)

// ProjectCreator is the project service as seen by the adapter.
type ProjectCreator interface {
	CreateProject(ctx context.Context, req api.CreateProjectRequest) (string, error)
}

// Draft is everything a wizard hands over on submit.
type Draft struct {
	Selection selection.State
	Estimate  models.Estimate
	// StarterPackage is the chosen starter package id, if any. Its contents
	// are not merged into Selection.
	StarterPackage string
}

// Adapter submits drafts to a ProjectCreator.
type Adapter struct {
	cat     *catalog.Catalog
	creator ProjectCreator
	timeout time.Duration
}

// NewAdapter creates an adapter. A non-positive timeout means DefaultTimeout.
func NewAdapter(cat *catalog.Catalog, creator ProjectCreator, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{cat: cat, creator: creator, timeout: timeout}
}

// Validate checks the fields the project service requires.
func Validate(sel selection.State) error {
	if sel.ProjectType == "" || sel.Industry == "" {
		return ErrIncompleteSelection
	}
	return nil
}

// BuildRequest derives the creation request from a draft.
func BuildRequest(cat *catalog.Catalog, d Draft) api.CreateProjectRequest {
	sel := d.Selection.Clone()

	typeName := sel.ProjectType
	if pt, ok := cat.ProjectType(sel.ProjectType); ok {
		typeName = pt.Name
	}
	industryName := sel.Industry
	if in, ok := cat.Industry(sel.Industry); ok {
		industryName = in.Name
	}

	return api.CreateProjectRequest{
		Title:       fmt.Sprintf("%s for %s", typeName, industryName),
		Description: describe(typeName, len(sel.Features)),
		ProjectType: sel.ProjectType,
		Budget:      d.Estimate.Budget.Local,
		Features:    sel.Features,
		Timeline:    d.Estimate.TimelineDays,
		CustomRequirements: models.Requirements{
			Industry:       sel.Industry,
			Team:           sel.Team,
			AddOns:         sel.AddOns,
			Theme:          sel.Theme,
			Pages:          sel.Pages,
			StarterPackage: d.StarterPackage,
		},
	}
}

func describe(typeName string, features int) string {
	switch features {
	case 0:
		return fmt.Sprintf("%s project with no additional features", typeName)
	case 1:
		return fmt.Sprintf("%s project with 1 feature", typeName)
	default:
		return fmt.Sprintf("%s project with %d features", typeName, features)
	}
}

// Submit validates the draft, sends it and returns the new project id. Any
// failure from the service is logged and reported as ErrSubmissionFailed with
// no service detail attached. The draft is never modified.
func (a *Adapter) Submit(ctx context.Context, d Draft) (string, error) {
	if err := Validate(d.Selection); err != nil {
		return "", err
	}

	req := BuildRequest(a.cat, d)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	id, err := a.creator.CreateProject(ctx, req)
	if err != nil {
		slog.Error("CreateProject failed",
			"project_type", req.ProjectType,
			"budget", req.Budget,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return "", ErrSubmissionFailed
	}

	slog.Info("Project created",
		"project_id", id,
		"project_type", req.ProjectType,
		"budget", req.Budget,
		"timeline_days", req.Timeline,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return id, nil
}
