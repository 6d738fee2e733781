package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/webnest/internal/api"
	"github.com/mmynk/webnest/internal/api/apiconnect"
	"github.com/mmynk/webnest/internal/auth"
	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/metrics"
	"github.com/mmynk/webnest/internal/middleware"
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/storage/sqlstore"
)

const testSecret = "test-secret"

// setupTestServer creates a test server backed by a temp SQLite database.
// With withAuth set, CreateProject requires a token signed with testSecret.
func setupTestServer(t *testing.T, withAuth bool) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	store, err := sqlstore.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var jwtManager *auth.JWTManager
	if withAuth {
		jwtManager = auth.NewJWTManager(testSecret, time.Hour)
	}

	m := metrics.New()
	svc := NewProjectService(store, catalog.Default(), m)
	server := httptest.NewServer(Routes(svc, m, jwtManager))

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server, m
}

func newClient(server *httptest.Server, token string) apiconnect.ProjectServiceClient {
	return apiconnect.NewProjectServiceClient(http.DefaultClient, server.URL,
		connect.WithInterceptors(middleware.BearerToken(token)),
	)
}

func validRequest() *api.CreateProjectRequest {
	return &api.CreateProjectRequest{
		Title:       "Business Website for Professional Services",
		Description: "Business Website project with 1 feature",
		ProjectType: "website",
		Budget:      45000,
		Features:    []string{"auth"},
		Timeline:    10,
		CustomRequirements: models.Requirements{
			Industry: "professional",
			Team:     []models.TeamMember{{Role: "frontend", Level: "mid", Price: 25000, USDPrice: 300}},
			AddOns:   []string{},
			Theme:    "minimal",
			Pages:    []string{"Home", "About", "Services", "Contact"},
		},
	}
}

func TestGetCatalog(t *testing.T) {
	server, _ := setupTestServer(t, false)
	client := newClient(server, "")

	resp, err := client.GetCatalog(context.Background(), connect.NewRequest(&api.GetCatalogRequest{}))
	if err != nil {
		t.Fatalf("GetCatalog failed: %v", err)
	}

	cat, err := catalog.New(resp.Msg.Catalog)
	if err != nil {
		t.Fatalf("returned catalog is invalid: %v", err)
	}
	if pt, ok := cat.ProjectType("website"); !ok || pt.BasePrice != 15000 {
		t.Errorf("website = %+v, %v", pt, ok)
	}
}

func TestEstimate(t *testing.T) {
	server, _ := setupTestServer(t, false)
	client := newClient(server, "")

	tests := []struct {
		name         string
		sel          api.Selection
		validateFunc func(t *testing.T, resp *api.EstimateResponse)
	}{
		{
			name: "website for professional services",
			sel: api.Selection{
				ProjectType: "website",
				Industry:    "professional",
				Features:    []string{"auth"},
				Team:        []models.TeamMember{{Role: "frontend", Level: "mid", Price: 25000}},
			},
			validateFunc: func(t *testing.T, resp *api.EstimateResponse) {
				if !resp.OK {
					t.Fatal("expected OK")
				}
				if resp.Estimate.Budget.Local != 45000 || resp.Estimate.TimelineDays != 10 {
					t.Errorf("Estimate = %+v, want 45000 / 10 days", resp.Estimate)
				}
				if len(resp.Items) != 3 {
					t.Errorf("Items = %+v, want base, feature, team", resp.Items)
				}
			},
		},
		{
			name: "missing pages default to the four standard pages",
			sel:  api.Selection{ProjectType: "website", Industry: "professional"},
			validateFunc: func(t *testing.T, resp *api.EstimateResponse) {
				if resp.AdditionalPages != 0 || resp.Estimate.Budget.Local != 15000 {
					t.Errorf("resp = %+v", resp)
				}
			},
		},
		{
			name: "extra pages",
			sel: api.Selection{
				ProjectType: "website",
				Industry:    "professional",
				Pages:       []string{"Home", "About", "Services", "Contact", "Blog", "FAQ"},
			},
			validateFunc: func(t *testing.T, resp *api.EstimateResponse) {
				if resp.AdditionalPages != 2 || resp.Estimate.Budget.Local != 17000 || resp.Estimate.TimelineDays != 9 {
					t.Errorf("resp = %+v", resp)
				}
			},
		},
		{
			name: "incomplete selection",
			sel:  api.Selection{ProjectType: "website"},
			validateFunc: func(t *testing.T, resp *api.EstimateResponse) {
				if resp.OK {
					t.Error("expected OK=false without an industry")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Estimate(context.Background(), connect.NewRequest(&api.EstimateRequest{Selection: tt.sel}))
			if err != nil {
				t.Fatalf("Estimate failed: %v", err)
			}
			tt.validateFunc(t, resp.Msg)
		})
	}
}

func TestCreateAndGetProject(t *testing.T) {
	server, m := setupTestServer(t, false)
	client := newClient(server, "")
	ctx := context.Background()

	created, err := client.CreateProject(ctx, connect.NewRequest(validRequest()))
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if created.Msg.ProjectID == "" {
		t.Fatal("expected project id")
	}

	got, err := client.GetProject(ctx, connect.NewRequest(&api.GetProjectRequest{ProjectID: created.Msg.ProjectID}))
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	p := got.Msg.Project
	want := validRequest()
	if p.Title != want.Title || p.Budget != want.Budget || p.Timeline != want.Timeline {
		t.Errorf("project = %+v", p)
	}
	if !slices.Equal(p.Features, want.Features) {
		t.Errorf("Features = %v, want %v", p.Features, want.Features)
	}
	if p.CustomRequirements.Industry != "professional" || len(p.CustomRequirements.Team) != 1 {
		t.Errorf("CustomRequirements = %+v", p.CustomRequirements)
	}
	if p.CreatedBy != "" {
		t.Errorf("CreatedBy = %q, want empty without auth", p.CreatedBy)
	}

	list, err := client.ListProjects(ctx, connect.NewRequest(&api.ListProjectsRequest{}))
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(list.Msg.Projects) != 1 || list.Msg.Projects[0].ID != created.Msg.ProjectID {
		t.Errorf("ListProjects = %+v", list.Msg.Projects)
	}

	if n := testCounterValue(t, m, "webnest_projects_created_total"); n != 1 {
		t.Errorf("projects_created_total = %v, want 1", n)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	server, _ := setupTestServer(t, false)
	client := newClient(server, "")

	tests := []struct {
		name   string
		mutate func(r *api.CreateProjectRequest)
	}{
		{"missing title", func(r *api.CreateProjectRequest) { r.Title = " " }},
		{"missing project type", func(r *api.CreateProjectRequest) { r.ProjectType = "" }},
		{"unknown project type", func(r *api.CreateProjectRequest) { r.ProjectType = "spaceship" }},
		{"missing industry", func(r *api.CreateProjectRequest) { r.CustomRequirements.Industry = "" }},
		{"unknown industry", func(r *api.CreateProjectRequest) { r.CustomRequirements.Industry = "mars" }},
		{"negative budget", func(r *api.CreateProjectRequest) { r.Budget = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := client.CreateProject(context.Background(), connect.NewRequest(req))
			if connect.CodeOf(err) != connect.CodeInvalidArgument {
				t.Errorf("CreateProject() error = %v, want InvalidArgument", err)
			}
		})
	}
}

func TestGetProject_NotFound(t *testing.T) {
	server, _ := setupTestServer(t, false)
	client := newClient(server, "")

	_, err := client.GetProject(context.Background(), connect.NewRequest(&api.GetProjectRequest{ProjectID: "missing"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("GetProject() error = %v, want NotFound", err)
	}

	_, err = client.GetProject(context.Background(), connect.NewRequest(&api.GetProjectRequest{}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("GetProject(\"\") error = %v, want InvalidArgument", err)
	}
}

func TestAuth(t *testing.T) {
	server, _ := setupTestServer(t, true)
	ctx := context.Background()

	token, err := auth.NewJWTManager(testSecret, time.Hour).Generate("wizard-cli", "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	forged, err := auth.NewJWTManager("other-secret", time.Hour).Generate("wizard-cli", "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("catalog and estimate are public", func(t *testing.T) {
		anon := newClient(server, "")
		if _, err := anon.GetCatalog(ctx, connect.NewRequest(&api.GetCatalogRequest{})); err != nil {
			t.Errorf("GetCatalog failed: %v", err)
		}
		if _, err := anon.Estimate(ctx, connect.NewRequest(&api.EstimateRequest{})); err != nil {
			t.Errorf("Estimate failed: %v", err)
		}
	})

	t.Run("create requires a token", func(t *testing.T) {
		_, err := newClient(server, "").CreateProject(ctx, connect.NewRequest(validRequest()))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("CreateProject() error = %v, want Unauthenticated", err)
		}
	})

	t.Run("forged token rejected", func(t *testing.T) {
		_, err := newClient(server, forged).CreateProject(ctx, connect.NewRequest(validRequest()))
		var connectErr *connect.Error
		if !errors.As(err, &connectErr) || connectErr.Code() != connect.CodeUnauthenticated {
			t.Errorf("CreateProject() error = %v, want Unauthenticated", err)
		}
	})

	t.Run("valid token records the subject", func(t *testing.T) {
		client := newClient(server, token)
		created, err := client.CreateProject(ctx, connect.NewRequest(validRequest()))
		if err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
		got, err := client.GetProject(ctx, connect.NewRequest(&api.GetProjectRequest{ProjectID: created.Msg.ProjectID}))
		if err != nil {
			t.Fatalf("GetProject failed: %v", err)
		}
		if got.Msg.Project.CreatedBy != "wizard-cli" {
			t.Errorf("CreatedBy = %q, want wizard-cli", got.Msg.Project.CreatedBy)
		}
	})
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	server, _ := setupTestServer(t, false)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/healthz status = %d", resp.StatusCode)
	}

	// Generate one RPC so the request counter has a sample.
	client := newClient(server, "")
	if _, err := client.GetCatalog(context.Background(), connect.NewRequest(&api.GetCatalogRequest{})); err != nil {
		t.Fatalf("GetCatalog failed: %v", err)
	}

	resp, err = http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "webnest_rpc_requests_total") {
		t.Error("/metrics does not expose webnest_rpc_requests_total")
	}
}

func testCounterValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range f.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		return total
	}
	return 0
}
