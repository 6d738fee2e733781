package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/webnest/internal/catalog"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderSummary(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		plan string
		want []string
	}{
		{
			name: "computed estimate",
			plan: `
project_type = "website"
industry = "professional"
features = ["auth"]

[[team]]
role = "frontend"
level = "mid"
`,
			want: []string{"Business Website for Professional Services", "45000", "10 days"},
		},
		{
			name: "starter package price",
			plan: `
project_type = "landing"
industry = "student"
starter_package = "student-basic"
`,
			want: []string{"Student Basic", "4999"},
		},
		{
			name: "incomplete plan",
			plan: `project_type = "website"`,
			want: []string{"Choose a project type and industry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := runPlan(cat, writePlan(t, tt.plan))
			if err != nil {
				t.Fatalf("runPlan failed: %v", err)
			}
			out := renderSummary(cat, w)
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("summary missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderCatalog(t *testing.T) {
	out := renderCatalog(catalog.Default().Data())
	for _, s := range []string{"Project types", "Business Website", "x1.80", "Starter packages", "minimal"} {
		if !strings.Contains(out, s) {
			t.Errorf("catalog output missing %q", s)
		}
	}
}
