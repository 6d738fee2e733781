package selection

import (
	"slices"
	"testing"

	"github.com/mmynk/webnest/internal/models"
)

func TestNew(t *testing.T) {
	s := New()
	if s.ProjectType != "" || s.Industry != "" || s.Theme != "" {
		t.Errorf("expected unset type/industry/theme, got %+v", s)
	}
	if !slices.Equal(s.Pages, []string{"Home", "About", "Services", "Contact"}) {
		t.Errorf("Pages = %v, want defaults", s.Pages)
	}
	if len(s.Features) != 0 || len(s.Team) != 0 || len(s.AddOns) != 0 {
		t.Errorf("expected empty lists, got %+v", s)
	}

	// Mutating a new state must not leak into the defaults.
	s.Pages[0] = "Landing"
	if DefaultPages[0] != "Home" {
		t.Error("New() aliases DefaultPages")
	}
}

func TestSetters(t *testing.T) {
	s := New().SetProjectType("website").SetIndustry("professional").SetTheme("dark")
	if s.ProjectType != "website" || s.Industry != "professional" || s.Theme != "dark" {
		t.Errorf("unexpected state %+v", s)
	}

	s = s.SetProjectType("webapp").SetIndustry("not-in-catalog")
	if s.ProjectType != "webapp" {
		t.Errorf("ProjectType = %q, want webapp", s.ProjectType)
	}
	if s.Industry != "not-in-catalog" {
		t.Errorf("Industry = %q, unknown ids must be stored as-is", s.Industry)
	}
}

func TestToggleFeature(t *testing.T) {
	tests := []struct {
		name   string
		start  []string
		toggle string
		want   []string
	}{
		{"add to empty", nil, "auth", []string{"auth"}},
		{"append", []string{"auth"}, "cms", []string{"auth", "cms"}},
		{"remove keeps order", []string{"auth", "cms", "blog"}, "cms", []string{"auth", "blog"}},
		{"remove last", []string{"auth"}, "auth", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Features = tt.start
			got := s.ToggleFeature(tt.toggle)
			if !slices.Equal(got.Features, tt.want) {
				t.Errorf("Features = %v, want %v", got.Features, tt.want)
			}
		})
	}
}

func TestTogglePairsCancel(t *testing.T) {
	states := []State{
		New(),
		{},
		New().SetProjectType("website").ToggleFeature("auth").ToggleFeature("cms"),
		New().ToggleAddOn("seo").ToggleAddOn("hosting").AddPage("Blog"),
	}

	for i, s := range states {
		for _, f := range []string{"auth", "cms", "payments"} {
			if got := s.ToggleFeature(f).ToggleFeature(f); !got.Equal(s) {
				t.Errorf("state %d: toggling feature %q twice: %v -> %v", i, f, s.Features, got.Features)
			}
		}
		for _, a := range []string{"seo", "hosting", "ssl"} {
			if got := s.ToggleAddOn(a).ToggleAddOn(a); !got.Equal(s) {
				t.Errorf("state %d: toggling add-on %q twice: %v -> %v", i, a, s.AddOns, got.AddOns)
			}
		}
	}
}

func TestTogglePairsCancelForAbsentIDs(t *testing.T) {
	s := New().ToggleFeature("auth").ToggleFeature("cms")
	got := s.ToggleFeature("payments").ToggleFeature("payments")
	if !got.Equal(s) {
		t.Errorf("toggle pair changed state: %v -> %v", s.Features, got.Features)
	}
}

func TestToggleDoesNotAliasReceiver(t *testing.T) {
	base := New().ToggleFeature("auth").ToggleFeature("cms")
	_ = base.ToggleFeature("blog")
	_ = base.ToggleFeature("auth")
	if !slices.Equal(base.Features, []string{"auth", "cms"}) {
		t.Errorf("receiver mutated: %v", base.Features)
	}
}

func TestTeamMembers(t *testing.T) {
	dev := models.TeamMember{Role: "frontend", Level: "mid", Price: 25000, USDPrice: 300}

	s := New().AddTeamMember(dev).AddTeamMember(dev)
	if len(s.Team) != 2 {
		t.Fatalf("expected 2 independent members, got %d", len(s.Team))
	}

	s = s.RemoveTeamMember(0)
	if len(s.Team) != 1 {
		t.Fatalf("expected 1 member after removal, got %d", len(s.Team))
	}
	if s.Team[0] != dev {
		t.Errorf("remaining member = %+v, want %+v", s.Team[0], dev)
	}
}

func TestRemoveTeamMemberOutOfRange(t *testing.T) {
	dev := models.TeamMember{Role: "backend", Level: "senior", Price: 45000}
	s := New().AddTeamMember(dev)

	for _, idx := range []int{-1, 1, 42} {
		if got := s.RemoveTeamMember(idx); !got.Equal(s) {
			t.Errorf("RemoveTeamMember(%d) changed state", idx)
		}
	}
}

func TestRemoveTeamMemberByPosition(t *testing.T) {
	a := models.TeamMember{Role: "frontend", Level: "junior", Price: 15000}
	b := models.TeamMember{Role: "designer", Level: "mid", Price: 20000}
	c := models.TeamMember{Role: "qa", Level: "junior", Price: 10000}

	s := New().AddTeamMember(a).AddTeamMember(b).AddTeamMember(c).RemoveTeamMember(1)
	if !slices.Equal(s.Team, []models.TeamMember{a, c}) {
		t.Errorf("Team = %+v, want [a c]", s.Team)
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		name  string
		apply func(State) State
		want  []string
	}{
		{
			name:  "add custom page",
			apply: func(s State) State { return s.AddPage("Blog") },
			want:  []string{"Home", "About", "Services", "Contact", "Blog"},
		},
		{
			name:  "duplicate ignored",
			apply: func(s State) State { return s.AddPage("About") },
			want:  []string{"Home", "About", "Services", "Contact"},
		},
		{
			name:  "match is case sensitive",
			apply: func(s State) State { return s.AddPage("about") },
			want:  []string{"Home", "About", "Services", "Contact", "about"},
		},
		{
			name:  "blank ignored",
			apply: func(s State) State { return s.AddPage("   ").AddPage("") },
			want:  []string{"Home", "About", "Services", "Contact"},
		},
		{
			name:  "remove existing",
			apply: func(s State) State { return s.RemovePage("Services") },
			want:  []string{"Home", "About", "Contact"},
		},
		{
			name:  "remove missing is a no-op",
			apply: func(s State) State { return s.RemovePage("Careers") },
			want:  []string{"Home", "About", "Services", "Contact"},
		},
		{
			name:  "remove then re-add goes to the end",
			apply: func(s State) State { return s.RemovePage("Home").AddPage("Home") },
			want:  []string{"About", "Services", "Contact", "Home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(New())
			if !slices.Equal(got.Pages, tt.want) {
				t.Errorf("Pages = %v, want %v", got.Pages, tt.want)
			}
		})
	}
}

func TestRemovePageMissingLeavesStateUnchanged(t *testing.T) {
	s := New().SetProjectType("website").ToggleFeature("auth").AddPage("Blog")
	if got := s.RemovePage("Nonexistent"); !got.Equal(s) {
		t.Errorf("RemovePage with unknown name changed state: %+v", got)
	}
}

func TestEqual(t *testing.T) {
	if !(State{}).Equal(State{Features: []string{}, Team: []models.TeamMember{}}) {
		t.Error("nil and empty lists should compare equal")
	}
	if New().Equal(New().SetTheme("dark")) {
		t.Error("different themes should not compare equal")
	}
	if !New().ToggleFeature("a").ToggleFeature("b").Equal(New().ToggleFeature("b").ToggleFeature("a")) {
		t.Error("feature order should not matter")
	}
	if New().ToggleFeature("a").Equal(New().ToggleFeature("b")) {
		t.Error("different features should not compare equal")
	}
	if New().AddPage("Blog").AddPage("FAQ").Equal(New().AddPage("FAQ").AddPage("Blog")) {
		t.Error("page order is significant")
	}
}
