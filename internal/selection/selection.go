// Package selection holds the choices a client makes in the project wizard.
//
// State is a value type. Every mutator returns a new State and never shares
// list storage with its receiver, so earlier states stay valid snapshots.
// Ids are stored as opaque strings; whether they resolve in the catalog is
// only checked by the estimator and by the project service.
package selection

import (
	"slices"
	"strings"

	"github.com/mmynk/webnest/internal/models"
)

// DefaultPages is the page plan every new selection starts with.
var DefaultPages = []string{"Home", "About", "Services", "Contact"}

// State is an in-progress project selection.
type State struct {
	ProjectType string
	Industry    string
	Features    []string
	Team        []models.TeamMember
	AddOns      []string
	Pages       []string
	Theme       string
}

// New returns an empty selection seeded with the default pages.
func New() State {
	return State{
		Features: []string{},
		Team:     []models.TeamMember{},
		AddOns:   []string{},
		Pages:    slices.Clone(DefaultPages),
	}
}

// SetProjectType replaces the project type.
func (s State) SetProjectType(id string) State {
	out := s.clone()
	out.ProjectType = id
	return out
}

// SetIndustry replaces the industry.
func (s State) SetIndustry(id string) State {
	out := s.clone()
	out.Industry = id
	return out
}

// ToggleFeature removes the feature if selected, otherwise appends it.
func (s State) ToggleFeature(id string) State {
	out := s.clone()
	out.Features = toggle(s.Features, id)
	return out
}

// AddTeamMember appends a team-role instance. Identical members are kept as
// separate entries.
func (s State) AddTeamMember(m models.TeamMember) State {
	out := s.clone()
	out.Team = append(out.Team, m)
	return out
}

// RemoveTeamMember removes the member at index. Out-of-range indexes are
// ignored.
func (s State) RemoveTeamMember(index int) State {
	out := s.clone()
	if index < 0 || index >= len(out.Team) {
		return out
	}
	out.Team = slices.Delete(out.Team, index, index+1)
	return out
}

// ToggleAddOn removes the add-on if selected, otherwise appends it.
func (s State) ToggleAddOn(id string) State {
	out := s.clone()
	out.AddOns = toggle(s.AddOns, id)
	return out
}

// AddPage appends a page. Blank names and exact duplicates are ignored.
func (s State) AddPage(name string) State {
	out := s.clone()
	if strings.TrimSpace(name) == "" || slices.Contains(out.Pages, name) {
		return out
	}
	out.Pages = append(out.Pages, name)
	return out
}

// RemovePage removes the page with the given name, if present.
func (s State) RemovePage(name string) State {
	out := s.clone()
	if i := slices.Index(out.Pages, name); i >= 0 {
		out.Pages = slices.Delete(out.Pages, i, i+1)
	}
	return out
}

// SetTheme replaces the theme.
func (s State) SetTheme(id string) State {
	out := s.clone()
	out.Theme = id
	return out
}

// HasFeature reports whether the feature id is selected.
func (s State) HasFeature(id string) bool {
	return slices.Contains(s.Features, id)
}

// HasAddOn reports whether the add-on id is selected.
func (s State) HasAddOn(id string) bool {
	return slices.Contains(s.AddOns, id)
}

// Equal reports whether two selections hold the same choices. Features and
// add-ons are id sets and compare without regard to order; team members and
// pages compare in order. Nil and empty lists compare equal.
func (s State) Equal(o State) bool {
	return s.ProjectType == o.ProjectType &&
		s.Industry == o.Industry &&
		s.Theme == o.Theme &&
		sameIDs(s.Features, o.Features) &&
		slices.Equal(s.Team, o.Team) &&
		sameIDs(s.AddOns, o.AddOns) &&
		slices.Equal(s.Pages, o.Pages)
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return s.clone()
}

func (s State) clone() State {
	s.Features = cloneNonNil(s.Features)
	s.Team = cloneNonNil(s.Team)
	s.AddOns = cloneNonNil(s.AddOns)
	s.Pages = cloneNonNil(s.Pages)
	return s
}

// toggle filters id out of ids, or appends it when absent. Remaining order is
// preserved.
func toggle(ids []string, id string) []string {
	if !slices.Contains(ids, id) {
		return append(cloneNonNil(ids), id)
	}
	out := make([]string, 0, len(ids)-1)
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func cloneNonNil[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}
