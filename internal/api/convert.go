package api

import (
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/selection"
)

// FromSelection converts a selection to its wire form.
func FromSelection(s selection.State) Selection {
	s = s.Clone()
	return Selection{
		ProjectType: s.ProjectType,
		Industry:    s.Industry,
		Features:    s.Features,
		Team:        s.Team,
		AddOns:      s.AddOns,
		Pages:       s.Pages,
		Theme:       s.Theme,
	}
}

// ToSelection converts a wire selection back. A missing page list becomes the
// default page plan.
func (s Selection) ToSelection() selection.State {
	out := selection.New()
	out.ProjectType = s.ProjectType
	out.Industry = s.Industry
	out.Theme = s.Theme
	out.Features = append(out.Features, s.Features...)
	out.Team = append(out.Team, s.Team...)
	out.AddOns = append(out.AddOns, s.AddOns...)
	if s.Pages != nil {
		out.Pages = append([]string{}, s.Pages...)
	}
	return out
}

// FromProject converts a stored project to its wire form.
func FromProject(p *models.Project) Project {
	return Project{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		ProjectType:        p.ProjectType,
		Budget:             p.Budget,
		Features:           p.Features,
		Timeline:           p.TimelineDays,
		CustomRequirements: p.Requirements,
		CreatedBy:          p.CreatedBy,
		CreatedAt:          p.CreatedAt,
	}
}
