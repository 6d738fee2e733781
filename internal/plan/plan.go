// Package plan reads wizard choices from a TOML file and replays them
// through a wizard, one step at a time.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/mmynk/webnest/internal/wizard"
)

var ErrUnknownTeamLevel = errors.New("unknown team role or level")

// Member is a team entry in a plan.
type Member struct {
	Role  string `toml:"role"`
	Level string `toml:"level"`
}

// Plan is a complete set of wizard choices. A nil Pages keeps the default
// pages; a non-nil Pages replaces them.
type Plan struct {
	ProjectType    string   `toml:"project_type"`
	Industry       string   `toml:"industry"`
	Features       []string `toml:"features"`
	Team           []Member `toml:"team"`
	AddOns         []string `toml:"add_ons"`
	Theme          string   `toml:"theme"`
	Pages          []string `toml:"pages"`
	StarterPackage string   `toml:"starter_package"`
}

// Parse decodes a plan, rejecting unknown keys.
func Parse(data []byte) (Plan, error) {
	var p Plan
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	return p, nil
}

// LoadFile reads and parses the plan at path.
func LoadFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan %s: %w", path, err)
	}
	return Parse(data)
}

// Apply replays p through w, starting at the wizard's current step and
// leaving it on the summary step. Unknown ids are passed through like any
// other user input; only a team member the catalog cannot price is an error.
func (p Plan) Apply(w *wizard.Wizard) error {
	for {
		switch w.Step() {
		case wizard.StepType:
			if p.ProjectType != "" {
				w.SetProjectType(p.ProjectType)
			}
		case wizard.StepIndustry:
			if p.Industry != "" {
				w.SetIndustry(p.Industry)
			}
			if p.StarterPackage != "" && !w.SelectStarterPackage(p.StarterPackage) {
				return fmt.Errorf("starter package %q is not offered for industry %q", p.StarterPackage, p.Industry)
			}
		case wizard.StepFeatures:
			for _, id := range p.Features {
				if !w.Selection().HasFeature(id) {
					w.ToggleFeature(id)
				}
			}
		case wizard.StepTeam:
			for _, m := range p.Team {
				if !w.AddTeamMember(m.Role, m.Level) {
					return fmt.Errorf("%w: %s/%s", ErrUnknownTeamLevel, m.Role, m.Level)
				}
			}
		case wizard.StepAddOns:
			for _, id := range p.AddOns {
				if !w.Selection().HasAddOn(id) {
					w.ToggleAddOn(id)
				}
			}
		case wizard.StepTheme:
			if p.Theme != "" {
				w.SetTheme(p.Theme)
			}
		case wizard.StepPages:
			if p.Pages != nil {
				for _, page := range w.Selection().Pages {
					if !slices.Contains(p.Pages, page) {
						w.RemovePage(page)
					}
				}
				for _, page := range p.Pages {
					w.AddPage(page)
				}
			}
		case wizard.StepSummary:
			return nil
		}
		w.Next()
	}
}
