// Package wizard sequences the project-creation flow.
//
// A Wizard owns one selection for its lifetime, walks the eight steps from
// project type to summary, and keeps the estimate in sync with the selection.
// It is not safe for concurrent use.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/estimator"
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/selection"
	"github.com/mmynk/webnest/internal/submission"
)

// StarterIndustry is the industry for which starter packages are offered.
const StarterIndustry = "student"

var (
	ErrNotOnSummary = errors.New("submit is only available on the summary step")
	ErrDone         = errors.New("wizard already submitted")
)

// Submitter sends a finished selection to the project service.
type Submitter interface {
	Submit(ctx context.Context, draft submission.Draft) (string, error)
}

// Wizard is a single run of the project-creation flow.
type Wizard struct {
	cat  *catalog.Catalog
	step Step
	sel  selection.State

	estimate    models.Estimate
	hasEstimate bool

	starterPackage string
	done           bool
	projectID      string
}

// New starts a wizard on the first step with an empty selection.
func New(cat *catalog.Catalog) *Wizard {
	return &Wizard{
		cat:  cat,
		step: FirstStep,
		sel:  selection.New(),
	}
}

func (w *Wizard) Step() Step { return w.step }

// Selection returns a copy of the current selection.
func (w *Wizard) Selection() selection.State { return w.sel.Clone() }

// Estimate returns the most recent estimate. ok is false until a project type
// and industry have both been chosen.
func (w *Wizard) Estimate() (models.Estimate, bool) {
	return w.estimate, w.hasEstimate
}

// Done reports whether the wizard was submitted successfully.
func (w *Wizard) Done() bool { return w.done }

// ProjectID is the id returned by the project service after a successful
// submit.
func (w *Wizard) ProjectID() string { return w.projectID }

// Next advances one step. It does nothing on the summary step.
func (w *Wizard) Next() { w.step = w.step.Next() }

// Previous goes back one step. It does nothing on the first step.
func (w *Wizard) Previous() { w.step = w.step.Previous() }

func (w *Wizard) SetProjectType(id string) { w.apply(w.sel.SetProjectType(id)) }

// SetIndustry replaces the industry. Leaving the starter industry drops any
// chosen starter package, since packages are only offered there.
func (w *Wizard) SetIndustry(id string) {
	w.apply(w.sel.SetIndustry(id))
	if id != StarterIndustry {
		w.starterPackage = ""
	}
}

func (w *Wizard) ToggleFeature(id string) { w.apply(w.sel.ToggleFeature(id)) }

// AddTeamMember snapshots the catalog price of role/level and appends it. It
// reports false if the level is not in the catalog.
func (w *Wizard) AddTeamMember(role, level string) bool {
	lvl, ok := w.cat.TeamRoleLevel(role, level)
	if !ok {
		return false
	}
	w.apply(w.sel.AddTeamMember(models.TeamMember{
		Role:     role,
		Level:    level,
		Price:    lvl.Price,
		USDPrice: lvl.USDPrice,
	}))
	return true
}

func (w *Wizard) RemoveTeamMember(index int) { w.apply(w.sel.RemoveTeamMember(index)) }

func (w *Wizard) ToggleAddOn(id string) { w.apply(w.sel.ToggleAddOn(id)) }

func (w *Wizard) AddPage(name string) { w.apply(w.sel.AddPage(name)) }

func (w *Wizard) RemovePage(name string) { w.apply(w.sel.RemovePage(name)) }

// SetTheme replaces the theme. Themes carry no price, so the estimate is not
// recomputed; extend this if themes ever get a price.
func (w *Wizard) SetTheme(id string) {
	w.sel = w.sel.SetTheme(id)
}

// OfferedPackages lists the starter packages available for the current
// industry.
func (w *Wizard) OfferedPackages() []models.StarterPackage {
	if w.sel.Industry != StarterIndustry {
		return nil
	}
	return w.cat.StarterPackageList()
}

// SelectStarterPackage picks an offered package, or clears the choice when id
// is empty. The package only changes the displayed budget; its features and
// pages are not merged into the selection.
func (w *Wizard) SelectStarterPackage(id string) bool {
	if id == "" {
		w.starterPackage = ""
		return true
	}
	if w.sel.Industry != StarterIndustry {
		return false
	}
	if _, ok := w.cat.StarterPackage(id); !ok {
		return false
	}
	w.starterPackage = id
	return true
}

// StarterPackage returns the chosen starter package, if any.
func (w *Wizard) StarterPackage() (models.StarterPackage, bool) {
	if w.starterPackage == "" {
		return models.StarterPackage{}, false
	}
	return w.cat.StarterPackage(w.starterPackage)
}

// DisplayBudget is the budget shown to the client: the starter package price
// when one is chosen, otherwise the computed estimate.
func (w *Wizard) DisplayBudget() (models.Budget, bool) {
	if pkg, ok := w.StarterPackage(); ok {
		return models.Budget{Local: int64(math.Round(pkg.Price)), USD: int64(math.Round(pkg.USDPrice))}, true
	}
	return w.estimate.Budget, w.hasEstimate
}

// Breakdown returns the line items behind the current estimate.
func (w *Wizard) Breakdown() []models.LineItem {
	_, items, _ := estimator.Breakdown(w.cat, w.sel)
	return items
}

// Submit sends the selection from the summary step. On success the wizard is
// finished and its selection discarded; on failure nothing changes so the
// client can retry.
func (w *Wizard) Submit(ctx context.Context, s Submitter) (string, error) {
	if w.done {
		return "", ErrDone
	}
	if w.step != StepSummary {
		return "", fmt.Errorf("%w (current step: %s)", ErrNotOnSummary, w.step)
	}

	id, err := s.Submit(ctx, submission.Draft{
		Selection:      w.sel.Clone(),
		Estimate:       w.estimate,
		StarterPackage: w.starterPackage,
	})
	if err != nil {
		slog.Warn("Project submission failed", "step", w.step, "error", err)
		return "", err
	}

	slog.Info("Project submitted", "project_id", id)
	w.done = true
	w.projectID = id
	w.sel = selection.New()
	w.estimate, w.hasEstimate = models.Estimate{}, false
	w.starterPackage = ""
	return id, nil
}

// apply installs next and recomputes the estimate in one step. When the
// estimator declines, the previous estimate is kept.
func (w *Wizard) apply(next selection.State) {
	est, ok := estimator.Estimate(w.cat, next)
	w.sel = next
	if ok {
		w.estimate, w.hasEstimate = est, true
	}
}
