// Package estimator computes project budgets and delivery timelines.
//
// Estimate is a pure function of a catalog and a selection: the same inputs
// always produce the same output.
package estimator

import (
	"fmt"
	"math"

	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/selection"
)

const (
	// PageThreshold is the number of pages included in the base price (the
	// size of the default page plan).
	PageThreshold = 4
	// PageSurcharge is charged per page beyond PageThreshold, in local units.
	PageSurcharge = 1000.0
	// USDRate converts local currency to USD.
	USDRate = 0.012

	BaseDays          = 7
	DaysPerFeature    = 2
	DaysPerTeamMember = 1
	DaysPerExtraPage  = 1
)

// Line item kinds reported by Breakdown.
const (
	KindBase    = "base"
	KindFeature = "feature"
	KindTeam    = "team"
	KindAddOn   = "addon"
	KindPages   = "pages"
)

// Estimate computes the budget and timeline for sel.
//
// It returns false when the project type or industry is unset; callers keep
// whatever estimate they had before. Ids that do not resolve in the catalog
// contribute nothing to the budget. The timeline counts selections, so a
// stale feature id still adds its days.
//
// Algorithm:
//   - base = project type base price × industry multiplier
//   - add each resolvable feature and add-on price, and each team member's
//     snapshotted price
//   - add PageSurcharge for every page beyond PageThreshold
//   - local = round(base), usd = round(base × USDRate), both from the
//     unrounded base
//   - days = 7 + 2×features + 1×team members + 1×extra pages
func Estimate(cat *catalog.Catalog, sel selection.State) (models.Estimate, bool) {
	est, _, ok := compute(cat, sel, false)
	return est, ok
}

// Breakdown is Estimate plus the line items that make up the total.
func Breakdown(cat *catalog.Catalog, sel selection.State) (models.Estimate, []models.LineItem, bool) {
	return compute(cat, sel, true)
}

// AdditionalPages is the number of pages charged beyond the threshold.
func AdditionalPages(pageCount int) int {
	return max(0, pageCount-PageThreshold)
}

// ToUSD converts a local amount with the fixed rate and rounds it.
func ToUSD(local models.Money) int64 {
	return int64(math.Round(local * USDRate))
}

func compute(cat *catalog.Catalog, sel selection.State, itemize bool) (models.Estimate, []models.LineItem, bool) {
	if sel.ProjectType == "" || sel.Industry == "" {
		return models.Estimate{}, nil, false
	}

	var items []models.LineItem
	add := func(kind, label string, amount models.Money) {
		if itemize {
			items = append(items, models.LineItem{Kind: kind, Label: label, Amount: amount})
		}
	}

	// A missing type or industry zeroes the base price.
	var base models.Money
	pt, okType := cat.ProjectType(sel.ProjectType)
	in, okIndustry := cat.Industry(sel.Industry)
	if okType && okIndustry {
		base = pt.BasePrice * in.Multiplier
		add(KindBase, fmt.Sprintf("%s × %s (%g)", pt.Name, in.Name, in.Multiplier), base)
	}

	for _, id := range sel.Features {
		f, ok := cat.Feature(id)
		if !ok {
			continue
		}
		base += f.Price
		add(KindFeature, f.Name, f.Price)
	}

	for _, m := range sel.Team {
		base += m.Price
		add(KindTeam, m.Role+" ("+m.Level+")", m.Price)
	}

	for _, id := range sel.AddOns {
		a, ok := cat.AddOn(id)
		if !ok {
			continue
		}
		base += a.Price
		add(KindAddOn, a.Name, a.Price)
	}

	extraPages := AdditionalPages(len(sel.Pages))
	if extraPages > 0 {
		surcharge := float64(extraPages) * PageSurcharge
		base += surcharge
		add(KindPages, fmt.Sprintf("%d additional pages", extraPages), surcharge)
	}

	est := models.Estimate{
		Budget: models.Budget{
			Local: int64(math.Round(base)),
			USD:   ToUSD(base),
		},
		TimelineDays: BaseDays +
			len(sel.Features)*DaysPerFeature +
			len(sel.Team)*DaysPerTeamMember +
			extraPages*DaysPerExtraPage,
	}
	return est, items, true
}
