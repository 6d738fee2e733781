package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/models"
	"github.com/mmynk/webnest/internal/wizard"
)

var (
	colorAccent = lipgloss.Color("#7D56F4")
	colorMuted  = lipgloss.Color("#8A8A8A")
	colorGood   = lipgloss.Color("#04B575")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle   = lipgloss.NewStyle().Width(34)
	amountStyle  = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

func row(label string, amount models.Money) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		amountStyle.Render(fmt.Sprintf("%.0f", amount)),
	)
}

func section(title string, rows []string) string {
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{headerStyle.Render(title)}, rows...)...)
}

// renderCatalog lists every catalog entry with its price.
func renderCatalog(d catalog.Data) string {
	var blocks []string

	var rows []string
	for _, pt := range d.ProjectTypes {
		rows = append(rows, row(pt.Name+mutedStyle.Render(" ("+pt.ID+")"), pt.BasePrice))
	}
	blocks = append(blocks, section("Project types", rows))

	rows = nil
	for _, in := range d.Industries {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(in.Name+mutedStyle.Render(" ("+in.ID+")")),
			amountStyle.Render(fmt.Sprintf("x%.2f", in.Multiplier)),
		))
	}
	blocks = append(blocks, section("Industries", rows))

	rows = nil
	for _, f := range d.Features {
		rows = append(rows, row(f.Name+mutedStyle.Render(" ("+f.ID+")"), f.Price))
	}
	blocks = append(blocks, section("Features", rows))

	rows = nil
	for _, r := range d.TeamRoles {
		for _, l := range r.Levels {
			rows = append(rows, row(fmt.Sprintf("%s, %s", r.Name, l.Level)+mutedStyle.Render(" ("+r.ID+")"), l.Price))
		}
	}
	blocks = append(blocks, section("Team", rows))

	rows = nil
	for _, a := range d.AddOns {
		rows = append(rows, row(a.Name+mutedStyle.Render(" ("+a.ID+")"), a.Price))
	}
	blocks = append(blocks, section("Add-ons", rows))

	rows = nil
	for _, p := range d.StarterPackages {
		rows = append(rows, row(p.Name+mutedStyle.Render(" ("+p.ID+")"), p.Price))
	}
	blocks = append(blocks, section("Starter packages (student)", rows))

	themes := make([]string, 0, len(d.Themes))
	for _, th := range d.Themes {
		themes = append(themes, th.ID)
	}
	blocks = append(blocks, section("Themes", []string{strings.Join(themes, ", ")}))

	if len(d.CommonPages) > 0 {
		blocks = append(blocks, section("Common pages", []string{strings.Join(d.CommonPages, ", ")}))
	}

	return strings.Join(blocks, "\n\n")
}

// renderSummary draws the summary step of a wizard.
func renderSummary(cat *catalog.Catalog, w *wizard.Wizard) string {
	sel := w.Selection()

	typeName, industryName := sel.ProjectType, sel.Industry
	if pt, ok := cat.ProjectType(sel.ProjectType); ok {
		typeName = pt.Name
	}
	if in, ok := cat.Industry(sel.Industry); ok {
		industryName = in.Name
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s for %s", typeName, industryName)),
		mutedStyle.Render("Pages: " + strings.Join(sel.Pages, ", ")),
	}
	if sel.Theme != "" {
		lines = append(lines, mutedStyle.Render("Theme: "+sel.Theme))
	}
	lines = append(lines, "")

	for _, item := range w.Breakdown() {
		lines = append(lines, row(item.Label, item.Amount))
	}

	budget, ok := w.DisplayBudget()
	if !ok {
		lines = append(lines, "", mutedStyle.Render("Choose a project type and industry to see an estimate."))
		return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	est, _ := w.Estimate()

	if pkg, ok := w.StarterPackage(); ok {
		lines = append(lines, "", mutedStyle.Render("Starter package: "+pkg.Name))
	}
	lines = append(lines,
		"",
		headerStyle.Render("Estimate"),
		fmt.Sprintf("Budget:   %d %s (~%d USD)", budget.Local, cfg.Currency, budget.USD),
		fmt.Sprintf("Timeline: %d days", est.TimelineDays),
	)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
