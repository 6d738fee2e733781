package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/webnest/internal/catalog"
	"github.com/mmynk/webnest/internal/plan"
	"github.com/mmynk/webnest/internal/wizard"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price a plan file without submitting it",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().String("plan", "", "plan TOML file")
	_ = estimateCmd.MarkFlagRequired("plan")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("plan")
	w, err := runPlan(cat, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(cat, w))
	return nil
}

// runPlan loads the plan at path and drives a fresh wizard to the summary
// step with it.
func runPlan(cat *catalog.Catalog, path string) (*wizard.Wizard, error) {
	p, err := plan.LoadFile(path)
	if err != nil {
		return nil, err
	}
	w := wizard.New(cat)
	if err := p.Apply(w); err != nil {
		return nil, err
	}
	return w, nil
}
