package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/webnest/internal/projectclient"
	"github.com/mmynk/webnest/internal/submission"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Price a plan file and create the project",
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().String("plan", "", "plan TOML file")
	submitCmd.Flags().String("server", "", "project service URL")
	submitCmd.Flags().String("token", "", "bearer token")
	_ = submitCmd.MarkFlagRequired("plan")
	_ = viper.BindPFlag("client.base_url", submitCmd.Flags().Lookup("server"))
	_ = viper.BindPFlag("auth.token", submitCmd.Flags().Lookup("token"))
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("plan")
	w, err := runPlan(cat, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummary(cat, w))

	client := projectclient.New(cfg.Client.BaseURL, cfg.Auth.Token, nil)
	adapter := submission.NewAdapter(cat, client, cfg.Client.Timeout)

	id, err := w.Submit(cmd.Context(), adapter)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("Project created: "+id))
	return nil
}
