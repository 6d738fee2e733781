package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/webnest/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a submission client",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().String("subject", "", "client name recorded on created projects")
	tokenCmd.Flags().String("scope", "", "optional scope claim")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	if cfg.Auth.Secret == "" {
		return errors.New("auth.secret is not configured")
	}
	subject, _ := cmd.Flags().GetString("subject")
	scope, _ := cmd.Flags().GetString("scope")

	token, err := auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL).Generate(subject, scope)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
