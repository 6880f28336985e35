package cmd

import (
	"fmt"

	"github.com/killallgit/catalog-api/internal/services/auth"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the write endpoints",
	Long: `Sign a JWT with the configured secret and issuer.

Send it as "Authorization: Bearer <token>" on POST, PUT and DELETE requests.`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().String("subject", "", "token subject, also the rate limit key")
	tokenCmd.Flags().String("name", "", "display name stored in the token")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	subject, _ := cmd.Flags().GetString("subject")
	name, _ := cmd.Flags().GetString("name")

	svc := auth.NewService(appConfig.Auth.JWTSecret, appConfig.Auth.Issuer, appConfig.Auth.TokenTTL)
	token, err := svc.IssueToken(subject, name)
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
