package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cardoctor/internal/config"
	"cardoctor/pkg/claims"
	"cardoctor/pkg/session"
)

// tokenCmd mints a session token for manual testing with curl.
func tokenCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a session token for an email",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			manager, err := session.NewManager(cfg.JWTSecret)
			if err != nil {
				return err
			}
			s, err := manager.Issue(claims.Identity{Email: email})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Token:   %s\n", s.Token)
			fmt.Fprintf(out, "Email:   %s\n", s.Identity.Email)
			fmt.Fprintf(out, "Expires: %s\n\n", s.ExpiresAt.Format(time.RFC3339))
			fmt.Fprintf(out, "curl -b '%s=%s' 'http://localhost%s/bookings?email=%s'\n",
				session.CookieName, s.Token, cfg.Addr(), s.Identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email to sign into the token")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
