package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cardoctor/internal/config"
	"cardoctor/internal/mysql"
	"cardoctor/pkg/user"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login credentials stored in MySQL",
	}
	cmd.AddCommand(userAddCmd())
	return cmd
}

func userAddCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.CredentialsEnabled() {
				return errors.New("MYSQL_DSN is not set in environment")
			}

			db, err := mysql.LoadDB(cmd.Context(), cfg.MySQLDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := user.NewService(user.NewMySQLRepo(db)).Add(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&email, "email", "", "email to register")
	fs.StringVar(&password, "password", "", "plain text password, stored as a bcrypt hash")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
