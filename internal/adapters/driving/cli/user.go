package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

var userCreateUsername string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the service account",
}

var userCreateCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Create an account and log in",
	Long: `Creates an account for the given email and verifies it with a
login. Creating an email that is already registered succeeds and
logs in to the existing account.`,
	Args: cobra.ExactArgs(1),
	RunE: runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVarP(&userCreateUsername, "username", "u", "", "username for the new account (generated when empty)")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email := args[0]
	password := ""
	if cfg != nil {
		password = cfg.User.Password
	}
	if password == "" {
		var err error
		password, err = promptPassword(cmd)
		if err != nil {
			return err
		}
	}

	creds := domain.Credentials{
		Username: userCreateUsername,
		Email:    email,
		Password: password,
	}
	user, err := authService.Authenticate(cmd.Context(), creds, true)
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}

	cmd.Printf("account ready: %s (user %d)\n", user.Email, user.ID)
	return nil
}
