package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

var loginForce bool

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and cache the session token",
	Long: `Logs in to the redten service and caches the session token in
~/.redten/creds.json for later commands.

The password is read from AI_PASSWORD, or prompted when unset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the cached session token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the cached identity",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().BoolVar(&loginForce, "force", false, "re-login even when a cached token exists")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email := ""
	if len(args) == 1 {
		email = args[0]
	}
	if email == "" && cfg != nil {
		email = cfg.User.Email
	}
	if email == "" {
		return fmt.Errorf("%w: pass an email or set AI_EMAIL", domain.ErrMissingCredentials)
	}

	password := os.Getenv("AI_PASSWORD")
	if password == "" && cfg != nil {
		password = cfg.User.Password
	}
	if password == "" {
		var err error
		password, err = promptPassword(cmd)
		if err != nil {
			return err
		}
	}

	user, err := authService.Login(cmd.Context(), email, password, loginForce)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("logged in as %s (user %d)\n", user.Email, user.ID)
	return nil
}

func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: set AI_PASSWORD when not on a terminal", domain.ErrMissingCredentials)
	}

	cmd.Print("Password: ")
	raw, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if err := authService.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	cmd.Println("logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	// Empty credentials with force=false reads the cache only.
	user, err := authService.Login(cmd.Context(), "", "", false)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			cmd.Println("not logged in")
			return nil
		}
		return err
	}

	cmd.Printf("user:  %d\n", user.ID)
	cmd.Printf("email: %s\n", user.Email)
	cmd.Printf("role:  %s\n", user.Role)
	return nil
}
