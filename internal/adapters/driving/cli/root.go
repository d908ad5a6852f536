// Package cli implements the redten command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redten-labs/redten-cli/internal/adapters/driven/api"
	credstore "github.com/redten-labs/redten-cli/internal/adapters/driven/auth"
	"github.com/redten-labs/redten-cli/internal/adapters/driven/config"
	"github.com/redten-labs/redten-cli/internal/adapters/driven/storage/sqlite"
	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
	"github.com/redten-labs/redten-cli/internal/core/ports/driving"
	"github.com/redten-labs/redten-cli/internal/core/services"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// version is set from main at startup.
var version = "dev"

// Services the commands run against. Wired by Execute; tests inject
// mocks directly.
var (
	cfg           *config.Config
	askService    driving.AskService
	authService   driving.AuthService
	answerService driving.AnswerService
	historyStore  driven.HistoryStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "redten",
	Short: "Ask questions against the redten AI service",
	Long: `redten submits questions to the redten job-processing service,
waits for the worker to finish, and prints the answer.

Credentials come from AI_EMAIL and AI_PASSWORD (or ~/.redten/config.toml);
a missing account is created on first ask.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag || os.Getenv("LOG") == "debug" || (cfg != nil && cfg.Debug) {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the real services from configuration and runs the CLI.
func Execute(v string) error {
	version = v

	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg = c

	gateway, err := api.New(api.Options{
		BaseURL:  c.Endpoint.BaseURL(),
		CAFile:   c.TLS.CAFile,
		CertFile: c.TLS.CertFile,
		KeyFile:  c.TLS.KeyFile,
		Debug:    c.Debug,
	})
	if err != nil {
		return fmt.Errorf("building api client: %w", err)
	}

	var cache driven.CredentialsCache
	if !c.Creds.DisableCache {
		cache = credstore.NewCredsFile(c.Creds.File)
	}

	if !c.History.Disable {
		store, herr := sqlite.NewHistoryStore(c.History.File)
		if herr != nil {
			// History is optional bookkeeping; run without it.
			logger.Warn("opening history store: %v", herr)
		} else {
			historyStore = store
			defer store.Close()
		}
	}

	defaults := domain.Credentials{
		Username: c.User.Username,
		Email:    c.User.Email,
		Password: c.User.Password,
	}
	authService = services.NewAuthService(gateway, cache, defaults)
	askService = services.NewAskService(authService, gateway, historyStore, defaults)
	answerService = services.NewAnswerService(gateway)

	return rootCmd.Execute()
}
