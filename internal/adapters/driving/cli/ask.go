package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/redten-labs/redten-cli/internal/adapters/driving/tui"
	"github.com/redten-labs/redten-cli/internal/core/domain"
)

var (
	askCollectionID   string
	askCollectionName string
	askModel          string
	askTags           string
	askSession        string
	askNoWait         bool
	askPlain          bool
	askInterval       time.Duration
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Submit a question and wait for the answer",
	Long: `Submits the question as a processing job, polls until the worker
finishes, and prints the answer.

With --no-wait the command returns the job id right after submission;
fetch the answer later with "redten result get".`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askCollectionID, "collection-id", "c", "", "RAG collection id to search")
	askCmd.Flags().StringVar(&askCollectionName, "collection-name", "", "RAG collection name to search")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "LLM model name override")
	askCmd.Flags().StringVar(&askTags, "tags", "", "comma-separated tags stored on the job")
	askCmd.Flags().StringVar(&askSession, "session", "", "session id correlating related asks")
	askCmd.Flags().BoolVar(&askNoWait, "no-wait", false, "return the job id without waiting for the answer")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "plain output without the progress view")
	askCmd.Flags().DurationVar(&askInterval, "poll-interval", domain.DefaultPollInterval, "wait between job status polls")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if askService == nil {
		return errors.New("ask service not configured")
	}

	opts := domain.AskOptions{
		Params: domain.JobParams{
			ModelName:      askModel,
			CollectionID:   askCollectionID,
			CollectionName: askCollectionName,
			Tags:           askTags,
			SessionID:      askSession,
		},
		NoWait:       askNoWait,
		PollInterval: askInterval,
	}

	if askNoWait || askPlain {
		outcome, err := askService.Ask(cmd.Context(), question, askCollectionID, opts)
		if err != nil {
			return fmt.Errorf("ask failed: %w", err)
		}
		return printOutcome(cmd, outcome)
	}

	// The view prints the answer itself.
	if _, err := tui.Run(question, func(ctx context.Context) (*domain.AskOutcome, error) {
		return askService.Ask(ctx, question, askCollectionID, opts)
	}); err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}
	return nil
}

func printOutcome(cmd *cobra.Command, outcome *domain.AskOutcome) error {
	if outcome.Answer != nil {
		cmd.Println(outcome.Answer.Answer)
		cmd.Printf("\njob: %d  score: %.2f\n", outcome.Answer.JobID, outcome.Answer.Score)
		return nil
	}
	if outcome.Status != nil {
		cmd.Printf("job submitted: %d\n", outcome.Status.JobID)
		cmd.Printf("fetch the answer with: redten result get %d\n", outcome.Status.JobID)
		return nil
	}
	cmd.Println("no answer")
	return nil
}
