package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

var (
	resultJSON bool

	reviewAnswer string
	reviewScore  float64
	reviewNotes  string

	searchCollection string
	searchTags       string
	searchSession    string
	searchReviewed   bool
	searchLimit      int
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Retrieve, review and search finished answers",
}

var resultGetCmd = &cobra.Command{
	Use:   "get [job-id]",
	Short: "Fetch the answer for a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultGet,
}

var resultReviewCmd = &cobra.Command{
	Use:   "review [job-id]",
	Short: "Attach an expert review to an answer",
	Long: `Fetches the answer for the job, attaches the corrected answer,
score and notes, and pushes the update back. Everything the server
generated is preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: runResultReview,
}

var resultSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search past answers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResultSearch,
}

func init() {
	resultCmd.PersistentFlags().BoolVar(&resultJSON, "json", false, "output as JSON")

	resultReviewCmd.Flags().StringVarP(&reviewAnswer, "answer", "a", "", "corrected answer text")
	resultReviewCmd.Flags().Float64VarP(&reviewScore, "score", "s", 0, "review score between 0 and 1")
	resultReviewCmd.Flags().StringVarP(&reviewNotes, "notes", "n", "", "free-form review notes")

	resultSearchCmd.Flags().StringVar(&searchCollection, "collection", "", "filter by RAG collection")
	resultSearchCmd.Flags().StringVar(&searchTags, "tags", "", "filter by tags")
	resultSearchCmd.Flags().StringVar(&searchSession, "session", "", "filter by session id")
	resultSearchCmd.Flags().BoolVar(&searchReviewed, "reviewed", false, "only reviewed answers")
	resultSearchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")

	resultCmd.AddCommand(resultGetCmd)
	resultCmd.AddCommand(resultReviewCmd)
	resultCmd.AddCommand(resultSearchCmd)
	rootCmd.AddCommand(resultCmd)
}

// requireUser produces an authenticated identity for result commands:
// the cached token when present, a configured-credentials login
// otherwise.
func requireUser(cmd *cobra.Command) (*domain.User, error) {
	if authService == nil {
		return nil, errors.New("auth service not configured")
	}
	if user, err := authService.Login(cmd.Context(), "", "", false); err == nil {
		return user, nil
	}
	return authService.Authenticate(cmd.Context(), domain.Credentials{}, false)
}

func parseJobID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("job id %q: %w", arg, domain.ErrInvalidInput)
	}
	return id, nil
}

func runResultGet(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	jobID, err := parseJobID(args[0])
	if err != nil {
		return err
	}

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	answer, err := answerService.Get(cmd.Context(), user, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no answer for job %d yet: %w", jobID, err)
		}
		return err
	}

	return printAnswer(cmd, answer)
}

func runResultReview(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	jobID, err := parseJobID(args[0])
	if err != nil {
		return err
	}
	if reviewAnswer == "" && reviewNotes == "" {
		return fmt.Errorf("%w: provide --answer or --notes", domain.ErrInvalidInput)
	}

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	updated, err := answerService.Review(cmd.Context(), user, jobID, reviewAnswer, reviewScore, reviewNotes)
	if err != nil {
		return err
	}

	cmd.Printf("review saved for job %d (record %d)\n", jobID, updated.ID)
	return nil
}

func runResultSearch(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	user, err := requireUser(cmd)
	if err != nil {
		return err
	}

	q := domain.AnswerSearch{
		Collection:   searchCollection,
		Tags:         searchTags,
		SessionID:    searchSession,
		OnlyReviewed: searchReviewed,
		Limit:        searchLimit,
	}
	if len(args) == 1 {
		q.Question = args[0]
	}

	res, err := answerService.Search(cmd.Context(), user, q)
	if err != nil {
		return err
	}

	if resultJSON {
		data, merr := json.MarshalIndent(res.Recs, "", "  ")
		if merr != nil {
			return fmt.Errorf("marshalling results: %w", merr)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(res.Recs) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	for i := range res.Recs {
		rec := &res.Recs[i]
		cmd.Printf("  [%d] job %d (%.2f) %s\n", i+1, rec.JobID, rec.Score, rec.Question)
		if rec.Answer != "" {
			cmd.Printf("      %s\n", rec.Answer)
		}
	}
	return nil
}

func printAnswer(cmd *cobra.Command, answer *domain.Answer) error {
	if resultJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Answer)
	cmd.Printf("\njob: %d  score: %.2f", answer.JobID, answer.Score)
	if answer.ModelName != "" {
		cmd.Printf("  model: %s", answer.ModelName)
	}
	cmd.Println()
	if answer.ReviewedAnswer != "" {
		cmd.Printf("reviewed: %s (%.2f)\n", answer.ReviewedAnswer, answer.ReviewedScore)
	}
	return nil
}
