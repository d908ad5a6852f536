package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent asks from the local history",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of records")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history is disabled")
	}

	recs, err := historyStore.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		cmd.Println("No history yet.")
		return nil
	}
	for i := range recs {
		rec := &recs[i]
		cmd.Printf("  job %d  %s  %s\n", rec.JobID, rec.AskedAt, rec.Question)
		if rec.Answer != "" {
			cmd.Printf("      %s\n", rec.Answer)
		}
	}
	return nil
}
