package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/culturecoders/culturebot/internal/chat"
	"github.com/culturecoders/culturebot/internal/observability"
	"github.com/culturecoders/culturebot/internal/worker"
)

var (
	batchOut     string
	batchUser    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer many questions from a file in parallel",
	Long: `Batch answers every question in a file concurrently:
- One question per line; blank lines and # comments are skipped
- Repeated questions are answered once
- Answers are written as JSON lines in input order

Example:
  culturebot batch questions.txt
  culturebot batch questions.txt --concurrency 8 --out answers.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output file for JSON lines (default stdout)")
	batchCmd.Flags().StringVar(&batchUser, "user", "", "user id for rate limiting (default: a fresh id per run)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	_ = viper.BindPFlag("concurrency.workers", batchCmd.Flags().Lookup("concurrency"))
}

// batchLine is one JSON line of batch output
type batchLine struct {
	Question   string   `json:"question"`
	Response   string   `json:"response,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
	Sources    []string `json:"sources,omitempty"`
	Category   string   `json:"category,omitempty"`
	Origin     string   `json:"origin,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	// a batch shares one user id, so it waits for tokens rather than
	// degrading to composed answers past the burst
	a, err := newApp(chat.WaitForLimiter())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	userID := batchUser
	if userID == "" {
		userID = "batch-" + uuid.NewString()
	}
	workers := a.cfg.Concurrency.Workers

	log := observability.Child(a.logger.With().Str("run_id", userID))
	log.Info().
		Str("file", file).
		Int("workers", workers).
		Dur("timeout", batchTimeout).
		Msg("Batch started")

	out := cmd.OutOrStdout()
	if batchOut != "" {
		f, err := os.Create(batchOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	start := time.Now()
	processor := worker.NewBatchProcessor(a.chat, workers, userID)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	failures, err := writeBatchResults(out, results)
	if err != nil {
		return err
	}

	log.Info().
		Int("total", len(results)).
		Int("failures", failures).
		Dur("elapsed", time.Since(start)).
		Msg("Batch complete")

	if failures > 0 {
		return fmt.Errorf("%d of %d questions were not answered", failures, len(results))
	}
	return nil
}

// writeBatchResults writes one JSON line per result and counts failures
func writeBatchResults(w io.Writer, results []*worker.QuestionResult) (int, error) {
	enc := json.NewEncoder(w)
	failures := 0

	for _, r := range results {
		line := batchLine{Question: r.Question}
		if r.Error != nil {
			failures++
			line.Error = r.Error.Error()
		} else {
			line.Response = r.Response.Text
			line.Confidence = r.Response.Confidence
			line.Sources = r.Response.Sources
			line.Category = r.Response.Category
			line.Origin = string(r.Response.Origin)
		}
		if err := enc.Encode(line); err != nil {
			return failures, fmt.Errorf("write result: %w", err)
		}
	}
	return failures, nil
}
