package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/culturecoders/culturebot/internal/model"
)

var (
	askUser    string
	askJSON    bool
	askTimeout time.Duration
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask CultureBot a single question",
	Long: `Ask answers one question on stdout, the same way POST /chat does.

Example:
  culturebot ask How do people greet each other in Japan?
  culturebot ask "business etiquette in Germany" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askUser, "user", model.DefaultUserID, "user id for rate limiting")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the answer as JSON")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", time.Minute, "overall timeout")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question is required")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), askTimeout)
	defer cancel()

	resp := a.chat.Respond(ctx, model.ChatRequest{Message: question, UserID: askUser})

	if askJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printAnswer(cmd.OutOrStdout(), resp)
	return nil
}

func printAnswer(w io.Writer, resp model.ChatResponse) {
	fmt.Fprintln(w, resp.Text)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Confidence: %.0f%%  |  Category: %s  |  Sources: %s\n",
		resp.Confidence*100, resp.Category, strings.Join(resp.Sources, "; "))
	if verbose {
		fmt.Fprintf(w, "Origin: %s %s\n", resp.Origin, resp.Provider)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
