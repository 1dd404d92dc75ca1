package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/culturecoders/culturebot/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CultureBot HTTP API",
	Long: `Serve the chat and fact explorer API over HTTP.

Example:
  culturebot serve
  culturebot serve --addr 127.0.0.1:9000
  culturebot serve --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default 0.0.0.0:8000)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Deps{
		Catalog:  a.catalog,
		Profiles: a.profiles,
		Chat:     a.chat,
		Version:  Version,
	}, a.cfg.Server, a.logger)

	a.logger.Info().
		Str("version", Version).
		Int("facts", a.catalog.Len()).
		Str("llm_provider", a.enricher.ProviderName()).
		Msg("Starting CultureBot API")

	return srv.Run(ctx)
}
