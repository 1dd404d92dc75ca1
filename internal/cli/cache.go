package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/culturecoders/culturebot/internal/cache"
	"github.com/culturecoders/culturebot/internal/model"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the enriched answer cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached enriched answer from the disk cache",
	Long: `Clear removes the on-disk answer cache (cache.dir).

The in-memory cache belongs to a running server and is emptied by restarting it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		return clearCache(cmd.OutOrStdout(), cfg.Cache)
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func clearCache(w io.Writer, cfg model.CacheConfig) error {
	if cfg.Dir == "" {
		fmt.Fprintln(w, "No disk cache configured (cache.dir is empty)")
		return nil
	}

	cfg.Enabled = true
	if err := cache.New(cfg).Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	fmt.Fprintf(w, "✓ Cleared cache: %s\n", cfg.Dir)
	return nil
}
