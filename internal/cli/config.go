package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/culturecoders/culturebot/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CultureBot configuration",
	Long: `Manage CultureBot configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CULTUREBOT_*, OPENAI_API_KEY, ANTHROPIC_API_KEY, OLLAMA_BASE_URL)
3. Config file (~/.culturebot/config.yaml)
4. Defaults

A .env file in the working directory is loaded into the environment first.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", file)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (defaults, environment and flags only)\n\n")
		}

		return writeConfig(cmd.OutOrStdout(), redact(*cfg))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Create a default configuration file at ~/.culturebot/config.yaml (or --config) with every option listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("find home directory: %w", err)
			}
			path = filepath.Join(home, ".culturebot", "config.yaml")
		}

		if err := initConfigFile(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "\nTo view the effective configuration:\n  culturebot config show\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// setDefaults mirrors model.DefaultConfig into v so every key is known to
// viper, which AutomaticEnv needs to bind nested keys on Unmarshal
func setDefaults(v *viper.Viper) {
	d := model.DefaultConfig()

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.graceful_shutdown", d.Server.GracefulShutdown)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.model", d.LLM.Model)
	v.SetDefault("llm.api_key", d.LLM.APIKey)
	v.SetDefault("llm.base_url", d.LLM.BaseURL)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.max_tokens", d.LLM.MaxTokens)
	v.SetDefault("llm.temperature", d.LLM.Temperature)
	v.SetDefault("llm.http_proxy", d.LLM.HTTPProxy)
	v.SetDefault("llm.https_proxy", d.LLM.HTTPSProxy)

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)

	v.SetDefault("rate_limiting.requests_per_second", d.RateLimiting.RequestsPerSecond)
	v.SetDefault("rate_limiting.burst_size", d.RateLimiting.BurstSize)

	v.SetDefault("concurrency.workers", d.Concurrency.Workers)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// loadConfig decodes v into a Config and fills provider credentials from
// the conventional environment variables
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if v.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	if err := resolveLLM(&cfg.LLM, os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveLLM applies provider specific environment variables. A provider
// that needs a key and has none is a configuration error.
func resolveLLM(llmCfg *model.LLMConfig, getenv func(string) string) error {
	llmCfg.Provider = strings.ToLower(strings.TrimSpace(llmCfg.Provider))

	switch llmCfg.Provider {
	case "":
		return nil
	case "openai":
		if llmCfg.APIKey == "" {
			llmCfg.APIKey = getenv("OPENAI_API_KEY")
		}
		if llmCfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		if llmCfg.APIKey == "" {
			llmCfg.APIKey = getenv("ANTHROPIC_API_KEY")
		}
		if llmCfg.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if llmCfg.BaseURL == "" {
			llmCfg.BaseURL = getenv("OLLAMA_BASE_URL")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", llmCfg.Provider)
	}
	return nil
}

// redact hides secrets before a config is printed
func redact(cfg model.Config) model.Config {
	if key := cfg.LLM.APIKey; key != "" {
		if len(key) > 8 {
			cfg.LLM.APIKey = key[:4] + "..." + key[len(key)-4:]
		} else {
			cfg.LLM.APIKey = "***"
		}
	}
	return cfg
}

func writeConfig(w io.Writer, cfg model.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return enc.Close()
}

// initConfigFile writes the default configuration to path, refusing to
// overwrite an existing file
func initConfigFile(path string) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("config file already exists: %s\nUse 'culturebot config show' to view it, or delete it first to recreate", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	header := `# CultureBot configuration
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (CULTUREBOT_*, e.g. CULTUREBOT_LLM_PROVIDER=openai)
#   3. This config file
#   4. Built-in defaults
#
# API keys are best kept in the environment (or a .env file):
#   export OPENAI_API_KEY=sk-...
#   export ANTHROPIC_API_KEY=sk-ant-...
#   export OLLAMA_BASE_URL=http://localhost:11434

`
	if _, err := io.WriteString(f, header); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return writeConfig(f, *model.DefaultConfig())
}
