package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/pluralkit-go/config"
	"github.com/s0up4200/pluralkit-go/pluralkit"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *pluralkit.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
)

// SetVersion records the version information set at build time.
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pkctl",
	Short: "A CLI for the PluralKit API",
	Long: `pkctl is a command-line client for the PluralKit API. It can look up
systems, members, groups, switches and proxied messages, and export a
system's records as JSON.

Write operations require an API token, set in the config file or via the
PKCTL_PLURALKIT_TOKEN environment variable. Without a token only public
information is available.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create PluralKit client
	client, err = pluralkit.NewClient(cfg.PluralKit.Token, logger,
		pluralkit.WithBaseURL(cfg.PluralKit.BaseURL),
		pluralkit.WithTimeout(time.Duration(cfg.PluralKit.TimeoutSeconds)*time.Second),
		pluralkit.WithRateLimit(cfg.PluralKit.RequestsPerSecond, cfg.PluralKit.Burst),
		pluralkit.WithUserAgent("pkctl/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create PluralKit client: %w", err)
	}

	if !client.Authenticated() {
		logger.Debug().Msg("No token configured, write endpoints are unavailable")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}

	if preset != "" {
		if expression, ok := cfg.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return filterExpr, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
