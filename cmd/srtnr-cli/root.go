package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arshubham/srtnr/internal/config"
	"github.com/arshubham/srtnr/internal/logging"
	"github.com/arshubham/srtnr/internal/provider"
	"github.com/arshubham/srtnr/internal/shortener"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Process wide state built before any subcommand runs
var (
	envCfg     = &config.Env{}
	logger     = zap.NewNop()
	syncLogger = func() {}
)

// Replaced in tests
var (
	newShortener = func(env *config.Env, logger *zap.Logger) shortener.Shortener {
		return shortener.NewService(shortener.NewHTTPClient(env.HTTPTimeout), logger)
	}
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "srtnr-cli",
	Short:         "Shorten URLs with public shortening services",
	Long:          `srtnr-cli sends a URL to goo.gl, bit.ly, is.gd, bam.bz, tny.im or hmm.rs and prints the short URL.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadEnv()
		if err != nil {
			return err
		}
		envCfg = cfg
		logger, syncLogger = logging.Must(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		syncLogger()
	},
}

// Execute runs the root command and exits with status 1 on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRegistry() *provider.Registry {
	return provider.NewRegistry(envCfg.Credentials())
}

func init() {
	rootCmd.AddCommand(shortenCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.SetVersionTemplate("srtnr-cli version {{.Version}}\n")
}
