// Package cli provides the command-line interface for ironboxdx.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goironbox/ironboxdx-go/internal/logging"
	"github.com/goironbox/ironboxdx-go/internal/version"
)

var (
	// Global flags
	cfgFile     string
	apiPublicID string
	apiSecret   string
	apiBaseURL  string
	insecure    bool
	verbose     bool
	debug       bool

	// Global logger, initialized by the root PersistentPreRun
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
)

// GetLogger returns the global logger, creating a default one if the root
// command has not run yet (tests, mainly).
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefault(verbose, debug)
	}
	return logger
}

// GetContext returns the signal-aware root context.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ironboxdx",
		Short: "IronBox DX - secure container and blob management",
		Long: `IronBox DX ` + version.Version + ` - Built: ` + version.BuildTime + `
Command-line client for the IronBox DX service: server-side encrypted
containers, blob transfers, access control, and organization management.

Credentials resolve from --public-id/--secret flags, then the apiconfig
file (~/.config/ironboxdx/apiconfig), then the IRONBOX_APIKEY_PUBLICID and
IRONBOX_APIKEY_SECRET environment variables. Run 'ironboxdx config init'
to create the apiconfig file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefault(verbose, debug)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "apiconfig file path (default ~/.config/ironboxdx/apiconfig)")
	rootCmd.PersistentFlags().StringVar(&apiPublicID, "public-id", "", "API key public ID (overrides all other sources)")
	rootCmd.PersistentFlags().StringVar(&apiSecret, "secret", "", "API key secret (overrides all other sources)")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification (dev environments only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output with progress bars")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump raw response status codes and bodies")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStorageCmd())
	rootCmd.AddCommand(newContainersCmd())
	rootCmd.AddCommand(newBlobsCmd())
	rootCmd.AddCommand(newACLCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newMgmtCmd())

	return rootCmd
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	rootContext = ctx

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
