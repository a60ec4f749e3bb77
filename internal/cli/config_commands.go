// Package cli: configuration management commands.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goironbox/ironboxdx-go/internal/config"
	"github.com/goironbox/ironboxdx-go/internal/constants"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ironboxdx configuration",
		Long: `Configuration management commands.

Commands:
  init  - Interactive apiconfig setup
  show  - Display current configuration (secret redacted)
  path  - Show apiconfig file path`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the apiconfig file interactively",
		Long: `Interactive apiconfig setup.

Prompts for the API key pair from the IronBox DX web dashboard and writes
~/.config/ironboxdx/apiconfig (or the --config path). The secret is read
without echo. Use --force to overwrite an existing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := cfgFile
			if configPath == "" {
				configPath = config.DefaultAPIConfigPath()
			}
			if configPath == "" {
				return fmt.Errorf("cannot determine config path; pass --config")
			}

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					fmt.Printf("Configuration already exists at: %s\n", configPath)
					fmt.Println("Use --force to overwrite.")
					return nil
				}
			}

			fmt.Println("IronBox DX Configuration Setup")
			fmt.Println("==============================")
			fmt.Println()

			reader := bufio.NewReader(os.Stdin)

			var publicID string
			for publicID == "" {
				fmt.Print("API key public ID (required): ")
				input, _ := reader.ReadString('\n')
				publicID = strings.TrimSpace(input)
				if publicID == "" {
					fmt.Println("  Error: public ID is required")
				}
			}

			secret, err := promptSecret("API key secret (required): ")
			if err != nil {
				return err
			}

			fmt.Printf("API Base URL [%s]: ", constants.DefaultBaseAPIURL)
			urlInput, _ := reader.ReadString('\n')
			apiURL := strings.TrimSpace(urlInput)
			if apiURL == "" {
				apiURL = constants.DefaultBaseAPIURL
			}

			cfg := &config.APIConfig{
				APIURL:         apiURL,
				APIKeyPublicID: publicID,
				APIKeySecret:   secret,
			}
			if err := config.SaveAPIConfig(configPath, cfg); err != nil {
				return err
			}

			fmt.Printf("\nConfiguration saved to: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

// promptSecret reads a required secret from the terminal without echo,
// falling back to plain line input when stdin is not a terminal (pipes,
// scripts).
func promptSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	for {
		fmt.Print(prompt)

		var secret string
		if term.IsTerminal(fd) {
			raw, err := term.ReadPassword(fd)
			fmt.Println()
			if err != nil {
				return "", fmt.Errorf("failed to read secret: %w", err)
			}
			secret = strings.TrimSpace(string(raw))
		} else {
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", fmt.Errorf("failed to read secret: %w", err)
			}
			secret = strings.TrimSpace(line)
		}

		if secret != "" {
			return secret, nil
		}
		fmt.Println("  Error: secret is required")
	}
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration with the secret redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := cfgFile
			if configPath == "" {
				configPath = config.DefaultAPIConfigPath()
			}

			cfg, err := config.LoadAPIConfig(configPath)
			if err != nil {
				return fmt.Errorf("no configuration found; run 'ironboxdx config init' (%w)", err)
			}

			fmt.Printf("Config file:       %s\n", configPath)
			fmt.Printf("API URL:           %s\n", cfg.APIURL)
			fmt.Printf("API key public ID: %s\n", cfg.APIKeyPublicID)
			fmt.Printf("API key secret:    %s\n", redactSecret(cfg.APIKeySecret))
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the apiconfig file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := cfgFile
			if configPath == "" {
				configPath = config.DefaultAPIConfigPath()
			}
			fmt.Println(configPath)
			return nil
		},
	}
}

// redactSecret keeps the first four characters for recognizability.
func redactSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + strings.Repeat("*", len(secret)-4)
}
