package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goironbox/ironboxdx-go/internal/api"
	"github.com/goironbox/ironboxdx-go/internal/config"
	"github.com/goironbox/ironboxdx-go/internal/progress"
)

// loadConfig builds a client configuration from the global flags, the
// apiconfig file, and the environment, in that priority order.
func loadConfig() *config.Config {
	publicID, secret := config.ResolveCredentials(apiPublicID, apiSecret, cfgFile)
	return &config.Config{
		APIKeyPublicID: publicID,
		APIKeySecret:   secret,
		BaseAPIURL:     config.ResolveAPIURL(apiBaseURL, cfgFile),
		SkipTLSVerify:  insecure,
		Verbose:        verbose,
		Debug:          debug,
	}
}

// newAPIClient creates an API client wired with the CLI's logger and
// interactive progress bar.
func newAPIClient() (*api.Client, error) {
	client, err := api.NewClient(loadConfig(),
		api.WithLogger(GetLogger()),
		api.WithReporterFactory(func(label string) progress.Reporter {
			return progress.NewCLIProgress(label)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// printJSON pretty-prints a response object to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
