package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/koard/DukeFarm-Admin-sub000/internal/client"
	intconfig "github.com/koard/DukeFarm-Admin-sub000/internal/config"
	"github.com/koard/DukeFarm-Admin-sub000/internal/session"
)

var (
	configPath string
	apiURL     string

	cfg    intconfig.ClientConfig
	tokens *session.FileStore
	api    *client.Client
)

// rootCmd is the CLI entry point for the Duke Farm admin console.
var rootCmd = &cobra.Command{
	Use:   "dukefarm",
	Short: "Duke Farm admin console",
	Long: `Command-line console for the Duke Farm administration API.

Authenticate with "dukefarm login", then browse farmers, researchers,
feed formulas, admin accounts, and dashboard statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = intconfig.LoadClientConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if apiURL != "" {
			cfg.BaseURL = apiURL
		}
		tokens = session.NewFileStore(cfg.TokenPath)
		api = client.New(cfg.BaseURL, tokens).WithTimeout(cfg.Timeout())
		return nil
	},
}

// cliNotifier renders list-screen notifications on the terminal.
type cliNotifier struct{}

func (cliNotifier) Success(msg string) { color.Green("✔ %s", msg) }
func (cliNotifier) Error(msg string)   { color.Red("✘ %s", msg) }

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", intconfig.DefaultClientConfigPath(), "path to the CLI config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config and DUKEFARM_API_URL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("✘ %s", err.Error())
		os.Exit(1)
	}
}
