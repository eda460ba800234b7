package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shoestore_be/config"
)

var rootCmd = &cobra.Command{
	Use:   "shoestore",
	Short: "Shoe store admin back office",
	Long: `Back office API for a shoe store: brands, categories, shoes, promo codes
and product transactions, managed by admin users.

Configuration is read from .env, config/config.yml and the environment.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and checks that a database is configured.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}
