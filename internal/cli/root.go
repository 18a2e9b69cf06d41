// Package cli wires the interpreter into a command-line tool: decode a
// transaction document, report an observer's balance effects, work with
// compact transaction identifiers, and record interpreted effects into
// the history store.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xrplview/internal/config"
)

var (
	// Global flags
	configFile string
	network    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrplview",
	Short: "xrplview - ledger transaction and balance-effect interpreter",
	Long: `xrplview interprets raw ledger transactions and their execution
metadata into normalized, currency-aware views: balance deltas per
observer, owner-count deltas, offer lifecycle status, hook executions,
and compact transaction identifiers.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&network, "network", "", "network profile (mainnet, testnet, devnet, xahau)")
}

// loadConfig resolves the effective configuration for a command run,
// with the --network flag overriding the configured profile.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if network != "" {
		cfg.Network = network
		if _, err := cfg.Active(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
