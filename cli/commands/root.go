// Package commands implements the gogpt CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BaconStrps/go-gpt/core"
	"github.com/BaconStrps/go-gpt/providers"

	// Registered providers.
	_ "github.com/BaconStrps/go-gpt/providers/openai"
)

var (
	configPath   string
	providerName string
	apiKeyFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "gogpt",
	Short:         "Chat with OpenAI-style completion APIs",
	Long:          `gogpt is a command-line client for chat and text-completion APIs, with a conversation mode that manages bounded dialogue history.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $HOME/.gogpt.yaml)")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "openai", "Provider to use")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "API key (overrides config and environment)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newProvider resolves the configured provider with its credential.
func newProvider(cfg *Config) (core.Provider, error) {
	key, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}

	p, err := providers.New(providerName, key)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
