package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BaconStrps/go-gpt/core"
)

var (
	completeModel       string
	completeMaxTokens   int
	completeTemperature float32
	completeEcho        bool
)

var completeCmd = &cobra.Command{
	Use:   "complete <prompt>",
	Short: "One-shot text completion",
	Long: `Send a single prompt to a text-completion model and print the result.

Examples:
  gogpt complete "Once upon a time"
  gogpt complete --model code-davinci-002 "// reverse a linked list in Go"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)

	completeCmd.Flags().StringVar(&completeModel, "model", "text-davinci-003", "Completion model")
	completeCmd.Flags().IntVar(&completeMaxTokens, "max-tokens", 256, "Completion token limit")
	completeCmd.Flags().Float32Var(&completeTemperature, "temperature", 1.0, "Sampling temperature")
	completeCmd.Flags().BoolVar(&completeEcho, "echo", false, "Include the prompt in the output")
}

func runComplete(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	client := core.NewClient(provider)
	resp, err := client.Complete(core.ModelID(completeModel)).
		Prompt(strings.Join(args, " ")).
		MaxTokens(completeMaxTokens).
		Temperature(completeTemperature).
		Echo(completeEcho).
		GetResponse(cmd.Context())
	if err != nil {
		return err
	}

	if len(resp.Choices) == 0 {
		return core.ErrNoChoices
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(resp.Choices[0].Text))
	return nil
}
