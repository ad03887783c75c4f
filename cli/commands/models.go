package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BaconStrps/go-gpt/providers"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models for the selected provider",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	// The catalog is static; no credential is needed to list it.
	provider, err := providers.New(providerName, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range provider.Models() {
		caps := make([]string, len(m.Capabilities))
		for i, c := range m.Capabilities {
			caps[i] = string(c)
		}
		fmt.Fprintf(out, "%-24s %-28s %s\n", m.ID, m.DisplayName, strings.Join(caps, ","))
	}
	return nil
}
