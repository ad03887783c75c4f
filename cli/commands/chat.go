package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BaconStrps/go-gpt/core"
	"github.com/BaconStrps/go-gpt/session"
)

var (
	chatModel       string
	chatSystem      string
	chatTemperature float32
	chatMaxTokens   int
	chatMaxLen      int
	chatUserTag     string
	chatVerbose     bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive conversation with a chat model",
	Long: `Start an interactive conversation. Each line you type is sent with the
conversation history; the history is bounded by --max-len, evicting the
oldest turns first.

Commands inside the session:
  /history   print the conversation so far
  /clear     reset the conversation history
  /quit      exit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatModel, "model", "gpt-3.5-turbo", "Chat model")
	chatCmd.Flags().StringVar(&chatSystem, "system", "", "System preamble")
	chatCmd.Flags().Float32Var(&chatTemperature, "temperature", session.DefaultTemperature, "Sampling temperature")
	chatCmd.Flags().IntVar(&chatMaxTokens, "max-tokens", session.DefaultMaxTokens, "Completion token limit")
	chatCmd.Flags().IntVar(&chatMaxLen, "max-len", session.DefaultMaxLen, "Soft bound on conversation history")
	chatCmd.Flags().StringVar(&chatUserTag, "user", "", "End-user identifier sent with requests")
	chatCmd.Flags().BoolVar(&chatVerbose, "verbose", false, "Log request telemetry to stderr")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	builder := session.New().
		Temperature(chatTemperature).
		MaxTokens(chatMaxTokens).
		MaxLen(chatMaxLen)
	if chatSystem != "" {
		builder.System(chatSystem)
	}
	if chatUserTag != "" {
		builder.UserTag(chatUserTag)
	}
	if chatVerbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		builder.Telemetry(core.NewSlogTelemetryHook(logger))
	}

	sess := builder.Build(core.ModelID(chatModel), provider)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Chatting with %s. /quit to exit.\n", chatModel)
	fmt.Fprint(out, "> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/clear":
			sess.Clear()
			fmt.Fprintln(out, "history cleared")
		case line == "/history":
			printHistory(out, sess.Snapshot())
		default:
			if err := sess.Submit(line); err != nil {
				return err
			}
			reply, err := sess.Exchange(cmd.Context())
			if err != nil {
				errorf("error: %v", err)
				break
			}
			fmt.Fprintln(out, reply.Content)
		}
		fmt.Fprint(out, "> ")
	}

	return scanner.Err()
}

// applyConfigDefaults fills unset chat flags from the config file.
func applyConfigDefaults(cmd *cobra.Command, cfg *Config) {
	if cfg.Model != "" && !cmd.Flags().Changed("model") {
		chatModel = cfg.Model
	}
	if cfg.System != "" && !cmd.Flags().Changed("system") {
		chatSystem = cfg.System
	}
	if cfg.Temperature != nil && !cmd.Flags().Changed("temperature") {
		chatTemperature = *cfg.Temperature
	}
	if cfg.MaxTokens != nil && !cmd.Flags().Changed("max-tokens") {
		chatMaxTokens = *cfg.MaxTokens
	}
	if cfg.MaxLen != nil && !cmd.Flags().Changed("max-len") {
		chatMaxLen = *cfg.MaxLen
	}
	if cfg.UserTag != "" && !cmd.Flags().Changed("user") {
		chatUserTag = cfg.UserTag
	}
}

func printHistory(out io.Writer, msgs []core.Message) {
	for _, msg := range msgs {
		fmt.Fprintf(out, "[%s] %s\n", msg.Role, msg.Content)
	}
}
