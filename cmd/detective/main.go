package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/spf13/cobra"
)

var useTUI bool

var rootCmd = &cobra.Command{
	Use:          "detective",
	Short:        "Explore the mansion, collect clues and accuse the culprit",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Setup(cfg, cmd.ErrOrStderr())

		if useTUI {
			return runTUI(cmd.Context(), cfg, log)
		}
		return runConsole(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "use the full-screen interface")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
