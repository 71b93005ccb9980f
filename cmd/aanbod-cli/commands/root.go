package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	logger_adapter "github.com/hendrikderyck/steven-car-company/internal/adapters/logger"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	"github.com/spf13/cobra"
)

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "aanbod-cli",
	Short: "aanbod-cli runs the AutoScout24 extraction pipeline from the terminal.",
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandContext returns a context carrying a stderr logger, keeping stdout
// clean for the JSON output of the commands.
func commandContext(cmd *cobra.Command) context.Context {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   os.Stderr,
		Level:    level,
		UseColor: true,
	}).WithFields(port.Fields{"service_name": "aanbod-cli"})

	return contextkeys.ContextWithLogger(cmd.Context(), logger)
}
