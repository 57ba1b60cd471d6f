package main

import (
	"fmt"
	"io"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
)

var (
	verbose bool
	logger  = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "soccerctl",
	Short: "Brazilian soccer data tooling",
	Long:  "Applies database migrations, imports the CSV dataset into postgres and runs ad-hoc queries against the loaded data.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load(".env")

		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.NewConsole(level)
		logging.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
