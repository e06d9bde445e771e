// Command celebrity solves and draws the "finding celebrities" puzzle from
// chapter 9 of Bird's Pearls of Functional Algorithm Design.
//
// The program is a thin shell around the library packages: party files come
// in as YAML, optional defaults as TOML, the answer line goes to stdout and
// structured logs to stderr.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg     Config
	cfgPath string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "celebrity",
	Short: "Solve and draw the finding-celebrities puzzle",
	Long: `celebrity finds the celebrity clique of a party: the set of guests
everybody at the party knows, whose members know only each other.

Without --party the built-in demo party from the book is used; its answer is
{1, 2, 3} is the celebrity clique.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "optional TOML config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger = newLogger(verbose)

		cfg = DefaultConfig()
		if cfgPath != "" {
			loaded, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfg = *loaded
			logger.Debug("configuration loaded", zap.String("path", cfgPath))
		}

		return nil
	}

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
}

// newLogger builds a console logger on stderr, so stdout stays reserved for
// the answer line.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core)
}
