// The solve subcommand: run a celebrity search and print the answer line.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pfad/celebrity"
)

var (
	solvePartyPath  string
	solveExhaustive bool
	solveSingle     bool
	solveTimeout    time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the celebrity clique of a party",
	Long: `Find the celebrity clique of a party: the guests known by everyone
whose members know only each other.

The answer line goes to stdout; statistics go to stderr as structured logs.

Examples:
  celebrity solve
  celebrity solve --party guests.yaml
  celebrity solve --party guests.yaml --exhaustive --timeout 30s
  celebrity solve --single`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solvePartyPath, "party", "", "party YAML file (default: built-in demo party)")
	solveCmd.Flags().BoolVar(&solveExhaustive, "exhaustive", false, "use the exhaustive subset scan (62 guests max)")
	solveCmd.Flags().BoolVar(&solveSingle, "single", false, "solve the single-celebrity puzzle instead")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this duration (0 = none)")
	solveCmd.MarkFlagsMutuallyExclusive("exhaustive", "single")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	p, source, err := loadParty(solvePartyPath)
	if err != nil {
		return err
	}

	// Explicit flags win over config file values.
	exhaustive := solveExhaustive
	if !cmd.Flags().Changed("exhaustive") && !solveSingle {
		exhaustive = cfg.Solve.Exhaustive
	}
	timeout := solveTimeout
	if !cmd.Flags().Changed("timeout") && cfg.Solve.Timeout != "" {
		timeout, err = time.ParseDuration(cfg.Solve.Timeout)
		if err != nil {
			return fmt.Errorf("config solve.timeout %q: %w", cfg.Solve.Timeout, err)
		}
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	search := celebrity.FindClique
	algorithm := "elimination"
	switch {
	case solveSingle:
		search = celebrity.FindCelebrity
		algorithm = "single"
	case exhaustive:
		search = celebrity.FindCliqueExhaustive
		algorithm = "exhaustive"
	}

	stats := p.Stats()
	start := time.Now()
	res, err := search(p, celebrity.WithContext(ctx))
	if err != nil {
		return err
	}

	logger.Info("search finished",
		zap.String("party", source),
		zap.String("algorithm", algorithm),
		zap.Int("guests", stats.Guests),
		zap.Int("introductions", stats.Introductions),
		zap.Int("outsiders", stats.Outsiders),
		zap.Int("probes", res.Probes),
		zap.Bool("found", res.Found),
		zap.Duration("took", time.Since(start)),
	)

	fmt.Println(res.String())

	return nil
}
