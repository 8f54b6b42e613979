// Command srfd computes the soft Robinson-Foulds distance between two
// rooted phylogenetic networks sharing a leaf set, per spec.md §6's SRFD
// CLI contract.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nuslab/phylonet/netio"
	"github.com/nuslab/phylonet/network"
	"github.com/nuslab/phylonet/srfd"
)

const (
	logLevelFlag = "log-level"
	workersFlag  = "workers"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var workers int

	cmd := &cobra.Command{
		Use:   "srfd <network1> <network2>",
		Short: "Compute the soft Robinson-Foulds distance between two networks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: parseLevel(logLevel),
			})))

			return runSRFD(cmd, args[0], args[1], workers)
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, logLevelFlag, "warn", "log level: debug, info, warn, error")
	cmd.Flags().IntVar(&workers, workersFlag, 0, "number of concurrent CCP workers (0 = GOMAXPROCS)")

	return cmd
}

func runSRFD(cmd *cobra.Command, path1, path2 string, workers int) error {
	n1, err := buildNetwork(path1)
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}
	n2, err := buildNetwork(path2)
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}

	if err := netio.CanonicalLeafOrder(n1, n2); err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}
	slog.Debug("leaf sets match", "leaves", n1.NumLeaves())

	var opts []srfd.Option
	if workers > 0 {
		opts = append(opts, srfd.WithWorkers(workers))
	}

	dist, err := srfd.Run(n1, n2, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", dist)

	return nil
}

func buildNetwork(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	builder, err := netio.ParseEdgeList(f)
	if err != nil {
		return nil, err
	}

	return builder.Build()
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// errArgument marks an input/topology error, exit code 10 per spec.md §6-§7.
var errArgument = errors.New("srfd: argument error")

func exitCode(err error) int {
	if errors.Is(err, errArgument) {
		return 10
	}

	return 1
}
