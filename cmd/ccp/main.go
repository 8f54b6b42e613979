// Command ccp decides whether a given leaf set is the soft cluster of some
// vertex in a rooted phylogenetic network, per spec.md §6's CCP CLI contract.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nuslab/phylonet/ccp"
	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/netio"
	"github.com/nuslab/phylonet/network"
)

const logLevelFlag = "log-level"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "ccp <network> <leaves>",
		Short: "Decide cluster containment for a phylogenetic network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: parseLevel(logLevel),
			})))

			return runCCP(cmd, args[0], args[1])
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, logLevelFlag, "warn", "log level: debug, info, warn, error")

	return cmd
}

func runCCP(cmd *cobra.Command, networkPath, leavesPath string) error {
	netFile, err := os.Open(networkPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}
	defer netFile.Close()

	builder, err := netio.ParseEdgeList(netFile)
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}
	n, err := builder.Build()
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}
	slog.Debug("network built", "vertices", n.NumVertices(), "leaves", n.NumLeaves())

	leafFile, err := os.Open(leavesPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}
	defer leafFile.Close()

	B, err := netio.ParseLeafFile(leafFile, n)
	if err != nil {
		return fmt.Errorf("%w: %w", errArgument, err)
	}

	res, err := ccp.Run(n, B)
	if errors.Is(err, ccp.ErrNotACluster) {
		fmt.Fprintf(cmd.OutOrStdout(), "not a cluster\nno_break %d\n", res.NoBreak)

		return nil
	}
	if err != nil {
		if errors.Is(err, network.ErrBadTopology) || errors.Is(err, component.ErrCyclic) {
			return fmt.Errorf("%w: %w", errArgument, err)
		}

		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%v\n", res.Witness, res.ResidualTree)

	return nil
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
var errArgument = errors.New("ccp: argument error")

func exitCode(err error) int {
	if errors.Is(err, errArgument) {
		return 10
	}

	return 1
}
