package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
	"github.com/spf13/cobra"
)

var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "List attached J-Link probes",
	Long: `Scan the USB bus for SEGGER J-Link probes and print what was found. Use this
to verify the probe is visible to the host before running other commands.`,
	Args: cobra.NoArgs,
	RunE: runProbes,
}

func init() {
	rootCmd.AddCommand(probesCmd)
}

func runProbes(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	probes, err := jlink.DiscoverProbes(ctx)
	if err != nil {
		return fmt.Errorf("discover probes: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(probes) == 0 {
		fmt.Fprintln(out, "No J-Link probes found.")
		return nil
	}

	fmt.Fprintln(out, "Detected J-Link probes:")
	for _, p := range probes {
		fmt.Fprintf(out, "  - %s (VID:PID %04X:%04X, bus %d address %d)\n",
			p.Label(), p.VendorID, p.ProductID, p.Bus, p.Address)
	}
	return nil
}
