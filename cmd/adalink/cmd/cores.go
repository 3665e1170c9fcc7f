package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/core"
)

var coresCmd = &cobra.Command{
	Use:   "cores",
	Short: "List supported target cores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range core.Names() {
			d, err := core.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-10s %s\n", d.Name, d.Description)
			if verbose {
				fmt.Fprintf(out, "             J-Link: %s\n", d.Params)
				fmt.Fprintf(out, "             ID register: 0x%08X\n", d.IDRegister)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coresCmd)
}
