package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flashWipe bool
	flashInfo bool
)

var flashCmd = &cobra.Command{
	Use:   "flash [hex-file]...",
	Short: "Check the connection, then wipe, program and identify in one run",
	Long: `Combined workflow for production programming. The steps run in this order:
  1. Verify the target core is connected
  2. Wipe flash (--wipe)
  3. Program the given hex files, if any
  4. Print chip information (--info)

Examples:
  adalink flash --wipe
  adalink flash --info softdevice.hex app.hex`,
	RunE: runFlash,
}

func init() {
	rootCmd.AddCommand(flashCmd)

	flashCmd.Flags().BoolVarP(&flashWipe, "wipe", "w", false, "wipe flash before programming")
	flashCmd.Flags().BoolVarP(&flashInfo, "info", "i", false, "print chip information last")
}

func runFlash(cmd *cobra.Command, args []string) error {
	if !flashWipe && !flashInfo && len(args) == 0 {
		return fmt.Errorf("nothing to do: pass --wipe, --info or hex files")
	}

	c, err := openCore()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ok, err := c.IsConnected(ctx)
	if err != nil {
		return fmt.Errorf("connection check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("could not find %s, is it connected?", cfg.Core)
	}

	if flashWipe {
		logger.Info("wiping flash", "core", cfg.Core)
		if err := c.Wipe(ctx); err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}
		fmt.Fprintln(out, "Wiped flash.")
	}
	if len(args) > 0 {
		logger.Info("programming", "core", cfg.Core, "files", args)
		if err := c.Program(ctx, args); err != nil {
			return fmt.Errorf("program failed: %w", err)
		}
		fmt.Fprintf(out, "Programmed %d hex file(s).\n", len(args))
	}
	if flashInfo {
		info, err := c.Info(ctx)
		if err != nil {
			return fmt.Errorf("info failed: %w", err)
		}
		return info.Fprint(out)
	}
	return nil
}
