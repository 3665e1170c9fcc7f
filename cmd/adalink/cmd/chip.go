package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Mass-erase the target's flash",
	Args:  cobra.NoArgs,
	RunE:  runWipe,
}

var programCmd = &cobra.Command{
	Use:   "program <hex-file>...",
	Short: "Erase the target and load one or more hex files",
	Long: `Erase the target, load each hex file in the order given, then reset and run it.

Relative paths are resolved against the current directory before they are
handed to J-Link Commander.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProgram,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Identify the attached chip",
	Long: `Read the chip identification register and print the part name and the
J-Link device name, for example:

  Device ID : LPC824M201JDH20
  Segger ID : LPC824M201`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the J-Link device name of the attached chip",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

var connectedCmd = &cobra.Command{
	Use:   "connected",
	Short: "Check that the probe can see the target core",
	Long: `Run an empty commander script and check the console output for the
core-found banner. Exits with an error when the target is not found.`,
	Args: cobra.NoArgs,
	RunE: runConnected,
}

func init() {
	rootCmd.AddCommand(wipeCmd, programCmd, infoCmd, detectCmd, connectedCmd)
}

func runWipe(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	if err := c.Wipe(cmd.Context()); err != nil {
		return fmt.Errorf("wipe failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wiped flash.")
	return nil
}

func runProgram(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	if err := c.Program(cmd.Context(), args); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Programmed %d hex file(s).\n", len(args))
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	info, err := c.Info(cmd.Context())
	if err != nil {
		return fmt.Errorf("info failed: %w", err)
	}
	return info.Fprint(cmd.OutOrStdout())
}

func runDetect(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	id, err := c.DetectSeggerDeviceID(cmd.Context())
	if err != nil {
		return fmt.Errorf("detect failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func runConnected(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	ok, err := c.IsConnected(cmd.Context())
	if err != nil {
		return fmt.Errorf("connection check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("could not find %s, is it connected?", cfg.Core)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s connected.\n", cfg.Core)
	return nil
}
