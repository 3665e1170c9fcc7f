package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceLink/internal/config"
	"github.com/OpenTraceLab/OpenTraceLink/pkg/core"
	_ "github.com/OpenTraceLab/OpenTraceLink/pkg/core/lpc824"
	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
)

const (
	probeJLink = "jlink"
	probeSim   = "sim"
)

var (
	// Global flags
	verbose         bool
	coreName        string
	configPath      string
	jlinkExe        string
	jlinkTimeout    time.Duration
	probeKind       string
	simDeviceID     string
	simDisconnected bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adalink",
	Short: "Program and query microcontrollers through a SEGGER J-Link",
	Long: `Drive J-Link Commander to wipe, program and identify a target chip.

Each command builds a commander script for the selected core, runs JLinkExe
once and interprets its console output.

Examples:
  adalink info                                  # Identify the attached LPC824
  adalink flash --wipe --info firmware.hex      # Check, wipe, program, identify
  adalink program bootloader.hex app.hex        # Erase and load two images
  adalink info --probe sim --sim-device-id 0xDEADBEEF   # No hardware`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&coreName, "core", "c", config.DefaultCore, "target core (see 'adalink cores')")
	pf.StringVar(&configPath, "config", "", "config file (default is the per-user config.yaml)")
	pf.StringVar(&jlinkExe, "jlink-exe", jlink.DefaultExecutable, "J-Link Commander executable")
	pf.DurationVar(&jlinkTimeout, "timeout", jlink.DefaultTimeout, "timeout for a single commander run")
	pf.StringVarP(&probeKind, "probe", "p", probeJLink, "probe backend (jlink, sim)")
	pf.StringVar(&simDeviceID, "sim-device-id", "0x00008242", "simulator: device ID register value")
	pf.BoolVar(&simDisconnected, "sim-disconnected", false, "simulator: omit the core-found banner")
}

// loadSettings merges the config file with explicitly set flags.
func loadSettings(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("loaded config", "path", path, "core", cfg.Core, "jlink", cfg.JLink.Executable)

	flags := cmd.Flags()
	if flags.Changed("core") {
		cfg.Core = coreName
	}
	if flags.Changed("jlink-exe") {
		cfg.JLink.Executable = jlinkExe
	}
	if flags.Changed("timeout") {
		cfg.JLink.Timeout = jlinkTimeout
	}
	return nil
}

// openCore constructs the configured core on top of the selected probe backend.
func openCore() (core.Core, error) {
	desc, err := core.Lookup(cfg.Core)
	if err != nil {
		return nil, err
	}

	var open core.SessionOpener
	switch probeKind {
	case probeJLink:
		open = func(params jlink.Params) (core.ProbeSession, error) {
			return jlink.New(params,
				jlink.WithExecutable(cfg.JLink.Executable),
				jlink.WithTimeout(cfg.JLink.Timeout),
				jlink.WithLogger(logger.With("core", desc.Name)),
			)
		}
	case probeSim, "simulator":
		id, err := strconv.ParseUint(simDeviceID, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid --sim-device-id %q: %w", simDeviceID, err)
		}
		open = func(params jlink.Params) (core.ProbeSession, error) {
			banner := "SEGGER J-Link Commander (simulated)\nDevice \"" + params.Device + "\" selected."
			if !simDisconnected {
				banner += "\n" + desc.ConnectedBanner
			}
			sim := jlink.NewSimSession(banner)
			sim.Registers[desc.IDRegister] = uint32(id)
			return sim, nil
		}
	default:
		return nil, fmt.Errorf("unknown probe backend %q (want %s or %s)", probeKind, probeJLink, probeSim)
	}

	logger.Debug("opening core", "core", desc.Name, "probe", probeKind, "params", desc.Params.String())
	c, err := desc.New(open)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", desc.Name, err)
	}
	return c, nil
}
