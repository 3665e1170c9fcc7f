package jlink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultExecutable is the J-Link Commander binary name on Linux and macOS.
const DefaultExecutable = "JLinkExe"

// DefaultTimeout bounds a single command script run.
const DefaultTimeout = 60 * time.Second

// Session drives J-Link Commander with a fixed set of device parameters. Each
// call to RunCommands launches one commander process, feeds it a script and
// waits for it to exit. A Session is not safe for concurrent use since the
// probe itself is an exclusive resource.
type Session struct {
	params  Params
	exe     string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithExecutable overrides the commander binary (name on PATH or full path).
func WithExecutable(path string) Option {
	return func(s *Session) {
		if path != "" {
			s.exe = path
		}
	}
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger attaches a logger for script tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New validates params, locates the commander executable and returns a
// session ready to run scripts.
func New(params Params, opts ...Option) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		params:  params,
		exe:     DefaultExecutable,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	resolved, err := exec.LookPath(s.exe)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExecutableNotFound, s.exe)
	}
	s.exe = resolved
	return s, nil
}

// Params returns the device parameters the session was created with.
func (s *Session) Params() Params {
	return s.params
}

// Executable returns the resolved commander path.
func (s *Session) Executable() string {
	return s.exe
}

// RunCommands writes commands to a temporary commander script, runs it and
// returns the captured standard output.
func (s *Session) RunCommands(ctx context.Context, commands []string) (string, error) {
	script, err := writeScript(commands)
	if err != nil {
		return "", err
	}
	defer os.Remove(script)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := append(s.params.Args(), "-CommanderScript", script)
	cmd := exec.CommandContext(ctx, s.exe, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debug("running commander script",
		"exe", s.exe, "params", s.params.String(), "commands", commands)

	start := time.Now()
	err = cmd.Run()
	s.logger.Debug("commander finished",
		"elapsed", time.Since(start), "stdout_bytes", stdout.Len(), "err", err)

	if ctx.Err() == context.DeadlineExceeded {
		return stdout.String(), fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return stdout.String(), fmt.Errorf("jlink: run commander: %w", err)
	}
	return stdout.String(), nil
}

// ReadReg32 reads a 32-bit word from the target's memory map.
func (s *Session) ReadReg32(ctx context.Context, addr uint32) (uint32, error) {
	return readReg32(ctx, s.RunCommands, addr)
}

type runFunc func(ctx context.Context, commands []string) (string, error)

// ReadRegCommands returns the script used to read one word at addr.
func ReadRegCommands(addr uint32) []string {
	return []string{
		fmt.Sprintf("mem32 %08X, 1", addr),
		"q",
	}
}

func readReg32(ctx context.Context, run runFunc, addr uint32) (uint32, error) {
	output, err := run(ctx, ReadRegCommands(addr))
	if err != nil {
		return 0, err
	}
	value, ok := FindWord(output, addr)
	if !ok {
		return 0, ErrNoValue
	}
	return value, nil
}

func writeScript(commands []string) (string, error) {
	f, err := os.CreateTemp("", "jlink-*.jlink")
	if err != nil {
		return "", fmt.Errorf("jlink: create script: %w", err)
	}
	var b strings.Builder
	for _, c := range commands {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("jlink: write script: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("jlink: close script: %w", err)
	}
	return f.Name(), nil
}
