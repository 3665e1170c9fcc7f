package jlink

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExecutableNotFound is returned when the J-Link Commander binary cannot
	// be located on PATH or at the configured location.
	ErrExecutableNotFound = errors.New("jlink: unable to find J-Link Commander executable, is it installed and in your PATH?")

	// ErrTimeout reports that a command script did not finish before the
	// session timeout expired.
	ErrTimeout = errors.New("jlink: command script timed out")

	// ErrNoValue is returned by ReadReg32 when the tool output does not contain
	// the requested memory word.
	ErrNoValue = errors.New("jlink: could not find expected memory value, are the J-Link and board connected?")
)

// ExitError describes a commander run that exited with a non-zero status.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("jlink: commander exited with status %d", e.Code)
	}
	return fmt.Sprintf("jlink: commander exited with status %d: %s", e.Code, msg)
}
