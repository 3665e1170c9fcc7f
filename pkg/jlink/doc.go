// Package jlink runs SEGGER J-Link Commander as a subprocess.
//
// A Session is configured once with the target device, debug interface and
// clock speed. Every RunCommands call writes a newline-delimited commander
// script to a temporary file, invokes the tool with -CommanderScript and
// returns whatever it printed. Higher level operations such as ReadReg32 are
// built from scripts plus parsing of the textual output.
//
// SimSession implements the same methods without hardware and is used by
// tests and the CLI's simulated probe mode.
package jlink
