// Package core defines the capability contract shared by chip adapters and a
// registry that maps CLI core names to their constructors.
//
// A chip adapter translates intents such as "wipe" or "program these files"
// into commander scripts for a ProbeSession and interprets the text that
// comes back. Adapters live in sub-packages and register themselves from
// init, so importing a sub-package for its side effect makes the core
// available by name.
package core
