package jlink

import (
	"context"
	"fmt"
	"strings"
)

// RunHook lets tests replace the simulator's output for a script.
type RunHook func(commands []string) (string, error)

// SimSession is an in-memory stand-in for a commander session. It records every
// script it receives, prints Banner at the start of each run and answers
// "mem32 <addr>, <n>" commands from Registers. OnRun, when set, takes over
// output generation entirely.
type SimSession struct {
	Banner    string
	Registers map[uint32]uint32

	OnRun RunHook

	scripts [][]string
}

// NewSimSession constructs a simulator with an empty register map.
func NewSimSession(banner string) *SimSession {
	return &SimSession{Banner: banner, Registers: make(map[uint32]uint32)}
}

// Scripts returns a copy of every script run so far, oldest first.
func (s *SimSession) Scripts() [][]string {
	out := make([][]string, len(s.scripts))
	for i, script := range s.scripts {
		out[i] = append([]string(nil), script...)
	}
	return out
}

// LastScript returns the most recent script, or nil.
func (s *SimSession) LastScript() []string {
	if len(s.scripts) == 0 {
		return nil
	}
	return append([]string(nil), s.scripts[len(s.scripts)-1]...)
}

func (s *SimSession) RunCommands(ctx context.Context, commands []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.scripts = append(s.scripts, append([]string(nil), commands...))

	if s.OnRun != nil {
		return s.OnRun(commands)
	}

	var b strings.Builder
	if s.Banner != "" {
		b.WriteString(s.Banner)
		if !strings.HasSuffix(s.Banner, "\n") {
			b.WriteByte('\n')
		}
	}
	for _, c := range commands {
		b.WriteString("J-Link>")
		b.WriteString(c)
		b.WriteByte('\n')

		var addr uint32
		var count int
		if _, err := fmt.Sscanf(c, "mem32 %x, %d", &addr, &count); err != nil {
			continue
		}
		for i := 0; i < count; i++ {
			word := addr + uint32(4*i)
			v, ok := s.Registers[word]
			if !ok {
				break
			}
			fmt.Fprintf(&b, "%08X = %08X \n", word, v)
		}
	}
	return b.String(), nil
}

func (s *SimSession) ReadReg32(ctx context.Context, addr uint32) (uint32, error) {
	return readReg32(ctx, s.RunCommands, addr)
}
