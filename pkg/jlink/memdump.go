package jlink

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// memDumpLexer tokenizes a single line of mem8/mem16/mem32 output, e.g.
//
//	400483F8 = 00008242 00000000
//
// Anything else (prompts, banners, log lines) fails to lex and is skipped.
var memDumpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Hex", Pattern: `[0-9A-Fa-f]+`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

type memDumpLine struct {
	Addr  string   `@Hex "="`
	Words []string `@Hex+`
}

var memDumpParser = participle.MustBuild[memDumpLine](
	participle.Lexer(memDumpLexer),
	participle.Elide("Whitespace"),
)

// MemDump is one decoded line of commander memory output.
type MemDump struct {
	Addr  uint32
	Words []uint32
}

// ParseMemDump extracts every memory dump line from commander output.
func ParseMemDump(output string) []MemDump {
	var dumps []MemDump
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parsed, err := memDumpParser.ParseString("", line)
		if err != nil {
			continue
		}
		dump, ok := decodeMemDump(parsed)
		if !ok {
			continue
		}
		dumps = append(dumps, dump)
	}
	return dumps
}

// FindWord returns the first 32-bit word dumped at addr.
func FindWord(output string, addr uint32) (uint32, bool) {
	for _, dump := range ParseMemDump(output) {
		if dump.Addr == addr && len(dump.Words) > 0 {
			return dump.Words[0], true
		}
	}
	return 0, false
}

func decodeMemDump(line *memDumpLine) (MemDump, bool) {
	addr, err := strconv.ParseUint(line.Addr, 16, 32)
	if err != nil {
		return MemDump{}, false
	}
	dump := MemDump{Addr: uint32(addr), Words: make([]uint32, 0, len(line.Words))}
	for _, w := range line.Words {
		v, err := strconv.ParseUint(w, 16, 32)
		if err != nil {
			return MemDump{}, false
		}
		dump.Words = append(dump.Words, uint32(v))
	}
	return dump, true
}
