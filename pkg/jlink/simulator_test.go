package jlink

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSimSessionRecordsScripts(t *testing.T) {
	sim := NewSimSession("Info: banner")
	ctx := context.Background()

	if _, err := sim.RunCommands(ctx, []string{"erase", "r", "q"}); err != nil {
		t.Fatalf("RunCommands: %v", err)
	}
	out, err := sim.RunCommands(ctx, []string{"q"})
	if err != nil {
		t.Fatalf("RunCommands: %v", err)
	}
	if !strings.HasPrefix(out, "Info: banner\n") {
		t.Fatalf("output missing banner:\n%s", out)
	}

	want := [][]string{{"erase", "r", "q"}, {"q"}}
	if got := sim.Scripts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Scripts() = %v, want %v", got, want)
	}
	if got := sim.LastScript(); !reflect.DeepEqual(got, []string{"q"}) {
		t.Fatalf("LastScript() = %v", got)
	}
}

func TestSimSessionReadReg32(t *testing.T) {
	sim := NewSimSession("")
	sim.Registers[0x400483F8] = 0x00008242

	v, err := sim.ReadReg32(context.Background(), 0x400483F8)
	if err != nil {
		t.Fatalf("ReadReg32: %v", err)
	}
	if v != 0x8242 {
		t.Fatalf("ReadReg32 = 0x%08X, want 0x00008242", v)
	}
	if got := sim.LastScript(); !reflect.DeepEqual(got, ReadRegCommands(0x400483F8)) {
		t.Fatalf("LastScript() = %v", got)
	}

	if _, err := sim.ReadReg32(context.Background(), 0x40000000); !errors.Is(err, ErrNoValue) {
		t.Fatalf("ReadReg32 unmapped error = %v, want ErrNoValue", err)
	}
}

func TestSimSessionHook(t *testing.T) {
	sim := NewSimSession("ignored")
	boom := errors.New("probe unplugged")
	sim.OnRun = func(commands []string) (string, error) {
		return "", boom
	}
	if _, err := sim.ReadReg32(context.Background(), 0x400483F8); !errors.Is(err, boom) {
		t.Fatalf("ReadReg32 error = %v, want hook error", err)
	}
	if len(sim.Scripts()) != 1 {
		t.Fatalf("hooked run was not recorded")
	}
}

func TestSimSessionCancelledContext(t *testing.T) {
	sim := NewSimSession("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sim.RunCommands(ctx, []string{"q"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("RunCommands error = %v, want context.Canceled", err)
	}
}
