package core

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
)

type stubCore struct{}

func (stubCore) Wipe(context.Context) error { return nil }
func (stubCore) Program(context.Context, []string) error { return nil }
func (stubCore) DetectSeggerDeviceID(context.Context) (string, error) { return "STUB", nil }
func (stubCore) Info(context.Context) (Info, error) { return Info{}, nil }
func (stubCore) IsConnected(context.Context) (bool, error) { return true, nil }

func TestRegistry(t *testing.T) {
	d := Descriptor{
		Name:   "test-stub",
		Params: jlink.Params{Device: "STUB", Interface: jlink.InterfaceSWD, SpeedKHz: 100},
		New: func(open SessionOpener) (Core, error) {
			if _, err := open(jlink.Params{}); err != nil {
				return nil, err
			}
			return stubCore{}, nil
		},
	}
	Register(d)

	got, err := Lookup("test-stub")
	require.NoError(t, err)
	assert.Equal(t, d.Params, got.Params)
	assert.Contains(t, Names(), "test-stub")

	assert.Panics(t, func() { Register(d) }, "duplicate registration must panic")
	assert.Panics(t, func() { Register(Descriptor{Name: "no-constructor"}) })

	_, err = Lookup("nope")
	assert.Error(t, err)
}

func TestInfoLines(t *testing.T) {
	info := Info{ChipName: "LPC824M201JDH20", SeggerID: "LPC824M201"}
	assert.Equal(t, []string{"Device ID : LPC824M201JDH20", "Segger ID : LPC824M201"}, info.Lines())

	var buf bytes.Buffer
	require.NoError(t, info.Fprint(&buf))
	assert.Equal(t, "Device ID : LPC824M201JDH20\nSegger ID : LPC824M201\n", buf.String())
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "0xDEADBEEF", FormatHex(0xDEADBEEF))
	assert.Equal(t, "0x00008242", FormatHex(0x8242))
	assert.Equal(t, "0x00000000", FormatHex(0))
}
