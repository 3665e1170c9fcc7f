package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
)

// Descriptor registers a chip family under a CLI-visible name.
type Descriptor struct {
	Name        string
	Description string
	Params      jlink.Params

	// IDRegister is the address of the chip identification register.
	IDRegister uint32

	// ConnectedBanner is the commander line printed once the expected CPU
	// core has been found.
	ConnectedBanner string

	New func(open SessionOpener) (Core, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Descriptor)
)

// Register adds a chip family. It panics on an empty or duplicate name, which
// can only happen through a programming error in an init function.
func Register(d Descriptor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if d.Name == "" || d.New == nil {
		panic("core: Register called with incomplete descriptor")
	}
	if _, dup := registry[d.Name]; dup {
		panic(fmt.Sprintf("core: Register called twice for %q", d.Name))
	}
	registry[d.Name] = d
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	d, ok := registry[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("core: unknown core %q", name)
	}
	return d, nil
}

// Names lists registered chip families in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
