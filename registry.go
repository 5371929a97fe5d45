package charscan

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v4"
)

// registry maps encoding names to their operation bundles. The built-in
// encodings are stored at init; additional encodings may be registered at any
// time, so the map must be concurrent-safe.
var registry = xsync.NewMap[string, Encoding]()

func init() {
	for _, t := range []Tag{Raw, ASCII, PrintableASCII, UTF8} {
		registry.Store(t.String(), t.Encoding())
	}
}

// Register adds a custom encoding under its Name. Registering a name that is
// already taken (including the built-in names) is an error; built-ins can
// never be replaced.
func Register(e Encoding) error {
	if e == nil {
		return ErrNilEncoding
	}
	if _, loaded := registry.LoadOrStore(e.Name(), e); loaded {
		return fmt.Errorf("%w: %q", ErrDuplicateEncoding, e.Name())
	}
	return nil
}

// Lookup returns the encoding registered under name.
func Lookup(name string) (Encoding, bool) {
	return registry.Load(name)
}

// Encodings returns the names of all registered encodings, sorted.
func Encodings() []string {
	names := make([]string, 0, registry.Size())
	registry.Range(func(name string, _ Encoding) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
