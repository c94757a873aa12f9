// Package intern canonicalizes option names so repeated parses and
// clustered single-character flags share one string instance per name.
package intern

import "sync"

// Interner is a thread-safe string canonicalizer. Lookups take a read
// lock; insertion double-checks under the write lock.
type Interner struct {
	mu    sync.RWMutex
	names map[string]string
}

// maxEntries bounds the table. Argument vectors are caller-controlled, and
// an unbounded table would turn a hostile vocabulary into a leak; past the
// bound names pass through uninterned.
const maxEntries = 4096

// NewInterner returns an Interner seeded with the given names.
func NewInterner(seed ...string) *Interner {
	in := &Interner{names: make(map[string]string, 64+len(seed))}
	for _, s := range seed {
		in.names[s] = s
	}
	return in
}

// Name returns the canonical instance of s. Single printable-ASCII
// characters come from a fixed table, the common case for clustered flags.
func (in *Interner) Name(s string) string {
	if len(s) == 1 && s[0] >= ' ' && s[0] < 0x7f {
		return asciiNames[s[0]-' ']
	}

	in.mu.RLock()
	if c, ok := in.names[s]; ok {
		in.mu.RUnlock()
		return c
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if c, ok := in.names[s]; ok {
		return c
	}
	if len(in.names) >= maxEntries {
		return s
	}
	in.names[s] = s
	return s
}

// Len reports the number of interned names.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.names)
}

// asciiNames holds canonical one-character names for printable ASCII,
// space through tilde.
var asciiNames [95]string

// commonNames is the option vocabulary seeded into the default interner so
// first parses stay on the read path.
var commonNames = []string{
	"help", "h", "version", "verbose", "v", "quiet", "q", "debug", "d",
	"force", "f", "output", "o", "input", "i", "config", "c", "port", "p",
	"host", "file", "dir", "level", "all", "dry-run", "timeout",
}

var std *Interner

//nolint:gochecknoinits // default interner is seeded once at startup
func init() {
	for i := range asciiNames {
		asciiNames[i] = string(rune(' ' + i))
	}
	std = NewInterner(commonNames...)
}

// Name canonicalizes s in the default interner.
func Name(s string) string { return std.Name(s) }
