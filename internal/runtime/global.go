package runtime

import "sync"

var (
	defaultProber = &Prober{Timeout: DefaultProbeTimeout}
	defaultMu     sync.RWMutex
)

// DefaultProber returns the prober used by the package-level helpers.
func DefaultProber() *Prober {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultProber
}

// SetDefaultProber replaces the prober used by the package-level helpers.
// Passing nil restores the host prober.
func SetDefaultProber(p *Prober) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if p == nil {
		p = &Prober{Timeout: DefaultProbeTimeout}
	}
	defaultProber = p
}
