package database

import (
	"sync"
)

// Getter supports atomically switching sets of Networks on the fly - this occurs when
// watched zones change and are reloaded. Go-routines should not hold on to the returned
// value of Current() for longer than a single check or report.
//
// The Getter exists because Networks are read-only once populated and rather than
// having update capabilities they are simply replaced.
type Getter struct {
	mu   sync.RWMutex
	nets []*Network
}

// NewGetter creates a Getter with an empty set of Networks.
func NewGetter() *Getter {
	return &Getter{}
}

// Replace the current Networks. Replace can be called with a nil replacement, in which
// case Replace() does nothing.
func (t *Getter) Replace(nets []*Network) {
	if nets == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nets = nets
}

// Current returns the current Networks under mutex protection.
func (t *Getter) Current() []*Network {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nets
}
