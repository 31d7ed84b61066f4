package main

import (
	"os"
	"time"

	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/export"
)

// The zoneCheck container exists so that most of the "main" functionality can be
// delegated to support functions and help keep the flow of main() nice and clean.
type zoneCheck struct {
	cfg *config

	done         chan struct{} // All collaborative go-routines should monitor - see Done()
	forceReload  chan struct{} // Tell watcher to forcefully reload
	forcePublish chan struct{} // Tell watcher to regenerate outputs regardless of digest
	sig          chan os.Signal

	dbGetter *database.Getter
	store    *export.Store // nil unless --sqlite

	lastDigest uint64 // Fingerprint of the most recently published results
	published  bool   // True once lastDigest is valid

	startTime time.Time
}

func newZoneCheck(cfg *config) *zoneCheck {
	t := &zoneCheck{
		cfg:          cfg,
		done:         make(chan struct{}),
		forceReload:  make(chan struct{}),
		forcePublish: make(chan struct{}),
		sig:          make(chan os.Signal, 1),
		dbGetter:     database.NewGetter(),
		startTime:    time.Now(),
	}
	if t.cfg == nil {
		t.cfg = newConfig()
	}

	return t
}

// Done is the go idiomatic way to tell collaborative go-routines to exit. All such
// go-routines should include a "case <-zoneCheck.Done(): return" in their select loop.
func (t *zoneCheck) Done() <-chan struct{} {
	return t.done
}

// close releases the SQLite store, if any. Needed on paths which bypass deferred calls
// by way of os.Exit().
func (t *zoneCheck) close() {
	if t.store != nil {
		t.store.Close()
		t.store = nil
	}
}
