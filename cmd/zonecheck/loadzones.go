package main

import (
	"fmt"
	"time"

	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/log"
	"github.com/markdingo/zonecheck/record"
	"github.com/markdingo/zonecheck/zone"
)

// loadAll builds a complete new set of Networks from every source: one Network per
// --reverse, with every forward and metadata record offered to every Network. Records
// which fall outside a Network are simply not inserted into it.
//
// The new set only replaces the current set if every source loaded without error, so a
// bad reload in watch mode leaves the previous results in place.
//
// Return true if load was successful.
func (t *zoneCheck) loadAll(trigger string) bool {
	var nets []*database.Network
	var errorCount int

	for _, rz := range t.cfg.reverses {
		db := database.NewNetwork(rz.space)
		nets = append(nets, db)
		var oob int
		err := rz.src.LoadReverse(rz.space, func(r record.Record) {
			if err := db.InsertReverse(r); err != nil {
				oob++
				log.Debug("Rejected: ", err)
			}
		})
		if !t.logLoad(rz.src, "PTRs", oob, err) {
			errorCount++
		}
	}

	for _, src := range t.cfg.forwards {
		var oob int
		err := src.LoadForward(func(r record.Record) {
			if offer(nets, r.String(), func(db *database.Network) error {
				return db.InsertForward(r)
			}) == 0 {
				oob++
			}
		})
		if !t.logLoad(src, "As", oob, err) {
			errorCount++
		}
	}

	for _, src := range t.cfg.metas {
		var oob int
		err := src.LoadMeta(func(m record.Meta) {
			if offer(nets, m.String(), func(db *database.Network) error {
				return db.InsertMeta(m)
			}) == 0 {
				oob++
			}
		})
		if !t.logLoad(src, "Metas", oob, err) {
			errorCount++
		}
	}

	if errorCount > 0 {
		log.Major("LoadAll Errors: ", errorCount, " - load abandoned.")
		return false
	}

	var fwd, rev, meta int
	for _, db := range nets {
		f, r, m := db.Counts()
		fwd, rev, meta = fwd+f, rev+r, meta+m
	}
	log.Majorf("LoadAll Networks=%d As=%d PTRs=%d Metas=%d. Trigger: %s",
		len(nets), fwd, rev, meta, trigger)
	t.dbGetter.Replace(nets) // Only replace if no errors in any source

	return true
}

// offer calls insert for every network and returns the number which accepted the
// record. desc is only used for debug logging.
func offer(nets []*database.Network, desc string, insert func(*database.Network) error) int {
	var accepted int
	for _, db := range nets {
		if insert(db) == nil {
			accepted++
		}
	}
	if accepted == 0 {
		log.Debug("Not in any network: ", desc)
	}

	return accepted
}

// logLoad reports the outcome of loading one source. Return true if the load succeeded.
func (t *zoneCheck) logLoad(src *zone.Source, what string, oob int, err error) bool {
	if err != nil {
		warning(fmt.Errorf("Load of %s failed: %w", src.URL(), err))
		return false
	}

	log.Minorf("Loaded: %s Lines=%d %s=%d Skipped=%d Out-of-range=%d Serial=%d Refresh=%d",
		src.Name(), src.Lines, what, src.Added, src.Skipped, oob,
		src.SOA.Serial, src.SOA.Refresh)
	if len(src.SkippedTypes) > 0 {
		log.Debugf("%s Skipped types: %s", src.Name(), src.SkippedTypes)
	}

	return true
}

// Periodically check whether any source needs reloading. A reload of all sources occurs
// when any one of them has changed. Because it's not easy to be notified of DTM changes
// across platforms, this routine simply polls. This go-routine exits when
// zoneCheck->Done() closes.
//
// Each successful reload is followed by a publish which only regenerates outputs if the
// results changed.
func (t *zoneCheck) watchForReloads(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.Done():
			return

		case <-t.forceReload:
			t.reloadAndPublish("force reload")

		case <-t.forcePublish:
			if _, err := t.publish(true); err != nil {
				warning(err, "Publish failed")
			}

		case now := <-ticker.C:
			trigger := t.checkForReload(now)
			if len(trigger) > 0 {
				t.reloadAndPublish(trigger)
			}
		}
	}
}

func (t *zoneCheck) reloadAndPublish(trigger string) {
	if !t.loadAll(trigger) {
		return
	}
	if _, err := t.publish(false); err != nil {
		warning(err, "Publish failed")
	}
}

// checkForReload returns a trigger reason if a reload should be attempted. As soon as one
// source determines that a reload is necessary then return that fact. Don't bother to
// check any others.
func (t *zoneCheck) checkForReload(now time.Time) string {
	for _, src := range t.cfg.allSources() {
		if src.Changed(now) {
			log.Debug(src.Name(), " triggers reload")
			return src.URL()
		}
	}

	return ""
}
