package main

import (
	"bytes"
	"time"

	"github.com/markdingo/zonecheck/log"
	"github.com/markdingo/zonecheck/report"
)

// publish checks the current Networks and writes the text report to log.Out(). If --html
// or --sqlite are set, those outputs are regenerated as well. Unless force is true,
// nothing is written if neither the report nor any reconciled row has changed since the
// previous publish. The
// SQLite store is only appended to when the results differ from its most recent run.
//
// The number of anomalies found is returned.
func (t *zoneCheck) publish(force bool) (int, error) {
	nets := t.dbGetter.Current()

	var buf bytes.Buffer
	if err := report.Text(&buf, nets...); err != nil {
		return 0, err
	}
	var anomalies int
	for _, db := range nets {
		anomalies += len(report.Anomalies(db))
	}

	digest := report.Fingerprint(buf.Bytes(), nets...)
	if !force && t.published && digest == t.lastDigest {
		log.Minorf("Results unchanged: digest=%016x", digest)
		return anomalies, nil
	}
	t.lastDigest = digest
	t.published = true

	if _, err := log.Out().Write(buf.Bytes()); err != nil {
		return anomalies, err
	}
	log.Minorf("Anomalies=%d digest=%016x", anomalies, digest)

	if len(t.cfg.htmlDir) > 0 {
		files, err := report.HTML(t.cfg.htmlDir, nets)
		if err != nil {
			return anomalies, err
		}
		for _, f := range files {
			log.Minor("Wrote: ", f)
		}
	}

	if t.store != nil {
		last, ok, err := t.store.LastDigest()
		if err != nil {
			return anomalies, err
		}
		if ok && last == digest {
			log.Minor("SQLite: results unchanged since last run")
		} else {
			id, err := t.store.SaveRun(time.Now(), nets, digest)
			if err != nil {
				return anomalies, err
			}
			log.Minor("SQLite: saved run ", id)
		}
	}

	return anomalies, nil
}
