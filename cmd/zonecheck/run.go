package main

import (
	"fmt"
	"os"

	"github.com/markdingo/zonecheck/log"
	"github.com/markdingo/zonecheck/osutil"
	"github.com/markdingo/zonecheck/pregen"
	"github.com/markdingo/zonecheck/report"
)

// Run the watch loop checking for signals. Reloads and publishing happen in the watcher
// go-routine. Run returns once a terminating signal is received.
func (t *zoneCheck) Run() {
	var signal os.Signal
	osutil.SignalNotify(t.sig) // Register interest in signals

	go t.watchForReloads(t.cfg.watch)

	fmt.Fprintln(log.Out(), programName, pregen.Version, "Watching every", t.cfg.watch)

	stopFlag := false
	for !stopFlag {
		signal = <-t.sig
		switch {
		case osutil.IsTerminating(signal):
			stopFlag = true

		case osutil.IsSignalUSR1(signal): // USR1 prints the current report
			if err := report.Text(log.Out(), t.dbGetter.Current()...); err != nil {
				warning(err, "SIGUSR1 report")
			}

		case osutil.IsSignalUSR2(signal): // USR2 regenerates all outputs
			log.Major("SIGUSR2 publish initiated")
			t.forcePublish <- struct{}{}

		case osutil.IsSignalHUP(signal):
			log.Major("SIGHUP reload initiated")
			t.forceReload <- struct{}{}

		default:
			log.Majorf("Signal '%s' reserved for future use", signal)
		}
	}

	log.Majorf("Signal '%s' initiates shutdown", signal)
	close(t.done) // Tell companion go-routines
}
