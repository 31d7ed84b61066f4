package main

import (
	"fmt"
	"os"
	"time"

	"github.com/markdingo/zonecheck/export"
	"github.com/markdingo/zonecheck/log"
	"github.com/markdingo/zonecheck/pregen"
)

func fatal(err error, messages ...string) {
	log.Report("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	log.Report("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

func main() {
	zc := newZoneCheck(nil)
	switch zc.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	// Transfer logging options to the log package

	if zc.cfg.logMajorFlag {
		log.SetLevel(log.MajorLevel)
	} else {
		log.SetLevel(log.SilentLevel)
	}
	if zc.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if zc.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}

	log.Minor(programName, " ", pregen.Version, " Starting with Log Level: ", log.Level())

	// Validate everything that is likely a typo or usage error
	err := zc.ValidateCommandLineOptions()
	if err != nil {
		fatal(err)
	}

	if len(zc.cfg.sqlitePath) > 0 {
		zc.store, err = export.Open(zc.cfg.sqlitePath)
		if err != nil {
			fatal(err)
		}
		defer zc.close()
	}

	if !zc.loadAll("Initial load") {
		zc.close()
		fatal(nil, "Cannot continue due to failed zone load")
	}

	anomalies, err := zc.publish(true)
	if err != nil {
		zc.close()
		fatal(err)
	}

	if zc.cfg.watch > 0 {
		zc.Run()
		log.Major(programName, " ", pregen.Version, " Exiting after ",
			time.Since(zc.startTime).Round(time.Second))
		return
	}

	if zc.cfg.strictFlag && anomalies > 0 {
		zc.close()
		fmt.Fprintln(os.Stderr, programName+":", anomalies, "anomalies found")
		os.Exit(2)
	}
}
