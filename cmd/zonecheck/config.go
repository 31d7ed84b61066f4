package main

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/markdingo/zonecheck/log"
	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/pregen"
	"github.com/markdingo/zonecheck/zone"
)

const (
	programName = "zonecheck"

	// Kinda subtle, but uppercase HTTPS implies BuildInfo was empty.
	defaultProjectURL = "HTTPS://github.com/markdingo/zonecheck"

	minimumWatch = time.Second
)

// reverseZone binds a reverse zone source to the subnet it describes. Each one becomes a
// database.Network.
type reverseZone struct {
	space netspace.Space
	src   *zone.Source
}

// config defines the global configuration settings used by zonecheck. Once validated it
// is never changed as it is shared with the watcher go-routine without lock protection.
type config struct {
	projectURL string

	logMajorFlag bool // Major events such as reloads
	logMinorFlag bool // Per-source load details
	logDebugFlag bool // Every rejected record

	strictFlag bool // Exit 2 if any anomalies are found

	forwardURLs  []string // --forward
	reverseSpecs []string // --reverse CIDR=URL
	metaURLs     []string // --meta

	htmlDir    string
	sqlitePath string
	watch      time.Duration // Zero means check once and exit

	// Populated by ValidateCommandLineOptions()

	forwards []*zone.Source
	reverses []*reverseZone
	metas    []*zone.Source
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

// allSources returns every source in load order.
func (t *config) allSources() []*zone.Source {
	var ar []*zone.Source
	for _, rz := range t.reverses {
		ar = append(ar, rz.src)
	}
	ar = append(ar, t.forwards...)

	return append(ar, t.metas...)
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", t.projectURL)
}
