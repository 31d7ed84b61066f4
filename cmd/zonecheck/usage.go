package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/zonecheck/log"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions parses the command line into t.cfg. Values are not validated here, that is
// left to ValidateCommandLineOptions().
//
// Towards the end of this function you'll see the hoops need to disallow duplicate
// flags. Neither "flag" nor "spf13/pflag" complain about duplicates, so we manage them
// ourselves.
func (t *zoneCheck) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.BoolVar(&t.cfg.logMajorFlag, "log-major", true, "Log major events to Stdout")
	fs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false,
		"Log minor events to Stdout - this implies --log-major")
	fs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log debug events to Stdout - this implies --log-minor")
	fs.BoolVar(&t.cfg.strictFlag, "strict", false,
		`Exit with status 2 if any anomalies are found. Ignored with
--watch.`)

	// config Durations

	fs.DurationVar(&t.cfg.watch, "watch", 0,
		`Keep running after the first check and poll all sources at this
interval (>= 1s). Outputs are regenerated whenever the results
change.`)

	// config StringVars

	fs.StringVar(&t.cfg.htmlDir, "html", "",
		`Directory in which to write index.html and one page per network.
`)
	fs.StringVar(&t.cfg.sqlitePath, "sqlite", "",
		"SQLite database in which to record each distinct set of results.")

	// config String Arrays

	fs.StringArrayVar(&t.cfg.forwardURLs, "forward", []string{},
		`Load forward zone from URL. Every A record is checked against
every network defined by --reverse.`)
	fs.StringArrayVar(&t.cfg.reverseSpecs, "reverse", []string{},
		`Load reverse zone for CIDR from URL. Each --reverse defines a
network to check, e.g. 192.0.2.0/24=file:///./2.0.192.rev
`)
	fs.StringArrayVar(&t.cfg.metaURLs, "meta", []string{},
		`Load occupant details from URL. Each line has the form
address|hostname|class|room|comment
`)

	////////////////////////////////////////

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options that never run zonecheck
	dupes["version"] = true // can be duplicate because the user may be fumbling

	dupes["forward"] = true // These are legitimately allowed multiple times and
	dupes["reverse"] = true // zonecheck honors all values.
	dupes["meta"] = true

	fs.SetInterspersed(false) // This GNU-ism breaks execute chaining, so turn it off!
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)

				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(log.Out(), "Error:Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args(), " "))
		return parseFailed
	}

	return parseContinue
}

// I trust all output devices can render UTF-8 these days otherwise the ellipses will look
// a bit odd.
func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- check forward and reverse DNS zones agree")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     zonecheck -h | --help | -v | --version")
	fmt.Fprintln(o, "     zonecheck --reverse CIDR=URL… [--forward URL]… [--meta URL]…")
	fmt.Fprintln(o, `               [--html directory] [--sqlite path] [--strict]
               [--watch time.Duration]
               [--log-major=true] [--log-minor] [--log-debug]`)

	fmt.Fprintln(o)
	fmt.Fprintln(o, "     Ellipses (…) indicate options which can be specified multiple times.")
	fmt.Fprint(o, `
DESCRIPTION
     zonecheck loads forward and reverse zones and reports where they fail to
     agree. Each A record should have exactly one PTR at its address naming the
     same host, and each PTR should have exactly one A record for its host
     carrying the same address. Duplicate definitions, records without a
     counterpart, and records whose counterpart disagrees are all reported.

     Zones are loaded from URLs with a scheme of file, http, https or axfr, e.g.

           file:///etc/nsd/example.com.zone
           file:///./relative/example.com.zone?origin=example.com
           https://www.example.net/zones/example.com.zone
           axfr://ns1.example.net/example.com

     A typical invocation is:

           $ zonecheck --forward file:///./example.com.zone \
                 --reverse 192.0.2.0/24=file:///./2.0.192.rev --html /var/www/zc

     which prints any anomalies and writes an HTML report of every address in
     192.0.2.0/24 showing its A and PTR names alongside any --meta details.
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	fmt.Fprintln(o, fs.FlagUsagesWrapped(100))
}
