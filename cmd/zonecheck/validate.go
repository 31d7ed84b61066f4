package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/zone"
)

// ValidateCommandLineOptions checks everything that is likely a typo or usage error and
// converts URLs into zone.Sources. Nothing is loaded.
func (t *zoneCheck) ValidateCommandLineOptions() error {
	cfg := t.cfg
	if len(cfg.reverseSpecs) == 0 {
		return errors.New("Must supply at least one --reverse CIDR=URL")
	}

	seen := make(map[netspace.Space]string)
	for _, spec := range cfg.reverseSpecs {
		cidr, url, found := strings.Cut(spec, "=")
		if !found || len(url) == 0 {
			return fmt.Errorf("--reverse %s must be of the form CIDR=URL", spec)
		}
		space, err := netspace.Parse(cidr)
		if err != nil {
			return fmt.Errorf("--reverse %s: %w", spec, err)
		}
		if prev, ok := seen[space]; ok {
			return fmt.Errorf("--reverse %s duplicates %s", spec, prev)
		}
		seen[space] = spec
		src, err := zone.NewSource(url)
		if err != nil {
			return fmt.Errorf("--reverse %s: %w", spec, err)
		}
		cfg.reverses = append(cfg.reverses, &reverseZone{space: space, src: src})
	}

	for _, url := range cfg.forwardURLs {
		src, err := zone.NewSource(url)
		if err != nil {
			return fmt.Errorf("--forward %s: %w", url, err)
		}
		cfg.forwards = append(cfg.forwards, src)
	}

	for _, url := range cfg.metaURLs {
		src, err := zone.NewSource(url)
		if err != nil {
			return fmt.Errorf("--meta %s: %w", url, err)
		}
		if src.Scheme() == "axfr" {
			return fmt.Errorf("--meta %s: axfr is not a valid metadata scheme", url)
		}
		cfg.metas = append(cfg.metas, src)
	}

	if cfg.watch < 0 || (cfg.watch > 0 && cfg.watch < minimumWatch) {
		return fmt.Errorf("--watch %s must be zero or >= %s", cfg.watch, minimumWatch)
	}

	if len(cfg.htmlDir) > 0 {
		fi, err := os.Stat(cfg.htmlDir)
		if err != nil {
			return fmt.Errorf("--html: %w", err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("--html %s is not a directory", cfg.htmlDir)
		}
	}

	return nil
}
