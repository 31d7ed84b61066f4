package main

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		reverse []string
		forward []string
		meta    []string
		watch   time.Duration
		html    string
		expect  string
	}{
		{[]string{"192.168.0.0/24=file:///./testdata/0.168.192.in-addr.arpa.zone"},
			[]string{"file:///./testdata/example.com.zone"},
			[]string{"file:///./testdata/hosts.meta"}, time.Minute, dir, ""}, // Good
		{nil, nil, nil, 0, "", "at least one --reverse"},
		{[]string{"192.168.0.0/24"}, nil, nil, 0, "", "CIDR=URL"},
		{[]string{"192.168.0.0/24="}, nil, nil, 0, "", "CIDR=URL"},
		{[]string{"192.168.0.0/33=file:///x"}, nil, nil, 0, "", "malformed"},
		{[]string{"192.168.0.0/24=file:///x", "192.168.0.9/24=file:///y"}, nil, nil, 0, "",
			"duplicates"},
		{[]string{"192.168.0.0/24=ftp://x/y"}, nil, nil, 0, "", "not a supported scheme"},
		{[]string{"10.0.0.0/8=file:///x"}, []string{"file://"}, nil, 0, "", "--forward"},
		{[]string{"10.0.0.0/8=file:///x"}, nil, []string{"axfr://ns/zone"}, 0, "",
			"not a valid metadata scheme"},
		{[]string{"10.0.0.0/8=file:///x"}, nil, nil, time.Millisecond, "", ">= 1s"},
		{[]string{"10.0.0.0/8=file:///x"}, nil, nil, -time.Second, "", ">= 1s"},
		{[]string{"10.0.0.0/8=file:///x"}, nil, nil, 0, dir + "/noexist", "--html"},
		{[]string{"10.0.0.0/8=file:///x"}, nil, nil, 0, "validate.go", "not a directory"},
	}

	for ix, tc := range testCases {
		zc := newZoneCheck(nil)
		zc.cfg.reverseSpecs = tc.reverse
		zc.cfg.forwardURLs = tc.forward
		zc.cfg.metaURLs = tc.meta
		zc.cfg.watch = tc.watch
		zc.cfg.htmlDir = tc.html
		err := zc.ValidateCommandLineOptions()
		if err != nil {
			if len(tc.expect) == 0 {
				t.Error(ix, "Unexpected error", err)
			} else if !strings.Contains(err.Error(), tc.expect) {
				t.Error(ix, "Wrong error. Want", tc.expect, "got", err)
			}
			continue
		}
		if len(tc.expect) > 0 {
			t.Error(ix, "Expected error containing", tc.expect)
			continue
		}
		if len(zc.cfg.reverses) != len(tc.reverse) || len(zc.cfg.forwards) != len(tc.forward) ||
			len(zc.cfg.metas) != len(tc.meta) {
			t.Error(ix, "Sources not populated")
		}
		if len(zc.cfg.allSources()) != len(tc.reverse)+len(tc.forward)+len(tc.meta) {
			t.Error(ix, "allSources() wrong length")
		}
	}
}
