package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/markdingo/zonecheck/log"
	"github.com/markdingo/zonecheck/mock"
	mockDNS "github.com/markdingo/zonecheck/mock/dns"
)

// newTestZoneCheck returns a validated zoneCheck for the testdata zones. prefix is
// prepended to each zone file name to form its URL.
func newTestZoneCheck(t *testing.T, prefix string) *zoneCheck {
	t.Helper()
	zc := newZoneCheck(nil)
	zc.cfg.reverseSpecs = []string{
		"192.168.0.0/24=" + prefix + "0.168.192.in-addr.arpa.zone",
		"10.0.0.0/24=" + prefix + "0.0.10.in-addr.arpa.zone",
	}
	zc.cfg.forwardURLs = []string{prefix + "example.com.zone"}
	zc.cfg.metaURLs = []string{"file:///./testdata/hosts.meta"}
	if err := zc.ValidateCommandLineOptions(); err != nil {
		t.Fatal("Setup", err)
	}

	return zc
}

func TestLoadAll(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(log.MajorLevel)

	zc := newTestZoneCheck(t, "file:///./testdata/")
	if !zc.loadAll("TestLoadAll") {
		t.Fatal("Load failed", out.String())
	}

	nets := zc.dbGetter.Current()
	if len(nets) != 2 {
		t.Fatal("Expected two networks, got", len(nets))
	}
	if nets[0].Space().String() != "192.168.0.0/24" || nets[1].Space().String() != "10.0.0.0/24" {
		t.Error("Networks not in command line order", nets[0].Space(), nets[1].Space())
	}

	testCases := []struct{ f, r, m int }{{4, 4, 1}, {1, 1, 1}}
	for ix, tc := range testCases {
		f, r, m := nets[ix].Counts()
		if f != tc.f || r != tc.r || m != tc.m {
			t.Error(ix, "Counts wrong. Exp", tc, "Got", f, r, m)
		}
	}

	got := out.String()
	for _, s := range []string{
		"testdata/0.168.192.in-addr.arpa.zone Lines=6 PTRs=4 Skipped=2 Out-of-range=0",
		"LoadAll Networks=2 As=5 PTRs=5 Metas=2. Trigger: TestLoadAll",
		"Not in any network: A ns1 192.0.2.53",
		"example.com.zone Skipped types: CNAME=1 NS=1 SOA=1",
		"Not in any network: 172.16.0.1|stray",
	} {
		if !strings.Contains(got, s) {
			t.Error("Log output does not contain", s, "\n", got)
		}
	}
}

func TestLoadAllFailure(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	zc := newTestZoneCheck(t, "file:///./testdata/")
	if !zc.loadAll("good") {
		t.Fatal("Setup load failed", out.String())
	}
	before := zc.dbGetter.Current()

	zc.cfg.forwardURLs = append(zc.cfg.forwardURLs, "file:///./testdata/noexist.zone")
	zc.cfg.reverses, zc.cfg.forwards, zc.cfg.metas = nil, nil, nil
	if err := zc.ValidateCommandLineOptions(); err != nil {
		t.Fatal("Setup", err)
	}
	out.Reset()
	if zc.loadAll("bad") {
		t.Fatal("Load should have failed with a missing forward zone")
	}
	got := out.String()
	if !strings.Contains(got, "Warning: Load of file:///./testdata/noexist.zone failed") ||
		!strings.Contains(got, "load abandoned") {
		t.Error("Failure not logged", got)
	}
	after := zc.dbGetter.Current()
	if len(after) != len(before) || after[0] != before[0] {
		t.Error("Failed load replaced the current networks")
	}
}

// Same zones delivered by the mock AXFR server.
func TestLoadAllAXFR(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	serverAddr := "127.0.0.1:6377"
	h := mockDNS.NewAxfrServer("./testdata")
	srv := mockDNS.StartServer("tcp", serverAddr, h)
	defer srv.Shutdown()

	zc := newZoneCheck(nil)
	zc.cfg.reverseSpecs = []string{
		fmt.Sprintf("192.168.0.0/24=axfr://%s/0.168.192.in-addr.arpa.", serverAddr),
	}
	zc.cfg.forwardURLs = []string{fmt.Sprintf("axfr://%s/example.com.", serverAddr)}
	if err := zc.ValidateCommandLineOptions(); err != nil {
		t.Fatal("Setup", err)
	}
	if !zc.loadAll("axfr") {
		t.Fatal("Load failed", out.String())
	}
	f, r, _ := zc.dbGetter.Current()[0].Counts()
	if f != 4 || r != 4 {
		t.Error("AXFR counts wrong", f, r)
	}
	if h.Requests() != 2 {
		t.Error("Expected two AXFR requests, not", h.Requests())
	}
}

func copyFile(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(to, data, 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(to, past, past); err != nil {
		t.Fatal(err)
	}
}

func TestCheckForReload(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	dir := t.TempDir()
	for _, f := range []string{"0.168.192.in-addr.arpa.zone", "0.0.10.in-addr.arpa.zone",
		"example.com.zone"} {
		copyFile(t, filepath.Join("testdata", f), filepath.Join(dir, f))
	}
	zc := newTestZoneCheck(t, "file://"+dir+"/")
	if !zc.loadAll("initial") {
		t.Fatal("Load failed", out.String())
	}

	if trigger := zc.checkForReload(time.Now()); len(trigger) > 0 {
		t.Error("Unexpected trigger", trigger)
	}

	touched := filepath.Join(dir, "example.com.zone")
	os.Chtimes(touched, time.Now(), time.Now())
	trigger := zc.checkForReload(time.Now())
	if trigger != "file://"+touched {
		t.Error("Expected touched file to trigger reload, got", trigger)
	}
}
