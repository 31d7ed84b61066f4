package zone

import (
	"testing"

	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

func meta(a, h, c, r, cm string) record.Meta {
	return record.Meta{Address: netspace.MustParseAddress(a),
		Hostname: h, Class: c, Room: r, Comment: cm}
}

func TestParseMetaLine(t *testing.T) {
	testCases := []struct {
		line string
		exp  record.Meta
		ok   bool
	}{
		{"192.168.0.1|host1|pc|r1|note", meta("192.168.0.1", "host1", "pc", "r1", "note"), true},
		{"  10.0.0.1 |  h  | c |  | spaced comment \n",
			meta("10.0.0.1", "h", "c", "", "spaced comment"), true},
		{"10.0.0.2||||", record.Meta{Address: netspace.MustParseAddress("10.0.0.2")}, true},
		{"10.0.0.2|||", record.Meta{}, false},      // Too few fields
		{"10.0.0.2|||||", record.Meta{}, false},    // Too many fields
		{"10.0.0.2|a b|||", record.Meta{}, false},  // Embedded space in hostname
		{"10.0.0.256|h|||", record.Meta{}, false},  // Bad octet
		{"host|10.0.0.1|||", record.Meta{}, false}, // Wrong order
	}

	for ix, tc := range testCases {
		got, err := ParseMetaLine(tc.line)
		if (err == nil) != tc.ok {
			t.Error(ix, "Unexpected error state", err, tc.line)
			continue
		}
		if err != nil {
			if err != ErrNotMeta {
				t.Error(ix, "Expected ErrNotMeta, got", err)
			}
			continue
		}
		if got != tc.exp {
			t.Error(ix, "Exp", tc.exp, "Got", got)
		}
	}
}

func TestIsIgnoredMetaLine(t *testing.T) {
	for _, l := range []string{"", "   ", "\t", "# comment", "   # indented comment"} {
		if !IsIgnoredMetaLine(l) {
			t.Errorf("'%s' should be ignored", l)
		}
	}
	for _, l := range []string{"192.168.0.1||||", "x # not leading"} {
		if IsIgnoredMetaLine(l) {
			t.Errorf("'%s' should not be ignored", l)
		}
	}
}

func TestLoadMeta(t *testing.T) {
	src, err := NewSource("file:///./testdata/hosts.meta")
	if err != nil {
		t.Fatal(err)
	}
	set := make(record.MetaSet)
	err = src.LoadMeta(func(m record.Meta) { set.Add(m) })
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	if src.Lines != 7 || src.Added != 3 || src.Skipped != 2 {
		t.Error("Counters wrong", src.Lines, src.Added, src.Skipped)
	}
	got := set.Slice()
	if len(got) != 3 {
		t.Fatal("Expected 3 metas, got", got)
	}
	if got[1].Hostname != "chino" || got[1].Comment != "primary web" || got[1].Class != "server" {
		t.Error("Wrong fields for chino", got[1])
	}
	if got[2].Hostname != "" || got[2].Class != "printer" {
		t.Error("Wrong fields for printer", got[2])
	}

	src, _ = NewSource("axfr://127.0.0.1/example.com")
	if err := src.LoadMeta(func(record.Meta) {}); err == nil {
		t.Error("axfr metadata should be rejected")
	}
}
