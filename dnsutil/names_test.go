package dnsutil

import (
	"testing"
)

func TestChompCanonicalName(t *testing.T) {
	r := ChompCanonicalName("a.b.c")
	if r != "a.b.c" {
		t.Error("Chomp is modifying when it shouldn't", r)
	}
	r = ChompCanonicalName("A.b.C.")
	if r != "a.b.c" {
		t.Error("Chomp is not chomping and lowering", r)
	}
}

func TestShortName(t *testing.T) {
	testCases := []struct{ in, out string }{
		{"host1.example.com", "host1"},
		{"host2.example.com.", "host2"},
		{"HOST3.Example.Com.", "host3"},
		{"host4", "host4"},
		{"host-5.a", "host-5"},
		{".", ""},
		{"", ""},
	}
	for ix, tc := range testCases {
		if got := ShortName(tc.in); got != tc.out {
			t.Error(ix, "ShortName", tc.in, "Exp:", tc.out, "Got:", got)
		}
	}
}
