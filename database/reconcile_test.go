package database

import (
	"testing"

	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

// A records           PTR records
// hoge  192.168.0.1
//                     192.168.0.2  fuga
// syaro 192.168.0.3   192.168.0.3  syaro
// syaro 192.168.0.4   192.168.0.4  syaro
// rize  192.168.0.4   192.168.0.4  rize
func newRowsNetwork() *Network {
	db := NewNetwork(netspace.MustParse("192.168.0.0/24"))
	db.Add(record.NewForward("hoge", addr("192.168.0.1")))
	db.Add(record.NewForward("syaro", addr("192.168.0.3")))
	db.Add(record.NewForward("syaro", addr("192.168.0.4")))
	db.Add(record.NewForward("rize", addr("192.168.0.4")))
	db.Add(record.NewReverse("fuga", addr("192.168.0.2")))
	db.Add(record.NewReverse("syaro", addr("192.168.0.3")))
	db.Add(record.NewReverse("syaro", addr("192.168.0.4")))
	db.Add(record.NewReverse("rize", addr("192.168.0.4")))

	return db
}

func TestRows(t *testing.T) {
	db := newRowsNetwork()
	rows := db.Rows()
	if len(rows) != 255 { // 254 hosts plus one extra for the second occupant of .4
		t.Fatal("Expected 255 rows, got", len(rows))
	}
	exp := []Row{
		{Address: addr("192.168.0.1"), Forward: "hoge"},
		{Address: addr("192.168.0.2"), Reverse: "fuga"},
		{Address: addr("192.168.0.3"), Forward: "syaro", Reverse: "syaro"},
		{Address: addr("192.168.0.4"), Forward: "rize", Reverse: "rize"},
		{Address: addr("192.168.0.4"), Forward: "syaro", Reverse: "syaro"},
		{Address: addr("192.168.0.5")},
		{Address: addr("192.168.0.6")},
	}
	for ix, e := range exp {
		if rows[ix] != e {
			t.Error(ix, "Row mismatch. Exp:", e, "Got:", rows[ix])
		}
	}
	if !rows[5].Empty() || rows[0].Empty() {
		t.Error("Empty() wrong", rows[5], rows[0])
	}
	if last := rows[len(rows)-1]; last.Address.String() != "192.168.0.254" || !last.Empty() {
		t.Error("Last row wrong", last)
	}
}

func TestRowsCompleteness(t *testing.T) {
	for _, cidr := range []string{"10.0.0.0/24", "10.0.0.0/28", "10.0.0.0/31", "10.0.0.1/32"} {
		space := netspace.MustParse(cidr)
		db := NewNetwork(space)
		rows := db.Rows()
		if len(rows) != int(space.HostCount()) {
			t.Error(cidr, "Empty network should have one row per host", len(rows))
		}
		seen := make(map[netspace.Address]bool)
		var prev netspace.Address
		for ix, r := range rows {
			seen[r.Address] = true
			if ix > 0 && r.Address < prev {
				t.Fatal(cidr, "Rows not in ascending order at", ix)
			}
			prev = r.Address
		}
		for _, h := range space.Hosts() {
			if !seen[h] {
				t.Error(cidr, "Missing row for", h)
			}
		}
	}
}

func TestRowsMeta(t *testing.T) {
	db := newRowsNetwork()
	db.InsertMeta(record.Meta{Address: addr("192.168.0.1"), Hostname: "hoge",
		Class: "HOST", Room: "100", Comment: "test"})
	db.InsertMeta(record.Meta{Address: addr("192.168.0.2"), Hostname: "fuga", Room: "101"})
	db.InsertMeta(record.Meta{Address: addr("192.168.0.4"), Hostname: "rize", Class: "PC"})
	db.InsertMeta(record.Meta{Address: addr("192.168.0.4"), Hostname: "rize", Class: "LAPTOP"})
	db.InsertMeta(record.Meta{Address: addr("192.168.0.7"), Comment: "someone's PC"})

	rows := db.Rows()
	exp := []Row{
		{Address: addr("192.168.0.1"), Forward: "hoge", MetaHostname: "hoge", Class: "HOST",
			Room: "100", Comment: "test"},
		{Address: addr("192.168.0.2"), Reverse: "fuga", MetaHostname: "fuga", Room: "101"},
		{Address: addr("192.168.0.3"), Forward: "syaro", Reverse: "syaro"},
		// First rize meta consumed by the DNS row, second has no DNS match
		{Address: addr("192.168.0.4"), Forward: "rize", Reverse: "rize",
			MetaHostname: "rize", Class: "LAPTOP"},
		{Address: addr("192.168.0.4"), Forward: "syaro", Reverse: "syaro"},
		{Address: addr("192.168.0.4"), MetaHostname: "rize", Class: "PC"},
		{Address: addr("192.168.0.5")},
		{Address: addr("192.168.0.6")},
		{Address: addr("192.168.0.7"), Comment: "someone's PC"},
		{Address: addr("192.168.0.8")},
	}
	for ix, e := range exp {
		if rows[ix] != e {
			t.Error(ix, "Row mismatch. Exp:", e, "Got:", rows[ix])
		}
	}

	// The store's own metadata must not have been consumed
	if len(db.Meta(addr("192.168.0.4"))) != 2 {
		t.Error("Rows() consumed the store's metadata")
	}
	again := db.Rows()
	if len(again) != len(rows) {
		t.Error("Second Rows() differs", len(again), len(rows))
	}
}

func TestWalkStops(t *testing.T) {
	db := newRowsNetwork()
	var count int
	db.Walk(func(Row) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Error("Walk did not stop when asked", count)
	}
}

func TestWalkLargeNetwork(t *testing.T) {
	db := NewNetwork(netspace.MustParse("10.0.0.0/8"))
	db.Add(record.NewForward("gw", addr("10.0.0.5")))
	var found Row
	db.Walk(func(r Row) bool {
		found = r
		return len(r.Forward) == 0
	})
	if found.Address != addr("10.0.0.5") || found.Forward != "gw" {
		t.Error("Walk of /8 did not reach 10.0.0.5 in order", found)
	}
}

func TestRowsIgnoreNonHosts(t *testing.T) {
	db := NewNetwork(netspace.MustParse("192.168.0.0/30"))
	db.Add(record.NewForward("net", addr("192.168.0.0")))   // Network address
	db.Add(record.NewReverse("bcast", addr("192.168.0.3"))) // Broadcast
	rows := db.Rows()
	if len(rows) != 2 || !rows[0].Empty() || !rows[1].Empty() {
		t.Error("Network and broadcast records should not produce rows", rows)
	}
}
