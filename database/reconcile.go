package database

import (
	"sort"

	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

// Row is the merged view of one occupant of an address. Any field other than Address may
// be empty which means that side has nothing to say about this occupant.
type Row struct {
	Address      netspace.Address
	Forward      string // Hostname from an A record
	Reverse      string // Hostname from a PTR record
	MetaHostname string
	Class        string
	Room         string
	Comment      string
}

// Empty returns true if nothing but the address is set.
func (t Row) Empty() bool {
	return len(t.Forward) == 0 && len(t.Reverse) == 0 && len(t.MetaHostname) == 0 &&
		len(t.Class) == 0 && len(t.Room) == 0 && len(t.Comment) == 0
}

func (t *Row) setMeta(m *record.Meta) {
	if m == nil {
		return
	}
	t.MetaHostname = m.Hostname
	t.Class = m.Class
	t.Room = m.Room
	t.Comment = m.Comment
}

// Rows returns the merged rows for every host address in ascending address order. Every
// host address appears at least once.
func (t *Network) Rows() []Row {
	rows := make([]Row, 0, min(t.space.HostCount(), 1<<16))
	t.Walk(func(r Row) bool {
		rows = append(rows, r)
		return true
	})

	return rows
}

// Walk calls fn with each merged row in the same order as Rows(). Walk stops early if fn
// returns false.
//
// Within an address, rows come in this order: hostnames with both A and PTR, A only, PTR
// only, then any metadata which matched no DNS hostname. Callers should only rely on the
// ascending address order.
func (t *Network) Walk(fn func(Row) bool) {
	byAddr := t.forwardByAddress()
	t.space.EachHost(func(addr netspace.Address) bool {
		for _, r := range t.addressRows(addr, byAddr[addr]) {
			if !fn(r) {
				return false
			}
		}
		return true
	})
}

// forwardByAddress inverts the hostname index. The A records are only indexed by
// hostname so a value-side scan is needed; doing it once rather than per address keeps
// Walk linear.
func (t *Network) forwardByAddress() map[netspace.Address]map[string]struct{} {
	m := make(map[netspace.Address]map[string]struct{})
	for _, set := range t.forward {
		for r := range set {
			hosts := m[r.Address]
			if hosts == nil {
				hosts = make(map[string]struct{})
				m[r.Address] = hosts
			}
			hosts[r.Hostname] = struct{}{}
		}
	}

	return m
}

func (t *Network) addressRows(addr netspace.Address, aHosts map[string]struct{}) []Row {
	ptrHosts := make(map[string]struct{})
	for r := range t.reverse[addr] {
		ptrHosts[r.Hostname] = struct{}{}
	}

	var both, onlyA, onlyPTR []string
	for h := range aHosts {
		if _, ok := ptrHosts[h]; ok {
			both = append(both, h)
		} else {
			onlyA = append(onlyA, h)
		}
	}
	for h := range ptrHosts {
		if _, ok := aHosts[h]; !ok {
			onlyPTR = append(onlyPTR, h)
		}
	}
	sort.Strings(both)
	sort.Strings(onlyA)
	sort.Strings(onlyPTR)

	metas := t.meta[addr].Slice() // Working copy - consumed as matched
	var rows []Row
	emit := func(fwd, rev string) {
		r := Row{Address: addr, Forward: fwd, Reverse: rev}
		var m *record.Meta
		m, metas = popMeta(metas, firstNonEmpty(fwd, rev))
		r.setMeta(m)
		rows = append(rows, r)
	}
	for _, h := range both {
		emit(h, h)
	}
	for _, h := range onlyA {
		emit(h, "")
	}
	for _, h := range onlyPTR {
		emit("", h)
	}

	for ix := range metas { // Occupants with no matching DNS hostname
		r := Row{Address: addr}
		r.setMeta(&metas[ix])
		rows = append(rows, r)
	}

	if len(rows) == 0 {
		rows = append(rows, Row{Address: addr})
	}

	return rows
}

// popMeta removes and returns the first entry matching the hostname. The supplied slice
// is modified.
func popMeta(metas []record.Meta, hostname string) (*record.Meta, []record.Meta) {
	for ix := range metas {
		if metas[ix].Hostname == hostname {
			m := metas[ix]
			return &m, append(metas[:ix], metas[ix+1:]...)
		}
	}

	return nil, metas
}

func firstNonEmpty(a, b string) string {
	if len(a) > 0 {
		return a
	}

	return b
}
