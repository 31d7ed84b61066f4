// Package record defines the forward, reverse and metadata values which populate a
// database.Network.
//
// Record is a comparable value type so two Records with identical fields are the same
// value. This matters because the database stores Records in sets: re-adding an
// identical Record is absorbed whereas two distinct Records which share an index key are
// retained and subsequently reported as duplicates.
package record

import (
	"fmt"
	"sort"

	"github.com/markdingo/zonecheck/netspace"
)

// Kind identifies a forward (A) or reverse (PTR) Record.
type Kind int

const (
	Forward Kind = iota
	Reverse
)

// String returns the DNS RR type name most closely associated with the Kind.
func (t Kind) String() string {
	switch t {
	case Forward:
		return "A"
	case Reverse:
		return "PTR"
	}

	return fmt.Sprintf("Kind(%d)", int(t))
}

// Record is a single forward or reverse mapping between a short hostname and an
// address. Used is part of the identity but otherwise carries no semantics.
type Record struct {
	Hostname string
	Address  netspace.Address
	Kind     Kind
	Used     bool
}

// NewForward returns a Used Forward Record.
func NewForward(hostname string, addr netspace.Address) Record {
	return Record{Hostname: hostname, Address: addr, Kind: Forward, Used: true}
}

// NewReverse returns a Used Reverse Record.
func NewReverse(hostname string, addr netspace.Address) Record {
	return Record{Hostname: hostname, Address: addr, Kind: Reverse, Used: true}
}

func (t Record) String() string {
	return t.Kind.String() + " " + t.Hostname + " " + t.Address.String()
}

// Less defines the canonical Record order: address, hostname, kind then used.
func (t Record) Less(o Record) bool {
	if t.Address != o.Address {
		return t.Address < o.Address
	}
	if t.Hostname != o.Hostname {
		return t.Hostname < o.Hostname
	}
	if t.Kind != o.Kind {
		return t.Kind < o.Kind
	}

	return !t.Used && o.Used
}

// Set is a set of Records. The zero value is not usable; create with make() or NewSet().
type Set map[Record]struct{}

// NewSet returns a Set populated with the supplied Records.
func NewSet(rs ...Record) Set {
	s := make(Set, len(rs))
	for _, r := range rs {
		s.Add(r)
	}

	return s
}

// Add returns true if the Record was not already present.
func (t Set) Add(r Record) bool {
	if _, ok := t[r]; ok {
		return false
	}
	t[r] = struct{}{}

	return true
}

func (t Set) Contains(r Record) bool {
	_, ok := t[r]
	return ok
}

// Slice returns the Records in canonical order.
func (t Set) Slice() []Record {
	ar := make([]Record, 0, len(t))
	for r := range t {
		ar = append(ar, r)
	}
	sort.Slice(ar, func(i, j int) bool { return ar[i].Less(ar[j]) })

	return ar
}

// Equal returns true if both sets contain exactly the same Records.
func (t Set) Equal(o Set) bool {
	if len(t) != len(o) {
		return false
	}
	for r := range t {
		if !o.Contains(r) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (t Set) Clone() Set {
	c := make(Set, len(t))
	for r := range t {
		c[r] = struct{}{}
	}

	return c
}
