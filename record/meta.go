package record

import (
	"sort"
	"strings"

	"github.com/markdingo/zonecheck/netspace"
)

// Meta is auxiliary information about the occupant of an address which is independent of
// the DNS. All fields other than Address are optional and an empty string means absent.
type Meta struct {
	Address  netspace.Address
	Hostname string
	Class    string
	Room     string
	Comment  string
}

// String returns the pipe-delimited form used by metadata files.
func (t Meta) String() string {
	return strings.Join([]string{t.Address.String(), t.Hostname, t.Class, t.Room, t.Comment},
		"|")
}

func (t Meta) less(o Meta) bool {
	if t.Address != o.Address {
		return t.Address < o.Address
	}
	if t.Hostname != o.Hostname {
		return t.Hostname < o.Hostname
	}
	if t.Class != o.Class {
		return t.Class < o.Class
	}
	if t.Room != o.Room {
		return t.Room < o.Room
	}

	return t.Comment < o.Comment
}

// MetaSet is a set of Meta values.
type MetaSet map[Meta]struct{}

func (t MetaSet) Add(m Meta) bool {
	if _, ok := t[m]; ok {
		return false
	}
	t[m] = struct{}{}

	return true
}

// Slice returns the Meta values in a stable order.
func (t MetaSet) Slice() []Meta {
	ar := make([]Meta, 0, len(t))
	for m := range t {
		ar = append(ar, m)
	}
	sort.Slice(ar, func(i, j int) bool { return ar[i].less(ar[j]) })

	return ar
}
