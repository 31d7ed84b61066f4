package database

import (
	"errors"
	"fmt"

	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

var (
	ErrOutOfRange = errors.New("out of range")
	ErrWrongKind  = errors.New("wrong record kind")
)

// Network is constructed with NewNetwork() - using a default construction will result in
// a panic due to unconstructed maps.
type Network struct {
	space   netspace.Space
	forward map[string]record.Set               // hostname -> A records
	reverse map[netspace.Address]record.Set     // address -> PTR records
	meta    map[netspace.Address]record.MetaSet // address -> occupant details
}

// NewNetwork *must* be used to construct a new Network
func NewNetwork(space netspace.Space) *Network {
	return &Network{
		space:   space,
		forward: make(map[string]record.Set),
		reverse: make(map[netspace.Address]record.Set),
		meta:    make(map[netspace.Address]record.MetaSet),
	}
}

func (t *Network) Space() netspace.Space {
	return t.space
}

func (t *Network) rangeCheck(addr netspace.Address) error {
	if !t.space.Contains(addr) {
		return fmt.Errorf("%s not in %s: %w", addr, t.space, ErrOutOfRange)
	}

	return nil
}

// InsertForward adds the record to the hostname index. Re-inserting an identical record
// is not an error, it is simply absorbed.
func (t *Network) InsertForward(r record.Record) error {
	if r.Kind != record.Forward {
		return fmt.Errorf("InsertForward given %s: %w", r, ErrWrongKind)
	}
	if err := t.rangeCheck(r.Address); err != nil {
		return err
	}
	set := t.forward[r.Hostname]
	if set == nil {
		set = make(record.Set)
		t.forward[r.Hostname] = set
	}
	set.Add(r)

	return nil
}

// InsertReverse adds the record to the address index.
func (t *Network) InsertReverse(r record.Record) error {
	if r.Kind != record.Reverse {
		return fmt.Errorf("InsertReverse given %s: %w", r, ErrWrongKind)
	}
	if err := t.rangeCheck(r.Address); err != nil {
		return err
	}
	set := t.reverse[r.Address]
	if set == nil {
		set = make(record.Set)
		t.reverse[r.Address] = set
	}
	set.Add(r)

	return nil
}

// Add dispatches to InsertForward or InsertReverse depending on the record Kind.
func (t *Network) Add(r record.Record) error {
	switch r.Kind {
	case record.Forward:
		return t.InsertForward(r)
	case record.Reverse:
		return t.InsertReverse(r)
	}

	return fmt.Errorf("Add given %s: %w", r, ErrWrongKind)
}

// InsertMeta adds occupant details to the address index.
func (t *Network) InsertMeta(m record.Meta) error {
	if err := t.rangeCheck(m.Address); err != nil {
		return err
	}
	set := t.meta[m.Address]
	if set == nil {
		set = make(record.MetaSet)
		t.meta[m.Address] = set
	}
	set.Add(m)

	return nil
}

// Forward returns the hostname index. Callers must treat it as read-only.
func (t *Network) Forward() map[string]record.Set {
	return t.forward
}

// Reverse returns the address index. Callers must treat it as read-only.
func (t *Network) Reverse() map[netspace.Address]record.Set {
	return t.reverse
}

// Meta returns the metadata at the address, if any. Callers must treat it as read-only.
func (t *Network) Meta(addr netspace.Address) record.MetaSet {
	return t.meta[addr]
}

// Counts returns the total number of forward, reverse and metadata entries.
func (t *Network) Counts() (forward, reverse, meta int) {
	for _, s := range t.forward {
		forward += len(s)
	}
	for _, s := range t.reverse {
		reverse += len(s)
	}
	for _, s := range t.meta {
		meta += len(s)
	}

	return
}
