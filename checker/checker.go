// Package checker cross-checks the forward and reverse records of a database.Network.
//
// The check is direction-symmetric. Check() is the single implementation and is given the
// source and target indices along with functions which extract each index's key from a
// record. CheckForwardAgainstReverse and CheckReverseAgainstForward are the two
// parameterizations.
//
// All functions are pure computations over a populated Network and have no side-effects,
// so running a check twice on an unmodified Network produces identical Results.
package checker

import (
	"sort"

	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

// Result holds the three classes of anomaly found in one direction. K is the type of the
// source index key: hostname for forward, address for reverse.
type Result[K comparable] struct {
	// Duplicates maps each source key which has two or more records to those records.
	Duplicates map[K]record.Set

	// Missing holds source records whose target key is absent from the target index.
	Missing []record.Record

	// Mismatches maps source records whose target key is present but does not resolve
	// back uniquely to the same source key. The value is the complete target set found.
	Mismatches map[record.Record]record.Set

	keys []K // Source keys in iteration order
}

// Clean returns true if no anomalies were found.
func (t *Result[K]) Clean() bool {
	return len(t.Duplicates) == 0 && len(t.Missing) == 0 && len(t.Mismatches) == 0
}

// Count returns the total number of anomalies.
func (t *Result[K]) Count() int {
	return len(t.Duplicates) + len(t.Missing) + len(t.Mismatches)
}

// DuplicateKeys returns the Duplicates keys in source iteration order.
func (t *Result[K]) DuplicateKeys() []K {
	var ar []K
	for _, k := range t.keys {
		if _, ok := t.Duplicates[k]; ok {
			ar = append(ar, k)
		}
	}

	return ar
}

// MismatchRecords returns the Mismatches keys in canonical record order.
func (t *Result[K]) MismatchRecords() []record.Record {
	ar := make([]record.Record, 0, len(t.Mismatches))
	for r := range t.Mismatches {
		ar = append(ar, r)
	}
	sort.Slice(ar, func(i, j int) bool { return ar[i].Less(ar[j]) })

	return ar
}

// Check cross-checks every record in source against target. sourceKey must return the
// key a record is indexed by in source and targetKey the key it would be indexed by in
// target. keyLess orders the source keys so results are deterministic.
//
// A source record is consistent iff its target key is present, the target set has
// exactly one member and that member's source key equals the source record's source key.
func Check[S, T comparable](source map[S]record.Set, target map[T]record.Set,
	sourceKey func(record.Record) S, targetKey func(record.Record) T,
	keyLess func(a, b S) bool) *Result[S] {

	res := &Result[S]{
		Duplicates: make(map[S]record.Set),
		Mismatches: make(map[record.Record]record.Set),
	}

	res.keys = make([]S, 0, len(source))
	for k := range source {
		res.keys = append(res.keys, k)
	}
	sort.Slice(res.keys, func(i, j int) bool { return keyLess(res.keys[i], res.keys[j]) })

	for _, key := range res.keys {
		records := source[key]
		if len(records) >= 2 {
			res.Duplicates[key] = records.Clone()
		}

		for _, r := range records.Slice() {
			found, ok := target[targetKey(r)]
			if !ok {
				res.Missing = append(res.Missing, r)
				continue
			}
			if !consistent(found, sourceKey(r), sourceKey) {
				res.Mismatches[r] = found.Clone()
			}
		}
	}

	return res
}

func consistent[S comparable](found record.Set, want S, sourceKey func(record.Record) S) bool {
	if len(found) != 1 {
		return false
	}
	for r := range found {
		if sourceKey(r) != want {
			return false
		}
	}

	return true
}

func hostnameOf(r record.Record) string { return r.Hostname }
func addressOf(r record.Record) netspace.Address { return r.Address }

func hostnameLess(a, b string) bool { return a < b }
func addressLess(a, b netspace.Address) bool { return a < b }

// CheckForwardAgainstReverse checks that each A record has exactly one PTR at its address
// and that the PTR names the same host.
func CheckForwardAgainstReverse(db *database.Network) *Result[string] {
	return Check(db.Forward(), db.Reverse(), hostnameOf, addressOf, hostnameLess)
}

// CheckReverseAgainstForward checks that each PTR record has exactly one A record for its
// hostname and that the A record carries the same address.
func CheckReverseAgainstForward(db *database.Network) *Result[netspace.Address] {
	return Check(db.Reverse(), db.Forward(), addressOf, hostnameOf, addressLess)
}
