package report

import (
	"github.com/markdingo/zonecheck/checker"
	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

// Direction identifies which index was the source of a check.
type Direction string

const (
	ForwardToReverse Direction = "A->PTR"
	ReverseToForward Direction = "PTR->A"
)

// Kind is the class of anomaly.
type Kind string

const (
	Duplicate Kind = "duplicate"
	Missing   Kind = "missing"
	Mismatch  Kind = "mismatch"
)

// Anomaly is one checker finding flattened to strings so it can be printed, rendered and
// stored without regard to direction.
//
// For a Duplicate, Key is the duplicated source key and Found the target attributes of
// the duplicate records. For a Missing, Key and Target are the source and target
// attributes of the record without a correspondent. For a Mismatch, Found holds the
// source attributes of the target records actually found.
type Anomaly struct {
	Network   string
	Direction Direction
	Kind      Kind
	Key       string
	Target    string
	Found     []string
}

// Anomalies runs both checks over db and returns the findings in a stable order: A->PTR
// before PTR->A and within each direction duplicates, then missing, then mismatches.
func Anomalies(db *database.Network) []Anomaly {
	network := db.Space().String()
	fwd := checker.CheckForwardAgainstReverse(db)
	rev := checker.CheckReverseAgainstForward(db)

	var ar []Anomaly
	ar = appendResult(ar, network, ForwardToReverse, fwd,
		func(k string) string { return k }, hostnameOf, addressOf)
	ar = appendResult(ar, network, ReverseToForward, rev,
		netspace.Address.String, addressOf, hostnameOf)

	return ar
}

func hostnameOf(r record.Record) string { return r.Hostname }
func addressOf(r record.Record) string  { return r.Address.String() }

func appendResult[K comparable](ar []Anomaly, network string, dir Direction,
	res *checker.Result[K], keyString func(K) string,
	sourceAttr, targetAttr func(record.Record) string) []Anomaly {

	for _, k := range res.DuplicateKeys() {
		ar = append(ar, Anomaly{Network: network, Direction: dir, Kind: Duplicate,
			Key: keyString(k), Found: attrs(res.Duplicates[k], targetAttr)})
	}
	for _, r := range res.Missing {
		ar = append(ar, Anomaly{Network: network, Direction: dir, Kind: Missing,
			Key: sourceAttr(r), Target: targetAttr(r)})
	}
	for _, r := range res.MismatchRecords() {
		ar = append(ar, Anomaly{Network: network, Direction: dir, Kind: Mismatch,
			Key: sourceAttr(r), Target: targetAttr(r),
			Found: attrs(res.Mismatches[r], sourceAttr)})
	}

	return ar
}

func attrs(s record.Set, fn func(record.Record) string) []string {
	recs := s.Slice()
	ar := make([]string, 0, len(recs))
	for _, r := range recs {
		ar = append(ar, fn(r))
	}

	return ar
}
