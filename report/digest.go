package report

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"

	"github.com/markdingo/zonecheck/database"
)

// Fixed keys so digests are comparable across runs and processes. The digest only
// detects change, it is not a security measure.
const (
	digestKey0 = 0x7a6f6e6563686563
	digestKey1 = 0x0123456789abcdef
)

// Digest returns a 64-bit siphash-2-4 of b.
func Digest(b []byte) uint64 {
	return siphash.Hash(digestKey0, digestKey1, b)
}

// Fingerprint returns the digest of everything which is published: the text report plus
// every reconciled row of every network. The text report only lists anomalies so a new
// consistent host or an edited room changes the Fingerprint but not the report.
func Fingerprint(text []byte, nets ...*database.Network) uint64 {
	key := make([]byte, 16)
	binary.LittleEndian.PutUint64(key, digestKey0)
	binary.LittleEndian.PutUint64(key[8:], digestKey1)
	h := siphash.New(key)
	h.Write(text)
	for _, db := range nets {
		fmt.Fprintf(h, "network %s\n", db.Space())
		db.Walk(func(r database.Row) bool {
			if !r.Empty() {
				fmt.Fprintf(h, "%s\t%q\t%q\t%q\t%q\t%q\t%q\n", r.Address,
					r.Forward, r.Reverse, r.MetaHostname, r.Class, r.Room, r.Comment)
			}
			return true
		})
	}

	return h.Sum64()
}
