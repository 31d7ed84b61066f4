package dnsutil

import (
	"sort"
	"strconv"
	"strings"

	"github.com/miekg/dns"
)

// TypeToString converts an miekg type to its mnemonic, but if miekg doesn't know the type
// the rfc3597 form of "TYPEnnn" is returned.
func TypeToString(t uint16) string {
	if s, ok := dns.TypeToString[t]; ok {
		return s
	}

	return "TYPE" + strconv.Itoa(int(t))
}

// TypeCounts tallies RRs by type. The zero value is not usable, use make().
type TypeCounts map[uint16]int

func (t TypeCounts) Add(rr dns.RR) {
	t[rr.Header().Rrtype]++
}

// String returns the counts in mnemonic order, e.g. "AAAA=1 CNAME=2 NS=1". An empty
// TypeCounts returns "".
func (t TypeCounts) String() string {
	ar := make([]string, 0, len(t))
	for rrtype, count := range t {
		ar = append(ar, TypeToString(rrtype)+"="+strconv.Itoa(count))
	}
	sort.Strings(ar)

	return strings.Join(ar, " ")
}
