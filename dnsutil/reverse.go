package dnsutil

import (
	"strconv"
	"strings"

	"github.com/markdingo/zonecheck/netspace"
)

// ReverseZoneName returns the in-addr.arpa. zone which encloses the network. The prefix
// is rounded down to an octet boundary as reverse zones are only delegated on octets,
// thus 192.168.0.0/24 and 192.168.0.128/25 both return "0.168.192.in-addr.arpa." and
// 10.0.0.0/8 returns "10.in-addr.arpa.".
func ReverseZoneName(space netspace.Space) string {
	octets := space.Base().Octets()
	n := space.Prefix() / 8
	labels := make([]string, 0, n)
	for ix := n - 1; ix >= 0; ix-- {
		labels = append(labels, strconv.Itoa(int(octets[ix])))
	}
	if len(labels) == 0 {
		return V4Suffix[1:]
	}

	return strings.Join(labels, ".") + V4Suffix
}

// AddressToReverseQName converts an address into the reverse string normally looked up
// in the reverse path. It includes the reverse suffix and is fully qualified.
func AddressToReverseQName(a netspace.Address) string {
	o := a.Octets()
	return strconv.Itoa(int(o[3])) + "." + strconv.Itoa(int(o[2])) + "." +
		strconv.Itoa(int(o[1])) + "." + strconv.Itoa(int(o[0])) + V4Suffix
}
