package dnsutil

import (
	"fmt"
	"strings"

	"github.com/markdingo/zonecheck/netspace"
)

// InvertPtrToIPv4 extracts and inverts the purported ipv4 address from a reverse
// qName. As a reminder, a dig -x 192.168.1.2 results in a qName of
// 2.1.168.192.in-addr.arpa. The suffix is optional in qName and case is ignored.
//
// The returned bool is true if the address is valid as far as it goes, but is truncated,
// e.g. 1.168.192.in-addr.arpa. returns 192.168.1.0 and true. Truncated addresses are
// left-justified so they represent the base of the implied network.
func InvertPtrToIPv4(qName string) (netspace.Address, bool, error) {
	q := strings.ToLower(qName)
	if !strings.HasSuffix(q, ".") {
		q += "."
	}
	q = strings.TrimSuffix(q, V4Suffix)
	q = strings.TrimSuffix(q, ".")
	if len(q) == 0 {
		return 0, false, fmt.Errorf("Empty reverse ipv4 address qName '%s'", qName)
	}

	reverse := strings.Split(q, ".")
	if len(reverse) > 4 {
		return 0, false, fmt.Errorf("Too many labels in reverse ipv4 address '%s'", qName)
	}

	var a uint32
	for ix := len(reverse) - 1; ix >= 0; ix-- { // Most significant octet is last
		v := convertDecimalOctet(reverse[ix])
		if v == -1 {
			return 0, false, fmt.Errorf("Malformed reverse ipv4 address '%s'", qName)
		}
		a = a<<8 | uint32(v)
	}
	a <<= 8 * uint(4-len(reverse))

	return netspace.Address(a), len(reverse) < 4, nil
}

// convertDecimalOctet strictly converts an ipv4 decimal octet to an int. Return -1 if
// conversion fails. Rules: no leading zeroes, numeric range 0-255, length 1-3 bytes and
// no non-digit characters.
func convertDecimalOctet(s string) (ret int) {
	if len(s) == 0 || len(s) > 3 {
		return -1
	}
	if s[0] == '0' && len(s) > 1 { // Don't allow leading digits
		return -1
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		c -= '0'
		ret *= 10
		ret += int(c)
	}
	if ret > 255 {
		return -1
	}

	return
}
