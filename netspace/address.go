package netspace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var ErrMalformedAddress = errors.New("malformed ipv4 address")

// Address is an ipv4 address in host byte order. The zero value is 0.0.0.0.
type Address uint32

// ParseAddress strictly converts a dotted-quad string into an Address. Each octet must be
// 1-3 decimal digits in the range 0-255 with no leading zeroes and no surrounding
// white-space.
func ParseAddress(s string) (Address, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return 0, fmt.Errorf("'%s': %w", s, ErrMalformedAddress)
	}

	var a uint32
	for _, o := range octets {
		v := convertDecimalOctet(o)
		if v == -1 {
			return 0, fmt.Errorf("'%s': %w", s, ErrMalformedAddress)
		}
		a = a<<8 | uint32(v)
	}

	return Address(a), nil
}

// MustParseAddress is ParseAddress which panics on error. Intended for tests and
// constant tables.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}

	return a
}

// FromIP converts an ipv4 net.IP into an Address. False is returned for anything which is
// not an ipv4 address.
func FromIP(ip net.IP) (Address, bool) {
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, false
	}

	return Address(binary.BigEndian.Uint32(ip4)), true
}

// String returns the canonical dotted-quad form.
func (t Address) String() string {
	var b [15]byte
	buf := b[:0]
	buf = strconv.AppendUint(buf, uint64(t>>24), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(t>>16&0xff), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(t>>8&0xff), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(t&0xff), 10)

	return string(buf)
}

// Octets returns the four octets in network order, i.e. 192.168.0.1 returns
// [192 168 0 1].
func (t Address) Octets() [4]byte {
	return [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

// convertDecimalOctet strictly converts an ipv4 decimal octet to an int. Return -1 if
// conversion fails. Rules: no leading zeroes, numeric range 0-255, length 1-3 bytes and
// no non-digit characters.
func convertDecimalOctet(s string) (ret int) {
	if len(s) == 0 || len(s) > 3 {
		return -1
	}
	if s[0] == '0' && len(s) > 1 {
		return -1
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		ret = ret*10 + int(c-'0')
	}
	if ret > 255 {
		return -1
	}

	return
}
