package netspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCIDR = errors.New("malformed CIDR")

// Space is one ipv4 network. Construct with Parse().
type Space struct {
	base   Address
	prefix int
}

// Parse converts "a.b.c.d/n" into a Space. The base address is the supplied address with
// all host bits cleared, so a non-aligned address is normalized rather than rejected.
func Parse(cidr string) (Space, error) {
	addrStr, prefixStr, found := strings.Cut(cidr, "/")
	if !found {
		return Space{}, fmt.Errorf("'%s' has no prefix length: %w", cidr, ErrMalformedCIDR)
	}
	addr, err := ParseAddress(addrStr)
	if err != nil {
		return Space{}, fmt.Errorf("'%s' %s: %w", cidr, err.Error(), ErrMalformedCIDR)
	}
	prefix, err := strconv.Atoi(prefixStr)
	if err != nil || prefix < 0 || prefix > 32 || prefixStr[0] < '0' || prefixStr[0] > '9' {
		return Space{}, fmt.Errorf("'%s' prefix length must be 0-32: %w",
			cidr, ErrMalformedCIDR)
	}

	return Space{base: addr & mask(prefix), prefix: prefix}, nil
}

// MustParse is Parse which panics on error. Intended for tests.
func MustParse(cidr string) Space {
	s, err := Parse(cidr)
	if err != nil {
		panic(err)
	}

	return s
}

// mask returns the network mask for the prefix length. Shifting a uint32 by 32 yields
// zero in Go, which is exactly the /0 mask.
func mask(prefix int) Address {
	return Address(^uint32(0) << uint(32-prefix))
}

// Base returns the network-aligned base address.
func (t Space) Base() Address {
	return t.base
}

// Prefix returns the prefix length.
func (t Space) Prefix() int {
	return t.prefix
}

// String returns the canonical CIDR form of the network, e.g. "192.168.0.0/24".
func (t Space) String() string {
	return t.base.String() + "/" + strconv.Itoa(t.prefix)
}

// Contains returns true if the address shares the network bits of the Space.
func (t Space) Contains(a Address) bool {
	m := mask(t.prefix)
	return a&m == t.base&m
}

// maxPrealloc caps slice pre-allocation for very large Spaces. Beyond it append() grows
// the slice as needed.
const maxPrealloc = 1 << 16

// size returns the total number of addresses in the Space including network and
// broadcast. A uint64 because a /0 holds 2^32 addresses.
func (t Space) size() uint64 {
	return uint64(1) << uint(32-t.prefix)
}

// HostCount returns the number of usable host addresses. Network and broadcast are
// excluded so a /31 or /32 has no hosts. The largest value, 2^32-2 for a /0, fits in a
// uint32 on every platform whereas it does not fit in a 32-bit int.
func (t Space) HostCount() uint32 {
	n := t.size()
	if n <= 2 {
		return 0
	}

	return uint32(n - 2)
}

// EachHost calls fn with every usable host address in ascending order starting at
// base+1. EachHost stops early if fn returns false. Nothing is allocated so it is the
// better choice for large Spaces.
func (t Space) EachHost(fn func(Address) bool) {
	n := t.HostCount()
	for off := uint32(1); off <= n; off++ {
		if !fn(t.AddressAt(off)) {
			return
		}
	}
}

// Hosts returns all usable host addresses in ascending order starting at base+1.
func (t Space) Hosts() []Address {
	hosts := make([]Address, 0, min(t.HostCount(), maxPrealloc))
	t.EachHost(func(a Address) bool {
		hosts = append(hosts, a)
		return true
	})

	return hosts
}

// AddressAt returns base+offset. This is how reverse records which only encode the final
// octet(s) are resolved to a full address. No range check is made; the caller uses
// Contains() if that matters.
func (t Space) AddressAt(offset uint32) Address {
	return t.base + Address(offset)
}
