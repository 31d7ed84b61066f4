package zone

import (
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/zonecheck/dnsutil"
	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

// LoadForward parses the source as a forward zone and calls fn with a Forward Record for
// every ipv4 A RR.
func (t *Source) LoadForward(fn func(record.Record)) error {
	t.resetCounters()

	return t.eachRR("", func(rr dns.RR) {
		a, ok := rr.(*dns.A)
		if !ok {
			t.skipType(rr)
			return
		}
		if !t.inZone(rr) {
			t.Skipped++
			return
		}
		addr, ok := netspace.FromIP(a.A)
		host := dnsutil.ShortName(a.Hdr.Name)
		if !ok || len(host) == 0 {
			t.Skipped++
			return
		}
		t.Added++
		fn(record.NewForward(host, addr))
	})
}

// LoadReverse parses the source as the reverse zone for space and calls fn with a Reverse
// Record for every PTR RR. The initial origin is the in-addr.arpa. zone enclosing space
// so relative owner names such as "1" are resolved naturally.
//
// An owner which is not a complete in-addr.arpa. name has its first label treated as a
// host offset within space, except for RFC 2317 classless owners where the first label
// is the final octet. Records are not range checked here, that is the job of
// database.Network.
func (t *Source) LoadReverse(space netspace.Space, fn func(record.Record)) error {
	t.resetCounters()

	return t.eachRR(dnsutil.ReverseZoneName(space), func(rr dns.RR) {
		ptr, ok := rr.(*dns.PTR)
		if !ok {
			t.skipType(rr)
			return
		}
		addr, ok := ptrAddress(space, ptr.Hdr.Name)
		host := dnsutil.ShortName(ptr.Ptr)
		if !ok || len(host) == 0 {
			t.Skipped++
			return
		}
		t.Added++
		fn(record.NewReverse(host, addr))
	})
}

func (t *Source) skipType(rr dns.RR) {
	t.Skipped++
	t.SkippedTypes.Add(rr)
}

// inZone returns false for an AXFR'd RR whose owner is outside the transferred zone. Name
// servers do not normally send these, but they are not ours to check if they do.
func (t *Source) inZone(rr dns.RR) bool {
	if t.scheme != axfrScheme {
		return true
	}

	return dns.IsSubDomain(t.domain, rr.Header().Name)
}

func ptrAddress(space netspace.Space, owner string) (netspace.Address, bool) {
	addr, truncated, err := dnsutil.InvertPtrToIPv4(owner)
	if err == nil && !truncated {
		return addr, true
	}

	labels := dns.SplitDomainName(owner)
	if len(labels) == 0 {
		return 0, false
	}

	// RFC 2317 classless owners such as 130.128/25.0.168.192.in-addr.arpa. carry the
	// final octet, not an offset from the base.
	if len(labels) > 1 && strings.ContainsAny(labels[1], "/-") {
		octet, err := strconv.ParseUint(labels[0], 10, 8)
		if err != nil {
			return 0, false
		}
		return space.Base()&^0xff | netspace.Address(octet), true
	}

	offset, err := strconv.ParseUint(labels[0], 10, 32)
	if err != nil {
		return 0, false
	}

	return space.AddressAt(uint32(offset)), true
}
