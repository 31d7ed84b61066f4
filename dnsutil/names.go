package dnsutil

import (
	"github.com/miekg/dns"
)

// ChompCanonicalName makes the name canonical but loses the trailing dot. For logging and
// file names derived from zone names, the trailing dot is more of a hinderance than a
// help.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}

// ShortName returns the first label of a domain name in lower case, thus
// "Host1.Example.Com." returns "host1". The root or an empty name returns "".
func ShortName(n string) string {
	labels := dns.SplitDomainName(dns.CanonicalName(n))
	if len(labels) == 0 {
		return ""
	}

	return labels[0]
}
