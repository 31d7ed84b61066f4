/*
Package zone loads forward and reverse records, and occupant metadata, from URLs.

A Source is created from a URL with NewSource(). Three schemes are supported:

	file:///path/to/example.com.zone   (file:///./relative/path for a relative path)
	http://host/path or https://host/path
	axfr://server[:port]/zone-name

Zone files are parsed with github.com/miekg/dns so $ORIGIN, $TTL, $INCLUDE (files only),
comments and relative owner names all work as they would for a name server. An initial
origin can be supplied for file and http sources with an "origin" query parameter, e.g.
file:///./zones/example.com.zone?origin=example.com.

Forward zones contribute every A RR, reduced to the short hostname. Reverse zones
contribute every PTR RR whose owner can be converted to an ipv4 address within the
subnet being loaded. RRs of all other types are counted and ignored, as are malformed
PTR owners. Metadata sources are line oriented, see ParseMetaLine.
*/
package zone
