package zone

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/zonecheck/dnsutil"
)

const defaultService = "domain"

type scheme int

const (
	fileScheme scheme = iota
	httpScheme
	axfrScheme
)

func (t scheme) String() string {
	switch t {
	case fileScheme:
		return "file"
	case httpScheme:
		return "http"
	case axfrScheme:
		return "axfr"
	}

	return "?"
}

// Source manages the loading and reloading of one URL.
type Source struct {
	url                      string // As supplied to NewSource
	host, port, path, domain string // Extracted from url.Parse()
	origin                   string // Initial $ORIGIN for the zone parser
	scheme                   scheme

	SOA      dns.SOA   // First RR of the most recent load, if it was an SOA
	DTM      time.Time // Last modified or last loaded
	LoadTime time.Time

	Lines        int                // RRs or lines seen by the most recent load
	Added        int                // Records handed to the caller
	Skipped      int                // Irrelevant or malformed
	SkippedTypes dnsutil.TypeCounts // Skipped RRs which were of the wrong type
}

// NewSource parses and validates the URL but does not access it.
func NewSource(s string) (*Source, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	src := &Source{
		url:  s,
		host: u.Hostname(),
		port: u.Port(),
		path: u.Path,
	}
	if o := u.Query().Get("origin"); len(o) > 0 {
		src.origin = dns.Fqdn(o)
	}

	switch u.Scheme {
	case "file":
		src.scheme = fileScheme
		if len(src.path) == 0 {
			return nil, errors.New(u.Scheme + " URL must contain a file system path")
		}
		if len(src.host) > 0 || len(src.port) > 0 {
			return nil, errors.New(u.Scheme + " URL cannot contain a host or port")
		}

		// url.Path always starts at the first byte past the hostname, which by
		// definition is a "/", so "/./" is the only way to express a relative path.
		if strings.HasPrefix(src.path, "/./") {
			src.path = src.path[1:]
		}

	case "http", "https":
		src.scheme = httpScheme
		if len(src.host) == 0 {
			return nil, errors.New(u.Scheme + " URL must contain a host name")
		}
		if len(src.path) == 0 {
			return nil, errors.New(u.Scheme + " URL path must contain a file name")
		}

	case "axfr":
		src.scheme = axfrScheme
		if len(src.host) == 0 {
			return nil, errors.New(u.Scheme + " URL host must contain a name server name")
		}
		src.path = strings.TrimPrefix(src.path, "/") // Path is zone name
		if len(src.path) == 0 {
			return nil, errors.New(u.Scheme + " URL path must contain a zone name")
		}
		src.domain = dns.CanonicalName(src.path)
		if len(src.port) == 0 {
			src.port = defaultService
		}

	default:
		return nil, errors.New(u.Scheme + " is not a supported scheme")
	}

	return src, nil
}

// URL returns the URL as supplied to NewSource.
func (t *Source) URL() string {
	return t.url
}

// Scheme returns "file", "http" or "axfr". https URLs are reported as "http".
func (t *Source) Scheme() string {
	return t.scheme.String()
}

// Name returns a short name suitable for logging.
func (t *Source) Name() string {
	if t.scheme == axfrScheme {
		return t.domain
	}

	return t.path
}

func (t *Source) resetCounters() {
	t.Lines, t.Added, t.Skipped = 0, 0, 0
	t.SkippedTypes = make(dnsutil.TypeCounts)
	t.SOA = dns.SOA{}
	t.LoadTime = time.Now()
}

// open returns a reader for file and http sources and sets the DTM.
func (t *Source) open() (io.ReadCloser, error) {
	switch t.scheme {
	case fileScheme:
		f, err := os.Open(t.path)
		if err != nil {
			return nil, err
		}
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		t.DTM = fi.ModTime()
		return f, nil

	case httpScheme:
		resp, err := http.Get(t.url)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.New(resp.Status)
		}
		t.DTM = time.Now() // No reliable DTM over http
		return resp.Body, nil
	}

	return nil, fmt.Errorf("%s scheme is not line oriented", t.scheme)
}

// eachRR delivers every RR in the zone to fn. origin is only used if the URL did not
// supply one.
func (t *Source) eachRR(origin string, fn func(dns.RR)) error {
	if t.scheme == axfrScheme {
		return t.eachRRFromAXFR(fn)
	}

	rdr, err := t.open()
	if err != nil {
		return err
	}
	defer rdr.Close()

	if len(t.origin) > 0 {
		origin = t.origin
	}
	parser := dns.NewZoneParser(rdr, origin, t.path)
	parser.SetIncludeAllowed(t.scheme == fileScheme)
	parser.SetDefaultTTL(uint32(time.Hour.Seconds())) // In case $TTL is absent

	for rr, ok := parser.Next(); ok; rr, ok = parser.Next() {
		t.noteRR(rr)
		fn(rr)
	}

	return parser.Err()
}

func (t *Source) eachRRFromAXFR(fn func(dns.RR)) error {
	transfer := &dns.Transfer{}
	req := new(dns.Msg)
	req.SetAxfr(t.domain)
	host := net.JoinHostPort(t.host, t.port)
	channel, err := transfer.In(req, host)
	if err != nil {
		return fmt.Errorf("Failed to fetch '%s' from %s:%w", t.domain, host, err)
	}
	t.DTM = time.Now()

	var rcvd bool
	for env := range channel {
		if env.Error != nil {
			return env.Error
		}
		for _, rr := range env.RR {
			if rcvd && rr.Header().Rrtype == dns.TypeSOA { // Closing SOA
				continue
			}
			rcvd = true
			t.noteRR(rr)
			fn(rr)
		}
	}

	return nil
}

// noteRR counts the RR and captures the SOA if it's first.
func (t *Source) noteRR(rr dns.RR) {
	t.Lines++
	if soa, ok := rr.(*dns.SOA); ok && t.Lines == 1 {
		t.SOA = *soa
	}
}

// Changed returns true if the source should be reloaded. File sources are reloaded when
// their DTM advances. Remote sources are reloaded when the SOA refresh interval has
// expired; a zone without an SOA is reloaded every time.
func (t *Source) Changed(now time.Time) bool {
	switch t.scheme {
	case fileScheme:
		fi, err := os.Stat(t.path)
		if err != nil {
			return true // Let the load report the problem
		}
		return fi.ModTime().After(t.DTM)

	case axfrScheme, httpScheme:
		next := t.LoadTime.Add(time.Second * time.Duration(t.SOA.Refresh))
		return now.After(next)
	}

	return false
}
