package dns

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/miekg/dns"

	"github.com/markdingo/zonecheck/dnsutil"
)

// AxfrServer is a dumb mock server which answers AXFR requests by reading Dir/<zone>.zone
// and sending every RR back followed by the leading SOA. It checks as little as possible
// to do the job.
type AxfrServer struct {
	Dir string

	mu       sync.Mutex
	rcode    int // -1 means serve the zone
	requests int
}

// NewAxfrServer returns a server which serves zones from dir.
func NewAxfrServer(dir string) *AxfrServer {
	return &AxfrServer{Dir: dir, rcode: -1}
}

// SetRcode forces every subsequent response to be an empty reply with the rcode. An rcode
// of -1 reverts to serving zones.
func (t *AxfrServer) SetRcode(rcode int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rcode = rcode
}

// Requests returns the number of queries received.
func (t *AxfrServer) Requests() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests
}

// ServeDNS meets the interface definition for dns.Handler
func (t *AxfrServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	t.mu.Lock()
	t.requests++
	rcode := t.rcode
	t.mu.Unlock()

	if len(q.Question) != 1 || q.Question[0].Qclass != dns.ClassINET ||
		q.Question[0].Qtype != dns.TypeAXFR {
		r := new(dns.Msg)
		r.SetRcode(q, dns.RcodeFormatError)
		wtr.WriteMsg(r)
		return
	}

	if rcode != -1 {
		r := new(dns.Msg)
		r.SetRcode(q, rcode)
		wtr.WriteMsg(r)
		return
	}

	file := filepath.Join(t.Dir, dnsutil.ChompCanonicalName(q.Question[0].Name)+".zone")
	f, err := os.Open(file)
	if err != nil {
		r := new(dns.Msg)
		r.SetRcode(q, dns.RcodeNameError)
		wtr.WriteMsg(r)
		return
	}
	defer f.Close()

	parser := dns.NewZoneParser(f, q.Question[0].Name, file)
	parser.SetDefaultTTL(60) // ZoneParser needs this in case $TTL is absent

	ch := make(chan *dns.Envelope)
	tr := new(dns.Transfer)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		tr.Out(wtr, q, ch)
		wg.Done()
	}()

	var soa dns.RR
	for rr, ok := parser.Next(); ok; rr, ok = parser.Next() {
		ch <- &dns.Envelope{RR: []dns.RR{rr}}
		if soa == nil {
			soa = rr
		}
	}
	if soa == nil {
		panic("Set up error: No SOA in " + file)
	}
	ch <- &dns.Envelope{RR: []dns.RR{soa}}
	close(ch)

	wg.Wait() // wait until everything is written out
}
