package report

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/markdingo/zonecheck/database"
	"github.com/markdingo/zonecheck/dnsutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"join":   func(s []string) string { return strings.Join(s, ", ") },
	"status": Status,
	"ptr":    dnsutil.AddressToReverseQName,
}).ParseFS(templateFS, "templates/*.html"))

const IndexPage = "index.html"

type networkSummary struct {
	Name, Page                         string
	Hosts, Forward, Reverse, Anomalies int
}

type indexData struct {
	Generated         string
	Networks          []networkSummary
	ForwardOnly       []Anomaly
	ReverseOnly       []Anomaly
	ForwardDuplicates []Anomaly
	ReverseDuplicates []Anomaly
	ForwardMismatches []Anomaly
	ReverseMismatches []Anomaly
}

type networkData struct {
	Name string
	Rows []database.Row
}

// PageName returns the file name of the per-network page, e.g. "192.168.0.0.html".
func PageName(db *database.Network) string {
	return db.Space().Base().String() + ".html"
}

// Status classifies a row for presentation: "ok" when the A and PTR hostnames agree,
// "forward-only", "reverse-only", "mismatch" when they disagree, or "" for an unused
// address.
func Status(r database.Row) string {
	switch {
	case len(r.Forward) > 0 && len(r.Reverse) > 0:
		if r.Forward == r.Reverse {
			return "ok"
		}
		return "mismatch"
	case len(r.Forward) > 0:
		return "forward-only"
	case len(r.Reverse) > 0:
		return "reverse-only"
	}

	return ""
}

// HTML writes IndexPage summarizing the anomalies of all networks, plus one page of
// reconciled rows per network, into dir. The paths of the files written are returned in
// the order they were written. Each file is replaced atomically.
func HTML(dir string, nets []*database.Network) ([]string, error) {
	index := indexData{Generated: time.Now().Format(time.RFC1123)}
	var written []string

	for _, db := range nets {
		anomalies := Anomalies(db)
		f, r, _ := db.Counts()
		index.Networks = append(index.Networks, networkSummary{
			Name: db.Space().String(), Page: PageName(db),
			Hosts: int(db.Space().HostCount()), Forward: f, Reverse: r,
			Anomalies: len(anomalies),
		})
		index.add(anomalies)

		path := filepath.Join(dir, PageName(db))
		err := render(path, "network.html", networkData{db.Space().String(), db.Rows()})
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	path := filepath.Join(dir, IndexPage)
	if err := render(path, "index.html", index); err != nil {
		return written, err
	}

	return append(written, path), nil
}

func (t *indexData) add(anomalies []Anomaly) {
	for _, a := range anomalies {
		fwd := a.Direction == ForwardToReverse
		switch {
		case a.Kind == Missing && fwd:
			t.ForwardOnly = append(t.ForwardOnly, a)
		case a.Kind == Missing:
			t.ReverseOnly = append(t.ReverseOnly, a)
		case a.Kind == Duplicate && fwd:
			t.ForwardDuplicates = append(t.ForwardDuplicates, a)
		case a.Kind == Duplicate:
			t.ReverseDuplicates = append(t.ReverseDuplicates, a)
		case a.Kind == Mismatch && fwd:
			t.ForwardMismatches = append(t.ForwardMismatches, a)
		case a.Kind == Mismatch:
			t.ReverseMismatches = append(t.ReverseMismatches, a)
		}
	}
}

// render executes the template into a temporary file which is then renamed over path so
// a browser never sees a partial page.
func render(path, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".zonecheck-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
