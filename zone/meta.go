package zone

import (
	"bufio"
	"errors"
	"regexp"
	"strings"

	"github.com/markdingo/zonecheck/netspace"
	"github.com/markdingo/zonecheck/record"
)

var ErrNotMeta = errors.New("not a metadata line")

// address|hostname|class|room|comment - address is mandatory, the rest may be empty and
// are trimmed of surrounding white-space.
var (
	metaRegex = regexp.MustCompile(
		`^\s*(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\s*\|` +
			`\s*([^\s|]*)\s*\|` +
			`([^|]*)\|` +
			`([^|]*)\|` +
			`([^|]*)$`)
	ignoredRegex = regexp.MustCompile(`^\s*(#|$)`)
)

// IsIgnoredMetaLine returns true for blank lines and comment lines starting with '#'.
func IsIgnoredMetaLine(line string) bool {
	return ignoredRegex.MatchString(line)
}

// ParseMetaLine converts one pipe-delimited line into a record.Meta.
func ParseMetaLine(line string) (record.Meta, error) {
	m := metaRegex.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return record.Meta{}, ErrNotMeta
	}
	addr, err := netspace.ParseAddress(m[1])
	if err != nil {
		return record.Meta{}, ErrNotMeta
	}

	return record.Meta{
		Address:  addr,
		Hostname: strings.TrimSpace(m[2]),
		Class:    strings.TrimSpace(m[3]),
		Room:     strings.TrimSpace(m[4]),
		Comment:  strings.TrimSpace(m[5]),
	}, nil
}

// LoadMeta reads a metadata file and calls fn for every parsable line. Ignored lines are
// not counted, unparsable lines are counted in Skipped.
func (t *Source) LoadMeta(fn func(record.Meta)) error {
	t.resetCounters()
	rdr, err := t.open()
	if err != nil {
		return err
	}
	defer rdr.Close()

	scanner := bufio.NewScanner(rdr)
	for scanner.Scan() {
		line := scanner.Text()
		t.Lines++
		if IsIgnoredMetaLine(line) {
			continue
		}
		m, err := ParseMetaLine(line)
		if err != nil {
			t.Skipped++
			continue
		}
		t.Added++
		fn(m)
	}

	return scanner.Err()
}
