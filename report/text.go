package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/markdingo/zonecheck/database"
)

// Text writes the plain-text report for each network in turn. A network without
// anomalies produces just its heading.
func Text(w io.Writer, nets ...*database.Network) error {
	var sb strings.Builder
	for _, db := range nets {
		fmt.Fprintf(&sb, "checking %s network\n", db.Space())
		for _, a := range Anomalies(db) {
			writeAnomaly(&sb, a)
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func writeAnomaly(sb *strings.Builder, a Anomaly) {
	switch a.Kind {
	case Duplicate:
		fmt.Fprintf(sb, "duplicated definition:\n\t%s -> %s\n",
			a.Key, strings.Join(a.Found, ", "))
	case Missing:
		fmt.Fprintf(sb, "corresponded %s records not found\n\t%s -> %s\n",
			a.Direction.targetName(), a.Key, a.Target)
	case Mismatch:
		fmt.Fprintf(sb, "correspondence error\n\t%s -> %s -> %s\n",
			a.Key, a.Target, strings.Join(a.Found, ", "))
	}
}

func (t Direction) targetName() string {
	if t == ReverseToForward {
		return "A"
	}

	return "PTR"
}
