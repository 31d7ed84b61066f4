package mock

import (
	"strings"
)

// IOWriter accumulates everything written to it. Handy for capturing log and report
// output in tests.
type IOWriter struct {
	line []byte
}

func (t *IOWriter) Reset() {
	t.line = t.line[:0]
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.line = append(t.line, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	return string(t.line)
}

func (t *IOWriter) Len() int {
	return len(t.line)
}

// Lines returns the accumulated output split on newlines with any trailing empty line
// removed.
func (t *IOWriter) Lines() []string {
	s := strings.TrimSuffix(string(t.line), "\n")
	if len(s) == 0 {
		return nil
	}

	return strings.Split(s, "\n")
}
