package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

var (
	prefixes = [...]string{
		MajorLevel: "",
		MinorLevel: "  ",
		DebugLevel: "   Dbg:",
	}

	out   io.Writer = os.Stdout
	level           = MajorLevel
)

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stdout. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for output which is not controlled by log levels,
// such as reports. The return value will never be nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level. The default is MajorLevel.
func SetLevel(l logLevel) {
	level = l
}

func Level() logLevel {
	return level
}

// IfMajor returns true if Major logging is written to the output stream. Callers can use
// the If* functions when evaluating the log arguments is expensive.
func IfMajor() bool {
	return level >= MajorLevel
}

func IfMinor() bool {
	return level >= MinorLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Major provides a fmt.Print like interface to logging. Output is only generated if the
// level is >= Major. Major uses fmt.Sprint so it inherits the feature whereby spaces are
// added between operands when neither is a string.
func Major(a ...interface{}) (int, error) {
	return emit(MajorLevel, fmt.Sprint(a...))
}

// Majorf provides a fmt.Printf like interface to logging.
func Majorf(format string, a ...interface{}) (int, error) {
	return emit(MajorLevel, fmt.Sprintf(format, a...))
}

func Minor(a ...interface{}) (int, error) {
	return emit(MinorLevel, fmt.Sprint(a...))
}

func Minorf(format string, a ...interface{}) (int, error) {
	return emit(MinorLevel, fmt.Sprintf(format, a...))
}

func Debug(a ...interface{}) (int, error) {
	return emit(DebugLevel, fmt.Sprint(a...))
}

func Debugf(format string, a ...interface{}) (int, error) {
	return emit(DebugLevel, fmt.Sprintf(format, a...))
}

// Report writes a severity-prefixed message regardless of the current level, e.g.
//
//	Warning: PTR zone load failed: open x.rev: no such file or directory
//
// Messages are space-joined and the error, if any, is appended last.
func Report(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(out, msg)
}

func emit(l logLevel, s string) (int, error) {
	if level < l {
		return 0, nil
	}

	return prefixAndPrintLines(s, prefixes[l])
}

// prefixAndPrintLines takes potentially multiple lines and sends them to the out stream
// each prefixed with the supplied prefix.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	if !strings.Contains(lines, "\n") { // Expect this to be the common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")
	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	return fmt.Fprint(out, prefix, strings.Join(ar, "\n"+prefix), "\n")
}
