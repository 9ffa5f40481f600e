package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sparkfront/semfront/internal/source"
)

// ColorMode controls whether Reporter emits ANSI color codes.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Reporter accumulates DiagnosticErrors and renders them as they are
// emitted. ColorAlways and ColorNever force color on or off; under
// ColorAuto, color is enabled only when the file given to NewReporter is
// a real terminal, checked the same way the teacher's evaluator checks
// before emitting escape codes for REPL output.
type Reporter struct {
	w          io.Writer
	color      bool
	indent     int
	errorCount int
	fatalSeen  bool
	errors     []*DiagnosticError
}

// NewReporter builds a Reporter writing to w. mode picks whether color
// is forced on/off or auto-detected via isatty against f (pass the
// *os.File backing w, or nil to force no-color detection).
func NewReporter(w io.Writer, f *os.File, mode ColorMode) *Reporter {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	default:
		if f != nil {
			color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Reporter{w: w, color: color}
}

// Sink is a tiny per-message builder, matching the original Reporter's
// streaming diagnostic API: one Sink per call site, flushed atomically
// when the message is complete.
type Sink struct {
	r        *Reporter
	severity Severity
	code     ErrorCode
	loc      *source.Location
	parts    []string
}

func (s *Sink) WithCode(c ErrorCode) *Sink { s.code = c; return s }

// Write appends text to the message being composed.
func (s *Sink) Write(format string, args ...interface{}) *Sink {
	s.parts = append(s.parts, fmt.Sprintf(format, args...))
	return s
}

// Emit flushes the composed message: records it (if it is an error or
// fatal) and prints it.
func (s *Sink) Emit() *DiagnosticError {
	msg := strings.Join(s.parts, "")
	de := &DiagnosticError{Code: s.code, Severity: s.severity, Message: msg, Location: s.loc}
	if s.severity == SeverityError || s.severity == SeverityFatal {
		s.r.errorCount++
		s.r.errors = append(s.r.errors, de)
	}
	s.r.print(de)
	return de
}

func (r *Reporter) newSink(sev Severity, loc *source.Location) *Sink {
	return &Sink{r: r, severity: sev, loc: loc}
}

func (r *Reporter) Status() *Sink { return r.newSink(SeverityStatus, nil) }
func (r *Reporter) Info() *Sink   { return r.newSink(SeverityInfo, nil) }
func (r *Reporter) Debug() *Sink  { return r.newSink(SeverityDebug, nil) }

// Error starts a recoverable-error message, optionally positioned.
func (r *Reporter) Error(loc *source.Location) *Sink { return r.newSink(SeverityError, loc) }

// Fatal starts a fatal message; the caller must still stop the
// operation itself — Reporter only records and prints.
func (r *Reporter) Fatal(loc *source.Location) *Sink {
	r.fatalSeen = true
	return r.newSink(SeverityFatal, loc)
}

func (r *Reporter) Indent()   { r.indent++ }
func (r *Reporter) Unindent() {
	if r.indent > 0 {
		r.indent--
	}
}

func (r *Reporter) ErrorCount() int { return r.errorCount }
func (r *Reporter) HasErrors() bool { return r.errorCount > 0 }
func (r *Reporter) Errors() []*DiagnosticError {
	out := make([]*DiagnosticError, len(r.errors))
	copy(out, r.errors)
	return out
}

var severityColor = map[Severity]string{
	SeverityError:  "\x1b[31m",
	SeverityFatal:  "\x1b[1;31m",
	SeverityInfo:   "\x1b[36m",
	SeverityDebug:  "\x1b[90m",
	SeverityStatus: "\x1b[32m",
}

const colorReset = "\x1b[0m"

func (r *Reporter) print(de *DiagnosticError) {
	prefix := strings.Repeat("  ", r.indent)
	line := de.Error()
	if r.color {
		fmt.Fprintf(r.w, "%s%s%s%s\n", prefix, severityColor[de.Severity], line, colorReset)
		return
	}
	fmt.Fprintf(r.w, "%s%s\n", prefix, line)
}
