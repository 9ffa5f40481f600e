package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sparkfront/semfront/internal/source"
)

func TestReporterCountsOnlyErrorsAndFatals(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, ColorNever)

	r.Info().Write("just info").Emit()
	r.Error(nil).WithCode(NotFound).Write("boom").Emit()
	r.Debug().Write("just debug").Emit()

	if r.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", r.ErrorCount())
	}
	if !r.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want one entry", r.Errors())
	}
	if r.Errors()[0].Code != NotFound {
		t.Errorf("recorded error code = %v, want NotFound", r.Errors()[0].Code)
	}
}

func TestReporterNeverColorsWhenForcedOff(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, ColorNever)
	r.Error(nil).WithCode(NotFound).Write("plain").Emit()
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output should contain no ANSI escapes with ColorNever: %q", buf.String())
	}
}

func TestReporterAlwaysColorsWhenForcedOn(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, ColorAlways)
	r.Error(nil).WithCode(NotFound).Write("colored").Emit()
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output should contain ANSI escapes with ColorAlways: %q", buf.String())
	}
}

func TestDiagnosticErrorStringIncludesLocationAndCode(t *testing.T) {
	loc := &source.Location{File: "f.sp", StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 3}
	de := &DiagnosticError{Code: NotFound, Severity: SeverityError, Message: "missing", Location: loc}
	got := de.Error()
	if !strings.Contains(got, "f.sp:1:2-3") || !strings.Contains(got, "missing") || !strings.Contains(got, "R001") {
		t.Errorf("Error() = %q, want it to mention location, message and code", got)
	}
}

func TestIndentUnindentDoesNotGoNegative(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, ColorNever)
	r.Unindent()
	r.Indent()
	r.Unindent()
	r.Unindent()
	if r.indent != 0 {
		t.Errorf("indent = %d, want 0", r.indent)
	}
}
