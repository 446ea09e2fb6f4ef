package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Label: "Exporting pages", Out: &buf}

	r.Start(2)
	r.Step(1, "page1")
	r.Step(2, "page2")
	r.Finish()

	want := "Exporting pages: 2 page(s)\n[1/2] page1\n[2/2] page2\nExporting pages: done\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestBarReporterWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	r := &BarReporter{Label: "Exporting pages", Out: &buf}

	r.Step(1, "ignored before start")
	r.Start(1)
	r.Step(1, "page1")
	r.Finish()

	if !strings.Contains(buf.String(), "Exporting pages") {
		t.Errorf("bar output missing label: %q", buf.String())
	}
}

func TestNewRespectsCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := New("x").(*LineReporter); !ok {
		t.Error("expected LineReporter under CI")
	}
}
