package observ

import (
	"strings"
	"testing"
)

func TestTimerTracksPhases(t *testing.T) {
	timer := NewTimer()
	stop := timer.Start("lexing")
	stop("")
	stop = timer.Start("parsing")
	stop("failed")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases: got %d want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "lexing" || report.Phases[1].Name != "parsing" {
		t.Fatalf("phase names: %+v", report.Phases)
	}
	if report.Phases[1].Note != "failed" {
		t.Fatalf("note lost: %+v", report.Phases[1])
	}

	summary := timer.Summary()
	for _, want := range []string{"timings:", "lexing", "parsing", "total", "// failed"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("%q missing from summary:\n%s", want, summary)
		}
	}
}

func TestEmptyTimerReport(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("empty timer report: %+v", report)
	}
}
