package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	target, results := sampleResults()
	path := filepath.Join(t.TempDir(), "analysis.json")

	if err := WriteJSON(path, target, 0.2, results); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if export.TargetTicket.Key != "PLAT-1" || export.Threshold != 0.2 {
		t.Errorf("export = %+v", export)
	}
	if export.SimilarCount != 2 || len(export.SimilarTickets) != 2 {
		t.Errorf("similar count = %d, tickets = %d, want 2/2", export.SimilarCount, len(export.SimilarTickets))
	}
	if export.SimilarTickets[0].Breakdown.Final != results[0].Breakdown.Final {
		t.Error("score breakdown lost in export")
	}
	if export.AnalysisDate == "" {
		t.Error("analysis date missing")
	}
}

func TestSummary(t *testing.T) {
	target, results := sampleResults()
	out := Summary(target, results)

	for _, want := range []string{
		"Similarity analysis for PLAT-1",
		"Target: Dashboard filter broken",
		"Similar tickets found: 2",
		"1. PLAT-2 - Dashboard filter slow",
		"Score: 57.7%",
		"Fix: resolved (confidence 90%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryCapsListedTickets(t *testing.T) {
	target, results := sampleResults()
	for len(results) < summaryTopN+3 {
		results = append(results, results[1])
	}

	out := Summary(target, results)
	if !strings.Contains(out, "Similar tickets found: 8") {
		t.Errorf("summary missing total count:\n%s", out)
	}
	if strings.Contains(out, "6. ") {
		t.Errorf("summary lists more than %d tickets:\n%s", summaryTopN, out)
	}
}

func TestWriteSummary(t *testing.T) {
	target, results := sampleResults()
	path := filepath.Join(t.TempDir(), "summary.txt")

	if err := WriteSummary(path, target, results); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Similarity analysis for PLAT-1") {
		t.Errorf("summary file content = %q", data)
	}
}
