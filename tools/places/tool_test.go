package places

import (
	"context"
	"strings"
	"testing"
)

func TestRunFiltersByCity(t *testing.T) {
	tool := New()
	out, err := tool.Run(context.Background(), NewInput("Goa", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 5 {
		t.Fatalf("expected 5 Goa attractions, got %d", len(out.Results))
	}
	if out.Results[0].Name != "Dudhsagar Falls" {
		t.Errorf("highest-rated attraction first, got %s", out.Results[0].Name)
	}
}

func TestRunFiltersByCategory(t *testing.T) {
	tool := New()
	out, err := tool.Run(context.Background(), NewInput("Goa", "beach"))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 1 || out.Results[0].Name != "Baga Beach" {
		t.Fatalf("expected only Baga Beach for category beach, got %v", out.Results)
	}
}

func TestRunNoMatches(t *testing.T) {
	tool := New()
	out, err := tool.Run(context.Background(), NewInput("Atlantis", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 0 {
		t.Fatalf("expected no attractions, got %d", len(out.Results))
	}
	if report := out.Report(); !strings.Contains(report, "No attractions found in Atlantis") {
		t.Errorf("unexpected empty report: %s", report)
	}
}

func TestReportListsEveryResult(t *testing.T) {
	tool := New()
	out, err := tool.Run(context.Background(), NewInput("Goa", ""))
	if err != nil {
		t.Fatal(err)
	}
	report := out.Report()
	for _, p := range out.Results {
		if !strings.Contains(report, p.Name) {
			t.Errorf("report missing %s", p.Name)
		}
	}
}
