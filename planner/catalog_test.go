package planner

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tripforge/tripforge/components"
	"github.com/tripforge/tripforge/tools"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	return NewCatalog(demoConfig(t))
}

func TestSpecsCoverEveryOperation(t *testing.T) {
	specs := testCatalog(t).Specs()
	if len(specs) != len(tools.Ops()) {
		t.Fatalf("specs = %d, want %d", len(specs), len(tools.Ops()))
	}
	for i, op := range tools.Ops() {
		if specs[i].Name != op.Name() {
			t.Errorf("specs[%d] = %s, want %s", i, specs[i].Name, op.Name())
		}
		if specs[i].Description == "" {
			t.Errorf("spec %s has no description", specs[i].Name)
		}
		if specs[i].Parameters["type"] != "object" {
			t.Errorf("spec %s parameters are not an object schema", specs[i].Name)
		}
	}
}

func TestExecuteFlightSearch(t *testing.T) {
	cb := testCatalog(t).Execute(context.Background(), components.ToolCall{
		ID:        "call-1",
		Name:      "flight_search",
		Arguments: `{"source":"Delhi","destination":"Goa"}`,
	})
	if cb.IsError {
		t.Fatalf("unexpected error callback: %s", cb.Content)
	}
	if cb.ID != "call-1" || cb.Name != "flight_search" {
		t.Errorf("callback identity not preserved: %+v", cb)
	}
	if !strings.Contains(cb.Content, "IndiGo") {
		t.Errorf("content: %s", cb.Content)
	}
}

func TestExecuteBudgetReturnsJSON(t *testing.T) {
	cb := testCatalog(t).Execute(context.Background(), components.ToolCall{
		Name:      "budget_calculator",
		Arguments: `{"flight_price":4800,"hotel_price":3200,"nights":4}`,
	})
	if cb.IsError {
		t.Fatalf("unexpected error callback: %s", cb.Content)
	}
	var decoded struct {
		Breakdown struct {
			Total int `json:"total"`
		} `json:"breakdown"`
	}
	if err := json.Unmarshal([]byte(cb.Content), &decoded); err != nil {
		t.Fatalf("budget content is not JSON: %v\n%s", err, cb.Content)
	}
	if decoded.Breakdown.Total != 20800 {
		t.Errorf("total = %d, want 20800", decoded.Breakdown.Total)
	}
}

func TestExecuteEmptyArguments(t *testing.T) {
	cb := testCatalog(t).Execute(context.Background(), components.ToolCall{
		Name: "budget_calculator",
	})
	if cb.IsError {
		t.Fatalf("absent arguments should apply defaults: %s", cb.Content)
	}
}

func TestExecuteRejectsUnknownName(t *testing.T) {
	cb := testCatalog(t).Execute(context.Background(), components.ToolCall{
		ID:   "call-9",
		Name: "teleport_search",
	})
	if !cb.IsError {
		t.Fatal("expected an error callback")
	}
	if !strings.Contains(cb.Content, `unknown operation "teleport_search"`) {
		t.Errorf("content: %s", cb.Content)
	}
}

func TestExecuteRejectsInvalidArguments(t *testing.T) {
	cb := testCatalog(t).Execute(context.Background(), components.ToolCall{
		Name:      "flight_search",
		Arguments: `{"source":"Delhi"}`,
	})
	if !cb.IsError {
		t.Fatal("expected a validation failure")
	}
	if !strings.Contains(cb.Content, "invalid arguments") {
		t.Errorf("content: %s", cb.Content)
	}
}

func TestExecutePreservesToolErrorVerbatim(t *testing.T) {
	cb := testCatalog(t).Execute(context.Background(), components.ToolCall{
		Name:      "weather_lookup",
		Arguments: `{"city":"Atlantis"}`,
	})
	if !cb.IsError {
		t.Fatal("expected an error callback")
	}
	if !strings.Contains(cb.Content, `city "Atlantis" not found in database`) {
		t.Errorf("content: %s", cb.Content)
	}
	if !strings.Contains(cb.Content, "Available cities:") {
		t.Errorf("error should list the known cities: %s", cb.Content)
	}
}
