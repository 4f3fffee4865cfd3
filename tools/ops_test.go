package tools

import (
	"strings"
	"testing"
)

func TestOpNamesRoundTrip(t *testing.T) {
	for _, op := range Ops() {
		got, err := OpFromName(op.Name())
		if err != nil {
			t.Fatalf("OpFromName(%q): %v", op.Name(), err)
		}
		if got != op {
			t.Errorf("OpFromName(%q) = %v, want %v", op.Name(), got, op)
		}
	}
}

func TestOpFromNameRejectsUnknown(t *testing.T) {
	_, err := OpFromName("teleport_search")
	if err == nil {
		t.Fatal("expected rejection of an unknown name")
	}
	if !strings.Contains(err.Error(), "teleport_search") {
		t.Errorf("error should carry the rejected name: %v", err)
	}
}

func TestOpsOrder(t *testing.T) {
	want := []string{"flight_search", "hotel_search", "weather_lookup", "places_search", "budget_calculator"}
	ops := Ops()
	if len(ops) != len(want) {
		t.Fatalf("catalog has %d operations, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Name() != want[i] {
			t.Errorf("ops[%d] = %s, want %s", i, op.Name(), want[i])
		}
	}
}
