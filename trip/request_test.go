package trip

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	ts, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestParseDate(t *testing.T) {
	ts, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Year() != 2024 || ts.Month() != time.March || ts.Day() != 1 {
		t.Errorf("parsed %v", ts)
	}
	if _, err := ParseDate("01-03-2024"); err == nil {
		t.Error("expected rejection of a non-ISO date")
	}
}

func TestValidate(t *testing.T) {
	valid := Request{
		Source:      "Delhi",
		Destination: "Goa",
		StartDate:   date("2024-03-01"),
		EndDate:     date("2024-03-04"),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	missing := valid
	missing.Destination = ""
	if err := missing.Validate(); err == nil {
		t.Error("missing destination should be rejected")
	}

	inverted := valid
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	if err := inverted.Validate(); err == nil {
		t.Error("end date before start date should be rejected")
	}

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	if err := sameDay.Validate(); err == nil {
		t.Error("zero-length trip should be rejected")
	}

	negBudget := valid
	negBudget.Budget = -100
	if err := negBudget.Validate(); err == nil {
		t.Error("negative budget should be rejected")
	}
}

func TestDaysAndNights(t *testing.T) {
	r := Request{StartDate: date("2024-03-01"), EndDate: date("2024-03-04")}
	if got := r.Days(); got != 4 {
		t.Errorf("Days() = %d, want 4", got)
	}
	if got := r.Nights(); got != 3 {
		t.Errorf("Nights() = %d, want 3", got)
	}

	overnight := Request{StartDate: date("2024-03-01"), EndDate: date("2024-03-02")}
	if got := overnight.Days(); got != 2 {
		t.Errorf("Days() = %d, want 2", got)
	}
	if got := overnight.Nights(); got != 1 {
		t.Errorf("Nights() = %d, want 1", got)
	}
}
