package trip

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

var validate = validator.New()

// Request holds the parameters of one trip planning call.
type Request struct {
	// Source city the trip starts from.
	Source string `json:"source" validate:"required"`
	// Destination city of the trip.
	Destination string `json:"destination" validate:"required"`
	// StartDate calendar date, no time of day.
	StartDate time.Time `json:"start_date" validate:"required"`
	// EndDate calendar date, strictly after StartDate.
	EndDate time.Time `json:"end_date" validate:"required"`
	// Budget optional ceiling in currency units, zero means absent.
	Budget float64 `json:"budget,omitempty" validate:"omitempty,gt=0"`
	// Preferences optional free text.
	Preferences string `json:"preferences,omitempty"`
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	ts, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return ts, nil
}

// Validate rejects malformed requests before any planning work begins.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.EndDate.After(r.StartDate) {
		return fmt.Errorf("end date %s must be after start date %s",
			r.EndDate.Format(DateLayout), r.StartDate.Format(DateLayout))
	}
	return nil
}

// Days returns the trip length in days, counting both endpoints.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Nights returns the trip length in nights, minimum 1.
func (r Request) Nights() int {
	n := int(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}
