package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"All", FilterAll, false},
		{"active", FilterActive, false},
		{" COMPLETED ", FilterCompleted, false},
		{"", FilterAll, true},
		{"done", FilterAll, true},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilter(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownFilter) {
			t.Errorf("ParseFilter(%q): err = %v, want ErrUnknownFilter", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilterNormalize(t *testing.T) {
	for _, f := range Filters {
		if f.Normalize() != f {
			t.Errorf("%v.Normalize() changed value", f)
		}
	}
	if got := Filter(7).Normalize(); got != FilterAll {
		t.Errorf("Filter(7).Normalize(): got %v, want All", got)
	}
	if got := Filter(7).String(); got != "All" {
		t.Errorf("Filter(7).String(): got %q, want All", got)
	}
}

func TestFilterJSON(t *testing.T) {
	var body struct {
		Filter Filter `json:"filter"`
	}
	if err := json.Unmarshal([]byte(`{"filter":"Completed"}`), &body); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if body.Filter != FilterCompleted {
		t.Errorf("got %v, want Completed", body.Filter)
	}

	out, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"filter":"Completed"}` {
		t.Errorf("Marshal: got %s", out)
	}

	if err := json.Unmarshal([]byte(`{"filter":"Someday"}`), &body); err == nil {
		t.Error("expected error for unknown filter")
	}
}
