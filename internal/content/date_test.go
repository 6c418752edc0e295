package content

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2026 || d.Month != time.March || d.Day != 14 {
		t.Errorf("got %+v", d)
	}
	if d.String() != "2026-03-14" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "03-14", "2026/03/14", "2026-13-01", "2026-02-30", "tomorrow"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): expected error", in)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		When *Date `json:"when,omitempty"`
	}
	d := NewDate(2026, time.December, 25)
	data, err := json.Marshal(payload{When: &d})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"when":"2026-12-25"}` {
		t.Errorf("encoded as %s", data)
	}

	var back payload
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.When == nil || *back.When != d {
		t.Errorf("round trip got %+v", back.When)
	}
}

func TestDate_MonthDay(t *testing.T) {
	d := NewDate(2026, time.March, 14)
	if got := d.MonthDay().String(); got != "03-14" {
		t.Errorf("MonthDay() = %q", got)
	}
}

func TestParseMonthDay(t *testing.T) {
	md, err := ParseMonthDay("02-29")
	if err != nil {
		t.Fatalf("leap-day key should parse: %v", err)
	}
	if md.Month != time.February || md.Day != 29 {
		t.Errorf("got %+v", md)
	}

	for _, in := range []string{"", "2-9", "13-01", "02-30", "03-14-15"} {
		if _, err := ParseMonthDay(in); err == nil {
			t.Errorf("ParseMonthDay(%q): expected error", in)
		}
	}
}
