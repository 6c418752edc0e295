package holidays

import (
	"testing"
	"time"

	"github.com/evergreen-labs/evergreen/internal/content"
)

func TestLookup(t *testing.T) {
	key, err := content.ParseMonthDay("03-14")
	if err != nil {
		t.Fatal(err)
	}

	day, ok, err := Lookup(key)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected a special day on 03-14")
	}
	if day.Name != "Pi Day" {
		t.Errorf("name = %q, want Pi Day", day.Name)
	}
	if day.Type != "Educational" {
		t.Errorf("type = %q", day.Type)
	}
}

func TestLookup_Miss(t *testing.T) {
	key, err := content.ParseMonthDay("08-03")
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err := Lookup(key)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Error("expected no special day on 08-03")
	}
}

func TestForMonth(t *testing.T) {
	days, err := ForMonth(time.March)
	if err != nil {
		t.Fatalf("for month: %v", err)
	}
	if len(days) != 4 {
		t.Fatalf("got %d days in March, want 4", len(days))
	}
	// Catalog order within a month follows the day of month.
	for i := 1; i < len(days); i++ {
		if days[i].Date.Day < days[i-1].Date.Day {
			t.Errorf("days out of order: %v before %v", days[i-1].Date, days[i].Date)
		}
	}
}

func TestForMonth_Empty(t *testing.T) {
	days, err := ForMonth(time.August)
	if err != nil {
		t.Fatalf("for month: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("got %d days in August, want 0", len(days))
	}
}
