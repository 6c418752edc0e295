package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/evergreen-labs/evergreen/internal/content"
)

const testIDFloor = 100

func newTestActivityStore(t *testing.T) *ActivityStore {
	t.Helper()
	s := NewActivityStore(filepath.Join(t.TempDir(), "activities.json"), testIDFloor)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func validDraft(name string) ActivityDraft {
	return ActivityDraft{
		Name:     name,
		Duration: "30 min",
		Mobility: content.MobilitySeated,
		Category: content.CategoryGames,
		Supplies: []string{"cards"},
	}
}

func TestActivityStore_AddAssignsUniqueIDs(t *testing.T) {
	s := newTestActivityStore(t)

	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		id, err := s.Add(validDraft("Bingo Night"))
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if id <= testIDFloor {
			t.Errorf("id %d does not clear the seed floor %d", id, testIDFloor)
		}
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestActivityStore_AddMarksCustom(t *testing.T) {
	s := newTestActivityStore(t)

	id, err := s.Add(validDraft("Bingo Night"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	records := s.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != id || !r.Custom {
		t.Errorf("record = %+v, want id %d with Custom=true", r, id)
	}
	if r.Instructions == nil || r.Benefits == nil {
		t.Error("optional list fields should be empty collections, not nil")
	}
}

func TestActivityStore_AddValidation(t *testing.T) {
	s := newTestActivityStore(t)

	tests := []struct {
		name  string
		draft ActivityDraft
	}{
		{"missing name", ActivityDraft{Mobility: content.MobilitySeated, Category: content.CategoryGames}},
		{"bad category", ActivityDraft{Name: "x", Mobility: content.MobilitySeated, Category: "bowling"}},
		{"bad mobility", ActivityDraft{Name: "x", Mobility: "standing", Category: content.CategoryGames}},
	}
	for _, tt := range tests {
		_, err := s.Add(tt.draft)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: got %v, want ErrValidation", tt.name, err)
		}
	}
	if len(s.Records()) != 0 {
		t.Error("rejected drafts must not mutate the store")
	}
}

func TestActivityStore_DeleteRemovesRecord(t *testing.T) {
	s := newTestActivityStore(t)
	id, _ := s.Add(validDraft("Bingo Night"))

	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, r := range s.Records() {
		if r.ID == id {
			t.Errorf("record %d still present after delete", id)
		}
	}
}

func TestActivityStore_DeleteUnknownIsNoop(t *testing.T) {
	s := newTestActivityStore(t)
	s.Add(validDraft("Bingo Night"))
	before := s.Records()

	if err := s.Delete(9999); err != nil {
		t.Fatalf("delete of unknown id: %v", err)
	}
	if !reflect.DeepEqual(before, s.Records()) {
		t.Error("collection changed after no-op delete")
	}
}

func TestActivityStore_ScheduleRoundTrip(t *testing.T) {
	s := newTestActivityStore(t)
	id, _ := s.Add(validDraft("Bingo Night"))
	date := content.NewDate(2026, time.September, 15)

	if err := s.SetScheduledDate(id, &date); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	r := s.Records()[0]
	if r.ScheduledDate == nil || *r.ScheduledDate != date {
		t.Fatalf("scheduled date = %v, want %s", r.ScheduledDate, date)
	}

	if err := s.SetScheduledDate(id, nil); err != nil {
		t.Fatalf("unschedule: %v", err)
	}
	if s.Records()[0].ScheduledDate != nil {
		t.Error("scheduled date not cleared")
	}
}

func TestActivityStore_ScheduleUnknownIsNoop(t *testing.T) {
	s := newTestActivityStore(t)
	s.Add(validDraft("Bingo Night"))
	before := s.Records()

	date := content.NewDate(2026, time.September, 15)
	// Seed-range IDs never enter the store; scheduling one has no effect.
	if err := s.SetScheduledDate(1, &date); err != nil {
		t.Fatalf("schedule of unknown id: %v", err)
	}
	if !reflect.DeepEqual(before, s.Records()) {
		t.Error("collection changed after no-op schedule")
	}
}

// breakPersistence repoints the snapshot at a path whose parent is a
// regular file, so every later write fails with an I/O error. Works
// regardless of the uid the tests run under, unlike permission tricks.
func breakPersistence(t *testing.T, s *ActivityStore) {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	s.path = filepath.Join(blocker, "activities.json")
}

func TestActivityStore_FailedAddRollsBack(t *testing.T) {
	s := newTestActivityStore(t)
	s.Add(validDraft("Bingo Night"))
	before := s.Records()
	breakPersistence(t, s)

	_, err := s.Add(validDraft("Puzzle Hour"))
	if err == nil {
		t.Fatal("expected error from unwritable snapshot path")
	}
	if errors.Is(err, ErrValidation) {
		t.Errorf("storage fault reported as validation error: %v", err)
	}
	if !reflect.DeepEqual(before, s.Records()) {
		t.Errorf("collection changed after failed add:\n got %+v\nwant %+v", s.Records(), before)
	}

	// The ID counter must not burn numbers on failed adds.
	nextBefore := s.nextID
	s.Add(validDraft("Puzzle Hour"))
	if s.nextID != nextBefore {
		t.Errorf("nextID advanced to %d on failed add, want %d", s.nextID, nextBefore)
	}
}

func TestActivityStore_FailedDeleteRollsBack(t *testing.T) {
	s := newTestActivityStore(t)
	id, _ := s.Add(validDraft("Bingo Night"))
	s.Add(validDraft("Puzzle Hour"))
	before := s.Records()
	breakPersistence(t, s)

	if err := s.Delete(id); err == nil {
		t.Fatal("expected error from unwritable snapshot path")
	}
	if !reflect.DeepEqual(before, s.Records()) {
		t.Errorf("collection changed after failed delete:\n got %+v\nwant %+v", s.Records(), before)
	}
}

func TestActivityStore_FailedScheduleRollsBack(t *testing.T) {
	s := newTestActivityStore(t)
	id, _ := s.Add(validDraft("Bingo Night"))
	breakPersistence(t, s)

	date := content.NewDate(2026, time.September, 15)
	if err := s.SetScheduledDate(id, &date); err == nil {
		t.Fatal("expected error from unwritable snapshot path")
	}
	if s.Records()[0].ScheduledDate != nil {
		t.Error("scheduled date kept after failed persist")
	}
}

func TestActivityStore_PersistReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	s := NewActivityStore(path, testIDFloor)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	id1, _ := s.Add(validDraft("Bingo Night"))
	id2, _ := s.Add(validDraft("Puzzle Hour"))
	date := content.NewDate(2026, time.October, 1)
	s.SetScheduledDate(id2, &date)
	want := s.Records()

	// Simulate a process restart.
	reloaded := NewActivityStore(path, testIDFloor)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(want, reloaded.Records()) {
		t.Errorf("reloaded collection differs:\n got %+v\nwant %+v", reloaded.Records(), want)
	}

	// The ID counter must resume above existing records.
	id3, err := reloaded.Add(validDraft("Movie Afternoon"))
	if err != nil {
		t.Fatalf("add after reload: %v", err)
	}
	if id3 == id1 || id3 == id2 || id3 <= id2 {
		t.Errorf("id after reload = %d, must exceed %d", id3, id2)
	}
}

func TestActivityStore_LoadIsIdempotent(t *testing.T) {
	s := newTestActivityStore(t)
	s.Add(validDraft("Bingo Night"))

	// A second Load must not clobber in-memory state.
	if err := s.Load(); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(s.Records()) != 1 {
		t.Errorf("records after second load = %d, want 1", len(s.Records()))
	}
}

func TestActivityStore_MutateBeforeLoad(t *testing.T) {
	s := NewActivityStore(filepath.Join(t.TempDir(), "activities.json"), testIDFloor)

	if _, err := s.Add(validDraft("x")); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Add: got %v, want ErrNotLoaded", err)
	}
	if err := s.Delete(1); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Delete: got %v, want ErrNotLoaded", err)
	}
}

func TestActivityStore_IncompatibleSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	payload := `{"schema_version": "2.0.0", "records": []}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewActivityStore(path, testIDFloor)
	if err := s.Load(); !errors.Is(err, ErrIncompatibleSnapshot) {
		t.Errorf("got %v, want ErrIncompatibleSnapshot", err)
	}
}

func TestActivityStore_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewActivityStore(path, testIDFloor)
	if err := s.Load(); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}
