package library

import (
	"path/filepath"
	"testing"

	"github.com/evergreen-labs/evergreen/internal/catalog"
	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/store"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()

	maxSeedID, err := catalog.MaxID()
	if err != nil {
		t.Fatalf("seed max id: %v", err)
	}

	dir := t.TempDir()
	activities := store.NewActivityStore(filepath.Join(dir, "activities.json"), maxSeedID)
	if err := activities.Load(); err != nil {
		t.Fatalf("load activities: %v", err)
	}
	quiz := store.NewQuizStore(filepath.Join(dir, "quiz.json"), maxSeedID)
	if err := quiz.Load(); err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	return New(activities, quiz)
}

func TestActivities_SeedThenCustomOrder(t *testing.T) {
	lib := newTestLibrary(t)

	seed, err := catalog.Activities()
	if err != nil {
		t.Fatal(err)
	}
	customID, err := lib.ActivityStore().Add(store.ActivityDraft{
		Name:     "Puzzle Afternoon",
		Category: content.CategoryGames,
		Mobility: content.MobilitySeated,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	all, err := lib.Activities(nil)
	if err != nil {
		t.Fatalf("activities: %v", err)
	}
	if len(all) != len(seed)+1 {
		t.Fatalf("got %d records, want %d", len(all), len(seed)+1)
	}
	for i, s := range seed {
		if all[i].ID != s.ID {
			t.Errorf("position %d: id %d, want seed id %d", i, all[i].ID, s.ID)
		}
	}
	if last := all[len(all)-1]; last.ID != customID || !last.Custom {
		t.Errorf("last record = %+v, want custom id %d", last, customID)
	}
}

func TestActivities_CategoryFilterAfterDelete(t *testing.T) {
	lib := newTestLibrary(t)

	customID, err := lib.ActivityStore().Add(store.ActivityDraft{
		Name:     "Dominoes",
		Category: content.CategoryGames,
		Mobility: content.MobilitySeated,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	games := content.CategoryGames
	got, err := lib.Activities(&games)
	if err != nil {
		t.Fatal(err)
	}
	ids := recordIDs(got)
	if len(ids) != 3 || ids[0] != 16 || ids[1] != 17 || ids[2] != customID {
		t.Fatalf("games before delete = %v, want [16 17 %d]", ids, customID)
	}

	if err := lib.ActivityStore().Delete(customID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err = lib.Activities(&games)
	if err != nil {
		t.Fatal(err)
	}
	ids = recordIDs(got)
	if len(ids) != 2 || ids[0] != 16 || ids[1] != 17 {
		t.Errorf("games after delete = %v, want [16 17]", ids)
	}
}

func TestQuiz_CategoryFilter(t *testing.T) {
	lib := newTestLibrary(t)

	if _, err := lib.QuizStore().Add(store.QuizDraft{
		Question: "What year did the moon landing happen?",
		Answer:   "1969",
		Category: content.QuizTrivia,
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	songs := content.QuizGuessTheSong
	got, err := lib.Quiz(&songs)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if r.Category != content.QuizGuessTheSong {
			t.Errorf("record %d has category %q", r.ID, r.Category)
		}
		if r.Custom {
			t.Errorf("record %d is custom, expected seed songs only", r.ID)
		}
	}
	if len(got) == 0 {
		t.Error("seed catalog should contribute guess-the-song cards")
	}
}

func TestActivitiesOn(t *testing.T) {
	lib := newTestLibrary(t)

	date, err := content.ParseDate("2026-10-31")
	if err != nil {
		t.Fatal(err)
	}

	id, err := lib.ActivityStore().Add(store.ActivityDraft{
		Name:     "Pumpkin Painting",
		Category: content.CategoryArtCrafts,
		Mobility: content.MobilitySeated,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := lib.ActivityStore().SetScheduledDate(id, &date); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	got, err := lib.ActivitiesOn(date)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != id {
		t.Errorf("scheduled on %s = %v, want [%d]", date, recordIDs(got), id)
	}

	other, _ := content.ParseDate("2026-11-01")
	got, err = lib.ActivitiesOn(other)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("scheduled on %s = %v, want none", other, recordIDs(got))
	}
}

func recordIDs(records []content.ActivityRecord) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
