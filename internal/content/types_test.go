package content

import "testing"

func TestParseCategory(t *testing.T) {
	for _, tok := range []string{"art-crafts", "baking-cooking", "music", "games", "exercise"} {
		if _, err := ParseCategory(tok); err != nil {
			t.Errorf("ParseCategory(%q): %v", tok, err)
		}
	}
	if _, err := ParseCategory("crafts"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestParseMobility(t *testing.T) {
	if _, err := ParseMobility("light-movement"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseMobility("Seated"); err == nil {
		t.Error("tokens are lowercase; display names must not parse")
	}
}

func TestActivityRecord_Validate(t *testing.T) {
	rec := ActivityRecord{ID: 1, Name: "Bingo", Mobility: MobilitySeated, Category: CategoryGames}
	if err := rec.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec.Category = "board-games"
	if err := rec.Validate(); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestQuizRecord_Validate_SingleMediaRef(t *testing.T) {
	rec := QuizRecord{ID: 1, Question: "q", Answer: "a", Category: QuizGuessTheSong, SpotifyTrackID: "x"}
	if err := rec.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec.YouTubeVideoID = "y"
	if err := rec.Validate(); err == nil {
		t.Error("expected error when both media references are set")
	}
}
