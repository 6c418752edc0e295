// Package content defines the record types shared by the seed catalog,
// the custom stores, and the merge view: recreational activities,
// trivia/song quiz cards, and special-day reference entries.
package content

import "fmt"

// Mobility is the physical effort level an activity requires.
type Mobility string

// Mobility levels, from least to most demanding.
const (
	MobilitySeated        Mobility = "seated"
	MobilityLightMovement Mobility = "light-movement"
	MobilityModerate      Mobility = "moderate"
)

// ParseMobility converts a stored token into a Mobility level.
func ParseMobility(s string) (Mobility, error) {
	switch Mobility(s) {
	case MobilitySeated, MobilityLightMovement, MobilityModerate:
		return Mobility(s), nil
	}
	return "", fmt.Errorf("unknown mobility level %q", s)
}

// DisplayName returns the staff-facing label for the mobility level.
func (m Mobility) DisplayName() string {
	switch m {
	case MobilitySeated:
		return "Seated"
	case MobilityLightMovement:
		return "Light Movement"
	case MobilityModerate:
		return "Moderate"
	}
	return string(m)
}

// Category groups activities for browsing and filtering.
type Category string

// Activity categories.
const (
	CategoryArtCrafts     Category = "art-crafts"
	CategoryBakingCooking Category = "baking-cooking"
	CategoryMusic         Category = "music"
	CategoryGames         Category = "games"
	CategoryExercise      Category = "exercise"
)

// ParseCategory converts a stored token into an activity Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryArtCrafts, CategoryBakingCooking, CategoryMusic, CategoryGames, CategoryExercise:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown activity category %q", s)
}

// DisplayName returns the staff-facing label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryArtCrafts:
		return "Art & Crafts"
	case CategoryBakingCooking:
		return "Baking & Cooking"
	case CategoryMusic:
		return "Music"
	case CategoryGames:
		return "Games"
	case CategoryExercise:
		return "Exercise"
	}
	return string(c)
}

// QuizCategory distinguishes trivia cards from guess-the-song cards.
type QuizCategory string

// Quiz categories.
const (
	QuizTrivia       QuizCategory = "trivia"
	QuizGuessTheSong QuizCategory = "guess-the-song"
)

// ParseQuizCategory converts a stored token into a QuizCategory.
func ParseQuizCategory(s string) (QuizCategory, error) {
	switch QuizCategory(s) {
	case QuizTrivia, QuizGuessTheSong:
		return QuizCategory(s), nil
	}
	return "", fmt.Errorf("unknown quiz category %q", s)
}

// DisplayName returns the staff-facing label for the quiz category.
func (c QuizCategory) DisplayName() string {
	switch c {
	case QuizTrivia:
		return "Trivia"
	case QuizGuessTheSong:
		return "Guess the Song"
	}
	return string(c)
}

// ActivityRecord is a single recreational activity: either a curated seed
// entry or a staff-added custom entry.
type ActivityRecord struct {
	ID           int      `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Instructions []string `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	Benefits     []string `yaml:"benefits,omitempty" json:"benefits,omitempty"`
	Duration     string   `yaml:"duration,omitempty" json:"duration,omitempty"`
	Mobility     Mobility `yaml:"mobility" json:"mobility"`
	Supplies     []string `yaml:"supplies,omitempty" json:"supplies,omitempty"`
	Category     Category `yaml:"category" json:"category"`
	Custom       bool     `yaml:"custom,omitempty" json:"custom,omitempty"`

	// ScheduledDate is the one calendar date the activity is planned for.
	// Nil means unscheduled. No recurrence.
	ScheduledDate *Date `yaml:"scheduled_date,omitempty" json:"scheduled_date,omitempty"`
}

// Validate checks the enum fields hold known tokens. Used when decoding
// persisted snapshots, where the JSON layer accepts any string.
func (a ActivityRecord) Validate() error {
	if _, err := ParseCategory(string(a.Category)); err != nil {
		return fmt.Errorf("activity %d: %w", a.ID, err)
	}
	if _, err := ParseMobility(string(a.Mobility)); err != nil {
		return fmt.Errorf("activity %d: %w", a.ID, err)
	}
	return nil
}

// QuizRecord is a single flashcard: a trivia question or a guess-the-song
// lyric prompt, optionally linked to an external media clip.
type QuizRecord struct {
	ID       int          `yaml:"id" json:"id"`
	Question string       `yaml:"question" json:"question"`
	Answer   string       `yaml:"answer" json:"answer"`
	Hint     string       `yaml:"hint,omitempty" json:"hint,omitempty"`
	Category QuizCategory `yaml:"category" json:"category"`
	Custom   bool         `yaml:"custom,omitempty" json:"custom,omitempty"`

	// At most one of these is set per record.
	SpotifyTrackID string `yaml:"spotify_track_id,omitempty" json:"spotify_track_id,omitempty"`
	YouTubeVideoID string `yaml:"youtube_video_id,omitempty" json:"youtube_video_id,omitempty"`
}

// Validate checks enum tokens and the single-media-reference invariant.
func (q QuizRecord) Validate() error {
	if _, err := ParseQuizCategory(string(q.Category)); err != nil {
		return fmt.Errorf("quiz card %d: %w", q.ID, err)
	}
	if q.SpotifyTrackID != "" && q.YouTubeVideoID != "" {
		return fmt.Errorf("quiz card %d: both spotify and youtube references set", q.ID)
	}
	return nil
}

// SpecialDay is a recurring calendar observance keyed by month and day.
// Read-only reference data.
type SpecialDay struct {
	Name string   `yaml:"name" json:"name"`
	Date MonthDay `yaml:"date" json:"date"`
	Type string   `yaml:"type,omitempty" json:"type,omitempty"`
}
