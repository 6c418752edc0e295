package store

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/medialink"
	"github.com/evergreen-labs/evergreen/internal/trivia"
)

// songPrompt is the face-up text for guess-the-song cards added by staff.
const songPrompt = "Play the clip, then guess the song!"

// TriviaFetcher is the slice of the trivia client the quiz store needs.
type TriviaFetcher interface {
	Fetch(ctx context.Context, req trivia.Request) ([]trivia.Question, error)
}

// QuizStore holds the staff-added and API-imported quiz cards and songs.
type QuizStore struct {
	path    string
	idFloor int
	loaded  bool
	nextID  int
	records []content.QuizRecord

	// shuffle reorders answer options when synthesizing hints.
	// Swappable in tests for deterministic output.
	shuffle func(n int, swap func(i, j int))
}

// QuizDraft carries the user-supplied fields for a new quiz card.
type QuizDraft struct {
	Question       string
	Answer         string
	Hint           string
	Category       content.QuizCategory
	SpotifyTrackID string
	YouTubeVideoID string
}

// NewQuizStore returns a store persisting to path. Generated IDs start
// above idFloor (the highest seed-catalog ID).
func NewQuizStore(path string, idFloor int) *QuizStore {
	return &QuizStore{path: path, idFloor: idFloor, shuffle: rand.Shuffle}
}

// Load reads the persisted snapshot into memory, once. Missing snapshot
// means an empty store.
func (s *QuizStore) Load() error {
	if s.loaded {
		return nil
	}

	records, found, err := readSnapshot[content.QuizRecord](s.path)
	if err != nil {
		return err
	}
	if found {
		for _, r := range records {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("snapshot %s: %w", s.path, err)
			}
		}
		s.records = records
	}

	s.nextID = s.idFloor
	for _, r := range s.records {
		if r.ID > s.nextID {
			s.nextID = r.ID
		}
	}
	s.loaded = true
	return nil
}

// Records returns the custom quiz cards in insertion order, copied.
func (s *QuizStore) Records() []content.QuizRecord {
	out := make([]content.QuizRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Add validates the draft, assigns a fresh unique ID, appends the record
// marked as custom, and persists the full collection.
func (s *QuizStore) Add(draft QuizDraft) (int, error) {
	if !s.loaded {
		return 0, ErrNotLoaded
	}
	if draft.Question == "" {
		return 0, fmt.Errorf("%w: question is required", ErrValidation)
	}
	if draft.Answer == "" {
		return 0, fmt.Errorf("%w: answer is required", ErrValidation)
	}
	if _, err := content.ParseQuizCategory(string(draft.Category)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if draft.SpotifyTrackID != "" && draft.YouTubeVideoID != "" {
		return 0, fmt.Errorf("%w: a card links to one service, not both", ErrValidation)
	}

	s.nextID++
	record := content.QuizRecord{
		ID:             s.nextID,
		Question:       draft.Question,
		Answer:         draft.Answer,
		Hint:           draft.Hint,
		Category:       draft.Category,
		Custom:         true,
		SpotifyTrackID: draft.SpotifyTrackID,
		YouTubeVideoID: draft.YouTubeVideoID,
	}

	s.records = append(s.records, record)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		s.nextID--
		return 0, err
	}
	return record.ID, nil
}

// AddSong adds a guess-the-song card from a pasted streaming link. Exactly
// one of spotifyLink and youtubeLink must be set; the link is normalized to
// its canonical identifier before storage.
func (s *QuizStore) AddSong(title, artist, spotifyLink, youtubeLink string) (int, error) {
	if title == "" {
		return 0, fmt.Errorf("%w: song title is required", ErrValidation)
	}
	if (spotifyLink == "") == (youtubeLink == "") {
		return 0, fmt.Errorf("%w: provide exactly one streaming link", ErrValidation)
	}

	answer := title
	if artist != "" {
		answer = title + " - " + artist
	}

	draft := QuizDraft{
		Question: songPrompt,
		Answer:   answer,
		Category: content.QuizGuessTheSong,
	}
	if spotifyLink != "" {
		draft.SpotifyTrackID = medialink.SpotifyTrackID(spotifyLink)
	} else {
		draft.YouTubeVideoID = medialink.YouTubeVideoID(youtubeLink)
	}
	return s.Add(draft)
}

// ImportTrivia fetches a batch from the external source and folds every
// returned item into the store as a trivia card. The import is
// all-or-nothing: a fetch failure returns before any mutation, and the
// batch is appended and persisted as one unit.
func (s *QuizStore) ImportTrivia(ctx context.Context, fetcher TriviaFetcher, req trivia.Request) (int, error) {
	if !s.loaded {
		return 0, ErrNotLoaded
	}

	questions, err := fetcher.Fetch(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("importing trivia: %w", err)
	}

	prevLen := len(s.records)
	prevNext := s.nextID
	for _, q := range questions {
		s.nextID++
		s.records = append(s.records, content.QuizRecord{
			ID:       s.nextID,
			Question: q.Question,
			Answer:   q.CorrectAnswer,
			Hint:     s.synthesizeHint(q),
			Category: content.QuizTrivia,
			Custom:   true,
		})
	}

	if err := s.persist(); err != nil {
		s.records = s.records[:prevLen]
		s.nextID = prevNext
		return 0, err
	}
	return len(questions), nil
}

// Delete removes the record with the given ID; unknown IDs are a no-op.
func (s *QuizStore) Delete(id int) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	removed := s.records[idx]
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	if err := s.persist(); err != nil {
		s.records = append(s.records[:idx], append([]content.QuizRecord{removed}, s.records[idx:]...)...)
		return err
	}
	return nil
}

// synthesizeHint builds the card hint from the question type: a true/false
// prompt for boolean items, or all answer options in shuffled order for
// multiple choice.
func (s *QuizStore) synthesizeHint(q trivia.Question) string {
	if q.Type == trivia.TypeBoolean {
		return "True or False?"
	}

	options := make([]string, 0, len(q.IncorrectAnswers)+1)
	options = append(options, q.CorrectAnswer)
	options = append(options, q.IncorrectAnswers...)
	s.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return "Options: " + strings.Join(options, ", ")
}

func (s *QuizStore) persist() error {
	return writeSnapshot(s.path, s.records)
}
