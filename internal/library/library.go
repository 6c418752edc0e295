// Package library presents the read surface over the content repository:
// the union of the immutable seed catalog and the mutable custom stores.
// Every query recomputes the union, so results always reflect the latest
// store state without an explicit refresh.
package library

import (
	"github.com/evergreen-labs/evergreen/internal/catalog"
	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/store"
	"github.com/evergreen-labs/evergreen/internal/userdata"
)

// Library owns the two custom stores and merges them with the seed
// catalog. Construct it explicitly and pass it to consumers; there is no
// package-level instance.
type Library struct {
	activities *store.ActivityStore
	quiz       *store.QuizStore
}

// New assembles a Library over the given stores. The stores must already
// be loaded (or be loaded before the first query).
func New(activities *store.ActivityStore, quiz *store.QuizStore) *Library {
	return &Library{activities: activities, quiz: quiz}
}

// Open builds a Library over the standard userdata snapshot paths and
// loads both stores.
func Open() (*Library, error) {
	maxSeedID, err := catalog.MaxID()
	if err != nil {
		return nil, err
	}

	activityPath, err := userdata.GetActivitySnapshotPath()
	if err != nil {
		return nil, err
	}
	quizPath, err := userdata.GetQuizSnapshotPath()
	if err != nil {
		return nil, err
	}

	activities := store.NewActivityStore(activityPath, maxSeedID)
	if err := activities.Load(); err != nil {
		return nil, err
	}
	quiz := store.NewQuizStore(quizPath, maxSeedID)
	if err := quiz.Load(); err != nil {
		return nil, err
	}

	return New(activities, quiz), nil
}

// ActivityStore exposes the owned store for mutations.
func (l *Library) ActivityStore() *store.ActivityStore { return l.activities }

// QuizStore exposes the owned store for mutations.
func (l *Library) QuizStore() *store.QuizStore { return l.quiz }

// Activities returns seed activities in catalog order followed by custom
// activities in insertion order. A non-nil filter narrows to an exact
// category match.
func (l *Library) Activities(filter *content.Category) ([]content.ActivityRecord, error) {
	seed, err := catalog.Activities()
	if err != nil {
		return nil, err
	}

	merged := append(seed, l.activities.Records()...)
	if filter == nil {
		return merged, nil
	}

	out := merged[:0]
	for _, r := range merged {
		if r.Category == *filter {
			out = append(out, r)
		}
	}
	return out, nil
}

// Quiz returns seed quiz cards followed by custom cards, optionally
// narrowed to one quiz category.
func (l *Library) Quiz(filter *content.QuizCategory) ([]content.QuizRecord, error) {
	seed, err := catalog.Quiz()
	if err != nil {
		return nil, err
	}

	merged := append(seed, l.quiz.Records()...)
	if filter == nil {
		return merged, nil
	}

	out := merged[:0]
	for _, r := range merged {
		if r.Category == *filter {
			out = append(out, r)
		}
	}
	return out, nil
}

// ActivitiesOn returns every activity scheduled for the given date, in
// merge order. Seed records are unschedulable under the strict seed/custom
// separation, so in practice only custom records match.
func (l *Library) ActivitiesOn(date content.Date) ([]content.ActivityRecord, error) {
	all, err := l.Activities(nil)
	if err != nil {
		return nil, err
	}

	var out []content.ActivityRecord
	for _, r := range all {
		if r.ScheduledDate != nil && *r.ScheduledDate == date {
			out = append(out, r)
		}
	}
	return out, nil
}
