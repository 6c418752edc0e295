// Package catalog holds the immutable seed content shipped inside the
// binary: curated activities, quiz cards, and special days. Seeds are
// embedded YAML, schema-validated and decoded once on first access, and
// never mutated afterward.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/evergreen-labs/evergreen/internal/content"
)

var (
	//go:embed seed/activities.yaml
	activitiesSeed []byte
	//go:embed seed/quiz.yaml
	quizSeed []byte
	//go:embed seed/holidays.yaml
	holidaysSeed []byte

	//go:embed schema/activities.schema.json
	activitiesSchema []byte
	//go:embed schema/quiz.schema.json
	quizSchema []byte
	//go:embed schema/holidays.schema.json
	holidaysSchema []byte
)

var (
	loadOnce sync.Once
	loadErr  error

	seedActivities []content.ActivityRecord
	seedQuiz       []content.QuizRecord
	seedDays       []content.SpecialDay
)

type activitiesFile struct {
	Activities []content.ActivityRecord `yaml:"activities"`
}

type quizFile struct {
	Cards []content.QuizRecord `yaml:"cards"`
}

type holidaysFile struct {
	Days []content.SpecialDay `yaml:"days"`
}

// load parses and verifies all three seed files exactly once.
func load() error {
	loadOnce.Do(func() {
		loadErr = loadAll()
	})
	return loadErr
}

func loadAll() error {
	if err := validateSeed("activities.schema.json", activitiesSchema, activitiesSeed); err != nil {
		return err
	}
	var af activitiesFile
	if err := yaml.Unmarshal(activitiesSeed, &af); err != nil {
		return fmt.Errorf("parsing activity seeds: %w", err)
	}
	if err := checkUniqueActivityIDs(af.Activities); err != nil {
		return err
	}
	seedActivities = af.Activities

	if err := validateSeed("quiz.schema.json", quizSchema, quizSeed); err != nil {
		return err
	}
	var qf quizFile
	if err := yaml.Unmarshal(quizSeed, &qf); err != nil {
		return fmt.Errorf("parsing quiz seeds: %w", err)
	}
	if err := checkUniqueQuizIDs(qf.Cards); err != nil {
		return err
	}
	seedQuiz = qf.Cards

	if err := validateSeed("holidays.schema.json", holidaysSchema, holidaysSeed); err != nil {
		return err
	}
	var hf holidaysFile
	if err := yaml.Unmarshal(holidaysSeed, &hf); err != nil {
		return fmt.Errorf("parsing holiday seeds: %w", err)
	}
	if err := checkUniqueDayKeys(hf.Days); err != nil {
		return err
	}
	seedDays = hf.Days

	return nil
}

// Activities returns the seed activities in catalog-declared order.
// The returned slice is a copy; callers cannot mutate the catalog.
func Activities() ([]content.ActivityRecord, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]content.ActivityRecord, len(seedActivities))
	copy(out, seedActivities)
	return out, nil
}

// Quiz returns the seed quiz cards in catalog-declared order, copied.
func Quiz() ([]content.QuizRecord, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]content.QuizRecord, len(seedQuiz))
	copy(out, seedQuiz)
	return out, nil
}

// SpecialDays returns the seed special days in catalog-declared order, copied.
func SpecialDays() ([]content.SpecialDay, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]content.SpecialDay, len(seedDays))
	copy(out, seedDays)
	return out, nil
}

// MaxID returns the highest identifier across both seed catalogs. Custom
// stores seed their ID counters above this so generated IDs never collide
// with author-assigned ones.
func MaxID() (int, error) {
	if err := load(); err != nil {
		return 0, err
	}
	max := 0
	for _, a := range seedActivities {
		if a.ID > max {
			max = a.ID
		}
	}
	for _, q := range seedQuiz {
		if q.ID > max {
			max = q.ID
		}
	}
	return max, nil
}

func checkUniqueActivityIDs(records []content.ActivityRecord) error {
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return fmt.Errorf("activity seeds: duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

func checkUniqueQuizIDs(records []content.QuizRecord) error {
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return fmt.Errorf("quiz seeds: duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

func checkUniqueDayKeys(days []content.SpecialDay) error {
	seen := make(map[content.MonthDay]bool, len(days))
	for _, d := range days {
		if seen[d.Date] {
			return fmt.Errorf("holiday seeds: duplicate date %s", d.Date)
		}
		seen[d.Date] = true
	}
	return nil
}
