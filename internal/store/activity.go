package store

import (
	"fmt"

	"github.com/evergreen-labs/evergreen/internal/content"
)

// ActivityStore holds the staff-added activities. Seed activities live in
// the catalog and never enter this store; scheduling therefore applies to
// custom records only.
type ActivityStore struct {
	path    string
	idFloor int
	loaded  bool
	nextID  int
	records []content.ActivityRecord
}

// ActivityDraft carries the user-supplied fields for a new activity.
type ActivityDraft struct {
	Name         string
	Description  string
	Instructions []string
	Benefits     []string
	Duration     string
	Mobility     content.Mobility
	Supplies     []string
	Category     content.Category
}

// NewActivityStore returns a store persisting to path. Generated IDs start
// above idFloor, which callers set to the highest seed-catalog ID so custom
// IDs can never collide with seed IDs.
func NewActivityStore(path string, idFloor int) *ActivityStore {
	return &ActivityStore{path: path, idFloor: idFloor}
}

// Load reads the persisted snapshot into memory. Missing snapshot means a
// first launch and an empty store. Load is idempotent: once loaded, later
// calls are no-ops, tracked by an explicit flag rather than collection
// emptiness.
func (s *ActivityStore) Load() error {
	if s.loaded {
		return nil
	}

	records, found, err := readSnapshot[content.ActivityRecord](s.path)
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

// Records returns the custom activities in insertion order, copied.
func (s *ActivityStore) Records() []content.ActivityRecord {
	out := make([]content.ActivityRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Add validates the draft, assigns a fresh unique ID, appends the record
// marked as custom, and persists the full collection. Validation failures
// wrap ErrValidation; persistence failures are I/O errors and leave the
// in-memory collection unchanged.
func (s *ActivityStore) Add(draft ActivityDraft) (int, error) {
	if !s.loaded {
		return 0, ErrNotLoaded
	}
	if draft.Name == "" {
		return 0, fmt.Errorf("%w: activity name is required", ErrValidation)
	}
	if _, err := content.ParseCategory(string(draft.Category)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := content.ParseMobility(string(draft.Mobility)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.nextID++
	record := content.ActivityRecord{
		ID:           s.nextID,
		Name:         draft.Name,
		Description:  draft.Description,
		Instructions: emptyIfNil(draft.Instructions),
		Benefits:     emptyIfNil(draft.Benefits),
		Duration:     draft.Duration,
		Mobility:     draft.Mobility,
		Supplies:     emptyIfNil(draft.Supplies),
		Category:     draft.Category,
		Custom:       true,
	}

	s.records = append(s.records, record)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		s.nextID--
		return 0, err
	}
	return record.ID, nil
}

// Delete removes the record with the given ID. Deleting an unknown ID is a
// no-op, not an error, and does not rewrite the snapshot.
func (s *ActivityStore) Delete(id int) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	removed := s.records[idx]
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	if err := s.persist(); err != nil {
		s.records = append(s.records[:idx], append([]content.ActivityRecord{removed}, s.records[idx:]...)...)
		return err
	}
	return nil
}

// SetScheduledDate sets or clears (nil) the scheduled date of a custom
// record. Seed records never enter this store, so scheduling a seed-only ID
// is a silent no-op.
func (s *ActivityStore) SetScheduledDate(id int, date *content.Date) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	previous := s.records[idx].ScheduledDate
	s.records[idx].ScheduledDate = date
	if err := s.persist(); err != nil {
		s.records[idx].ScheduledDate = previous
		return err
	}
	return nil
}

func (s *ActivityStore) indexOf(id int) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *ActivityStore) persist() error {
	return writeSnapshot(s.path, s.records)
}

// emptyIfNil keeps optional list fields as empty collections rather than
// nulls in the snapshot.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
