// Package holidays indexes the seed special days for month-day lookup.
// The index is built once on first use; duplicate keys are rejected at
// catalog load, so first-match concerns never arise here.
package holidays

import (
	"sync"
	"time"

	"github.com/evergreen-labs/evergreen/internal/catalog"
	"github.com/evergreen-labs/evergreen/internal/content"
)

var (
	once    sync.Once
	initErr error
	byKey   map[content.MonthDay]content.SpecialDay
	ordered []content.SpecialDay
)

func build() error {
	once.Do(func() {
		days, err := catalog.SpecialDays()
		if err != nil {
			initErr = err
			return
		}
		ordered = days
		byKey = make(map[content.MonthDay]content.SpecialDay, len(days))
		for _, d := range days {
			byKey[d.Date] = d
		}
	})
	return initErr
}

// Lookup returns the special day for the given month-day key, if any.
func Lookup(key content.MonthDay) (content.SpecialDay, bool, error) {
	if err := build(); err != nil {
		return content.SpecialDay{}, false, err
	}
	d, ok := byKey[key]
	return d, ok, nil
}

// ForMonth returns the special days falling in the given month, in
// catalog order.
func ForMonth(month time.Month) ([]content.SpecialDay, error) {
	if err := build(); err != nil {
		return nil, err
	}
	var out []content.SpecialDay
	for _, d := range ordered {
		if d.Date.Month == month {
			out = append(out, d)
		}
	}
	return out, nil
}
