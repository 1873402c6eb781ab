// Package tzq answers offset-transition and current-state queries against
// a decoded TZif zone.
//
// Every query is a pure function of its inputs. The reference instant
// ("now") is an explicit parameter throughout; only an outer layer such as
// the CLI may default it to the wall clock.
package tzq

import (
	"errors"
	"time"

	"github.com/offsetlab/tzq/internal/unixtime"
	"github.com/offsetlab/tzq/tzif"
)

// ErrNoData reports that no transition matched the request. It is
// recoverable: a zone that records no transitions at all still has a fixed
// state readable from its first local time type.
var ErrNoData = errors.New("no data matched the request")

// sentinelInstant (-2^59) is a corrupt placeholder transition timestamp
// observed in TZif files shipped by some distributions. It is excluded from
// results to keep calendar conversions from overflowing.
const sentinelInstant int64 = -576460752303423488

// TransitionTime is a self-contained view of one transition, produced by
// joining a transition against the zone's type and abbreviation tables.
// It describes the parameters that take effect at Time.
type TransitionTime struct {
	// Time is the UTC instant of the transition, before the new parameters apply.
	Time time.Time `json:"time"`
	// UTCOffset is the upcoming offset to UTC, in seconds.
	UTCOffset int `json:"utc_offset"`
	// IsDST reports whether the upcoming period is daylight saving time.
	IsDST bool `json:"isdst"`
	// Abbreviation is the designation of the upcoming period, e.g. "CEST".
	Abbreviation string `json:"abbreviation"`
}

// AllTransitions returns every transition recorded in the zone, in file
// order, excluding entries carrying the corrupt placeholder timestamp.
// A zone with zero recorded transitions yields ErrNoData.
func AllTransitions(z tzif.Zone) ([]TransitionTime, error) {
	if len(z.Transitions) == 0 {
		return nil, ErrNoData
	}
	var out []TransitionTime
	for i, tr := range z.Transitions {
		if tr.Instant == sentinelInstant {
			continue
		}
		out = append(out, view(z, i))
	}
	return out, nil
}

// TransitionsForYear returns the transitions that occur strictly between
// January 1 00:00:00 UTC and December 31 00:00:00 UTC of the given year.
// A year of 0 selects the current year of now. A zone with zero recorded
// transitions yields ErrNoData.
//
// When the year holds no transition of its own, the zone's parameters are
// carried forward: the result is a single entry built from the nearest
// transition preceding the year. If no transition precedes it either, that
// fallback selects the first transition in the table, which may be far from
// the requested year; this quirk is preserved deliberately.
func TransitionsForYear(z tzif.Zone, year int, now time.Time) ([]TransitionTime, error) {
	if len(z.Transitions) == 0 {
		return nil, ErrNoData
	}
	if year == 0 {
		year = now.UTC().Year()
	}
	begin, end := unixtime.YearBounds(year)

	var selected []int
	for i, tr := range z.Transitions {
		if tr.Instant > begin && tr.Instant < end {
			selected = append(selected, i)
		}
	}
	if len(selected) == 0 {
		selected = append(selected, nearestPreceding(z.Transitions, begin))
	}

	out := make([]TransitionTime, len(selected))
	for i, idx := range selected {
		out[i] = view(z, idx)
	}
	return out, nil
}

// nearestPreceding returns the index of the last transition whose instant
// is strictly before limit. Later indices win. If no transition precedes
// limit the index defaults to 0.
func nearestPreceding(transitions []tzif.Transition, limit int64) int {
	nearest := 0
	for i, tr := range transitions {
		if tr.Instant < limit {
			nearest = i
		}
	}
	return nearest
}

// view joins transition i against the zone's tables. It is a value copy
// with no link back to the zone.
func view(z tzif.Zone, i int) TransitionTime {
	tr := z.Transitions[i]
	lt := z.Types[tr.TypeIndex]
	return TransitionTime{
		Time:         time.Unix(tr.Instant, 0).UTC(),
		UTCOffset:    lt.UTCOffset,
		IsDST:        lt.IsDST,
		Abbreviation: z.Abbreviations[lt.AbbrIndex],
	}
}
