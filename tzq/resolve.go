package tzq

import (
	"errors"
	"time"

	"github.com/offsetlab/tzq/tzif"
)

// ZoneState describes a zone as of a reference instant: the offset in
// effect, the DST window of the year if there is one, and the local time.
// The JSON field names form the interchange format consumed by downstream
// renderers.
type ZoneState struct {
	// Timezone is the IANA zone name.
	Timezone string `json:"timezone"`
	// UTCDatetime is the reference instant in UTC.
	UTCDatetime time.Time `json:"utc_datetime"`
	// Datetime is the reference instant shifted to the zone's local time.
	Datetime time.Time `json:"datetime"`
	// DSTFrom and DSTUntil delimit the year's DST period, if the zone
	// observes one.
	DSTFrom  *time.Time `json:"dst_from"`
	DSTUntil *time.Time `json:"dst_until"`
	// DSTPeriod reports whether the reference instant falls inside the
	// DST period.
	DSTPeriod bool `json:"dst_period"`
	// RawOffset is the zone's standard offset to UTC, in seconds.
	RawOffset int `json:"raw_offset"`
	// DSTOffset is the offset to UTC during daylight saving time, in
	// seconds. Zero when the zone observes no DST this year.
	DSTOffset int `json:"dst_offset"`
	// UTCOffset is the offset currently in effect.
	UTCOffset Offset `json:"utc_offset"`
	// Abbreviation is the designation currently in effect.
	Abbreviation string `json:"abbreviation"`
	// WeekNumber is the ISO 8601 week number of the local time.
	WeekNumber int `json:"week_number"`
}

// Resolve derives the state of the zone as of now from the current year's
// transitions. A standard DST-observing year yields exactly two transitions
// (into and out of DST); a single transition means a plain offset change; a
// zone without any recorded transition is a fixed-offset zone read from its
// first local time type. Any other shape yields ErrNoData rather than a
// guess.
func Resolve(z tzif.Zone, now time.Time) (ZoneState, error) {
	current, err := TransitionsForYear(z, 0, now)
	if err != nil && !errors.Is(err, ErrNoData) {
		return ZoneState{}, err
	}

	switch len(current) {
	case 2:
		dst := now.After(current[0].Time) && now.Before(current[1].Time)
		active := current[1]
		if dst {
			active = current[0]
		}
		from, until := current[0].Time, current[1].Time
		s := state(z.Name, now, active.UTCOffset, active.Abbreviation)
		s.DSTFrom = &from
		s.DSTUntil = &until
		s.DSTPeriod = dst
		s.RawOffset = current[1].UTCOffset
		s.DSTOffset = current[0].UTCOffset
		return s, nil
	case 1:
		s := state(z.Name, now, current[0].UTCOffset, current[0].Abbreviation)
		s.RawOffset = current[0].UTCOffset
		return s, nil
	case 0:
		// Zone without any recorded transition. Its parameters come from
		// the first local time type; the zone name doubles as the
		// abbreviation since fixed-offset files often carry none.
		if len(z.Types) == 0 {
			return ZoneState{}, ErrNoData
		}
		s := state(z.Name, now, z.Types[0].UTCOffset, z.Name)
		s.RawOffset = z.Types[0].UTCOffset
		return s, nil
	default:
		return ZoneState{}, ErrNoData
	}
}

// state fills the fields shared by every resolution outcome.
func state(name string, now time.Time, offset int, abbr string) ZoneState {
	local := now.In(time.FixedZone(abbr, offset))
	_, week := local.ISOWeek()
	return ZoneState{
		Timezone:     name,
		UTCDatetime:  now.UTC(),
		Datetime:     local,
		UTCOffset:    Offset(offset),
		Abbreviation: abbr,
		WeekNumber:   week,
	}
}
