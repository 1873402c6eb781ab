package tzq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offsetlab/tzq/tzif"
)

// paris covers the 2019 DST year of Europe/Paris: into CEST on March 31
// at 01:00 UTC, back to CET on October 27 at 01:00 UTC.
func paris() tzif.Zone {
	return tzif.Zone{
		Name: "Europe/Paris",
		Transitions: []tzif.Transition{
			{Instant: 1553994000, TypeIndex: 0},
			{Instant: 1572138000, TypeIndex: 1},
		},
		Types: []tzif.LocalTimeType{
			{UTCOffset: 7200, IsDST: true, AbbrIndex: 0},
			{UTCOffset: 3600, IsDST: false, AbbrIndex: 1},
		},
		Abbreviations: []string{"CEST", "CET"},
	}
}

var (
	parisIntoDST = TransitionTime{
		Time:         time.Date(2019, 3, 31, 1, 0, 0, 0, time.UTC),
		UTCOffset:    7200,
		IsDST:        true,
		Abbreviation: "CEST",
	}
	parisOutOfDST = TransitionTime{
		Time:         time.Date(2019, 10, 27, 1, 0, 0, 0, time.UTC),
		UTCOffset:    3600,
		IsDST:        false,
		Abbreviation: "CET",
	}
)

func TestTransitionsForYear(t *testing.T) {
	got, err := TransitionsForYear(paris(), 2019, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []TransitionTime{parisIntoDST, parisOutOfDST}, got)
}

func TestTransitionsForYear_ZeroMeansCurrentYear(t *testing.T) {
	now := time.Date(2019, 7, 1, 12, 0, 0, 0, time.UTC)
	got, err := TransitionsForYear(paris(), 0, now)
	require.NoError(t, err)
	assert.Equal(t, []TransitionTime{parisIntoDST, parisOutOfDST}, got)
}

func TestTransitionsForYear_CarriesForward(t *testing.T) {
	// 2021 records no transition of its own; the nearest preceding one
	// (back to CET in October 2019) is still in effect.
	got, err := TransitionsForYear(paris(), 2021, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []TransitionTime{parisOutOfDST}, got)
}

func TestTransitionsForYear_BeforeFirstTransition(t *testing.T) {
	// No transition precedes 1900 either, so the fallback lands on the
	// first table entry even though it postdates the requested year.
	got, err := TransitionsForYear(paris(), 1900, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []TransitionTime{parisIntoDST}, got)
}

func TestTransitionsForYear_NoTransitions(t *testing.T) {
	z := tzif.Zone{Name: "UTC", Types: []tzif.LocalTimeType{{UTCOffset: 0}}}
	_, err := TransitionsForYear(z, 2019, time.Time{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAllTransitions(t *testing.T) {
	got, err := AllTransitions(paris())
	require.NoError(t, err)
	assert.Equal(t, []TransitionTime{parisIntoDST, parisOutOfDST}, got)
}

func TestAllTransitions_SkipsSentinel(t *testing.T) {
	z := paris()
	z.Transitions = append([]tzif.Transition{{Instant: sentinelInstant, TypeIndex: 1}}, z.Transitions...)
	got, err := AllTransitions(z)
	require.NoError(t, err)
	assert.Equal(t, []TransitionTime{parisIntoDST, parisOutOfDST}, got)
}

func TestAllTransitions_NoTransitions(t *testing.T) {
	z := tzif.Zone{Name: "UTC", Types: []tzif.LocalTimeType{{UTCOffset: 0}}}
	_, err := AllTransitions(z)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNearestPreceding(t *testing.T) {
	transitions := []tzif.Transition{{Instant: 10}, {Instant: 20}, {Instant: 30}}
	assert.Equal(t, 0, nearestPreceding(transitions, 5))
	assert.Equal(t, 0, nearestPreceding(transitions, 10))
	assert.Equal(t, 1, nearestPreceding(transitions, 25))
	assert.Equal(t, 2, nearestPreceding(transitions, 100))
}
