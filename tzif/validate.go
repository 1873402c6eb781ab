package tzif

import (
	"errors"
	"fmt"
)

// Validate audits the cross-references of a decoded Zone: every transition
// must point at an existing local time type and every local time type at an
// existing abbreviation. Decode does not call it; callers that want a
// corrupt file surfaced before querying do.
func Validate(z Zone) error {
	var errs []error

	if len(z.Types) == 0 {
		errs = append(errs, fmt.Errorf("invalid typecnt: must not be zero"))
	}
	for i, tr := range z.Transitions {
		if int(tr.TypeIndex) >= len(z.Types) {
			errs = append(errs, fmt.Errorf("transition %d: type index %d out of range, have %d types", i, tr.TypeIndex, len(z.Types)))
		}
	}
	for i, lt := range z.Types {
		if lt.AbbrIndex < 0 || lt.AbbrIndex >= len(z.Abbreviations) {
			errs = append(errs, fmt.Errorf("local time type %d: abbreviation index %d out of range, have %d abbreviations", i, lt.AbbrIndex, len(z.Abbreviations)))
		}
	}
	for i := 1; i < len(z.Transitions); i++ {
		if z.Transitions[i].Instant < z.Transitions[i-1].Instant {
			errs = append(errs, fmt.Errorf("transition %d: instant %d precedes transition %d", i, z.Transitions[i].Instant, i-1))
		}
	}

	return errors.Join(errs...)
}
