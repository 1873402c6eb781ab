package tzq

import (
	"encoding/json"
	"fmt"
)

// Offset is a UTC offset in seconds east of UTC. It prints and marshals in
// the ±HH:MM form, e.g. 7200 is "+02:00".
type Offset int

// Seconds returns the offset as a plain number of seconds.
func (o Offset) Seconds() int { return int(o) }

func (o Offset) String() string {
	s, sign := int(o), "+"
	if s < 0 {
		s, sign = -s, "-"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s%3600/60)
}

func (o Offset) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}
