package rlevec

import (
	"fmt"
	"strings"
)

// validate checks the run table invariants: ends strictly increase (which
// also rules out zero-length runs) and no two adjacent runs hold equal
// values. Violations are implementation defects; tests call validate
// after every mutation, production code never does.
func (v *Vec[T]) validate() error {
	prev := -1
	for p, r := range v.runs {
		if r.end <= prev {
			return fmt.Errorf("run %d: end %d does not exceed previous end %d", p, r.end, prev)
		}
		if p > 0 && v.runs[p-1].value == r.value {
			return fmt.Errorf("runs %d and %d hold equal values (%v)", p-1, p, r.value)
		}
		prev = r.end
	}
	return nil
}

// dump renders the run table as "value×length ..." for failure messages.
func (v *Vec[T]) dump() string {
	var buf strings.Builder
	start := 0
	for p, r := range v.runs {
		if p > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%v×%d", r.value, r.end-start+1)
		start = r.end + 1
	}
	return buf.String()
}
