package reporter

import "time"

// now is overridden in tests so the "clip the window at today" rule
// (spec.md §4.3.2) is deterministic.
var now = time.Now
