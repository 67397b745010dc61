package state

import (
	"fmt"
	"time"
)

// fixedGenerator returns sequential ids and a clock advancing one second per call.
func fixedGenerator() Generator {
	n := 0
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	tick := 0
	return Generator{
		Now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}
