package domain

import (
	"time"
)

// EntryFilter holds optional bounds for listing time entries.
// A nil bound is omitted from the request.
type EntryFilter struct {
	RangeStart *time.Time
	RangeEnd   *time.Time
}
