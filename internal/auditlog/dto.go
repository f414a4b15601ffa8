package auditlog

import "time"

// ListFilter narrows the log query. Zero values mean no filtering; bounds are
// inclusive.
type ListFilter struct {
	Action    string
	StartDate time.Time
	EndDate   time.Time
}

// ListLimit caps every log query regardless of filter breadth.
const ListLimit = 100
