package projections

import (
	"sort"

	"itinero/internal/scheduler"
	"itinero/pkg/utils"
)

// UnscheduledKey labels the bucket of entries without a date.
const UnscheduledKey = "unscheduled"

type TableGroup struct {
	Date    string            `json:"date"` // "yyyy-mm-dd" or "unscheduled"
	Entries []scheduler.Entry `json:"entries"`
}

// Table groups entries by calendar day. Dated buckets come first in
// ascending order; the unscheduled bucket, if non-empty, is always last.
// Within a bucket entries keep their snapshot order. Pure and idempotent.
func Table(entries []scheduler.Entry) []TableGroup {
	buckets := make(map[string][]scheduler.Entry)
	for _, e := range entries {
		key := UnscheduledKey
		if e.Date != nil {
			key = utils.FormatDateOnly(*e.Date)
		}
		buckets[key] = append(buckets[key], e)
	}

	dates := make([]string, 0, len(buckets))
	for key := range buckets {
		if key == UnscheduledKey {
			continue
		}
		dates = append(dates, key)
	}
	sort.Strings(dates)

	groups := make([]TableGroup, 0, len(buckets))
	for _, d := range dates {
		groups = append(groups, TableGroup{Date: d, Entries: buckets[d]})
	}
	if unscheduled, ok := buckets[UnscheduledKey]; ok {
		groups = append(groups, TableGroup{Date: UnscheduledKey, Entries: unscheduled})
	}
	return groups
}
