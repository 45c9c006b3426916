package legion

import (
	"fmt"
	"sort"
	"strings"
	"time"

	lo "github.com/samber/lo"
)

// WeekKey identifies an ISO-8601 week: Monday start, week 1 holds the year's
// first Thursday. The year is the ISO year, not the calendar year of the date.
type WeekKey struct {
	Year int
	Week int
}

// BucketWeek assigns a date its ISO week key.
func BucketWeek(date time.Time) WeekKey {
	y, w := date.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

// WeekLabelFor renders a key as "2024 W01 (01/01, 02/01)" from the dates seen
// in the bucket. Dates are de-duplicated and sorted first, so the label does
// not depend on record order.
func WeekLabelFor(key WeekKey, dates []time.Time) string {
	uniq := lo.UniqBy(dates, func(t time.Time) string { return t.Format("02/01") })
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].Before(uniq[j]) })
	parts := lo.Map(uniq, func(t time.Time, _ int) string { return t.Format("02/01") })
	return fmt.Sprintf("%d W%02d (%s)", key.Year, key.Week, strings.Join(parts, ", "))
}
