package legion

import (
	"sort"

	lo "github.com/samber/lo"
)

// HourCount is one bar of a participation histogram.
type HourCount struct {
	Hour          string `json:"hour"`
	ActivePlayers int    `json:"active_players"`
}

// HourlyHistogram counts active records per hour over any scope (a week's
// records or the full history). Inactive records never contribute. Bars come
// back sorted by hour so repeated calls are identical; for normalized "HH:00"
// labels that is chronological order.
func HourlyHistogram(records []Record) []HourCount {
	active := lo.Filter(records, func(r Record, _ int) bool { return r.Status == StatusActive })
	counts := lo.CountValuesBy(active, func(r Record) string { return r.Hour })
	hours := lo.Keys(counts)
	sort.Strings(hours)
	return lo.Map(hours, func(h string, _ int) HourCount {
		return HourCount{Hour: h, ActivePlayers: counts[h]}
	})
}
