package legion

import (
	"math"
	"sort"

	lo "github.com/samber/lo"
)

// PlayerRow is one player's lifetime line across every ingested week.
type PlayerRow struct {
	Player            string  `json:"player"`
	TotalScore        int     `json:"total_score"`
	AverageScore      float64 `json:"average_score"`
	WinRate           float64 `json:"win_rate"`
	Participations    int     `json:"participations"`
	Absences          int     `json:"absences"`
	PreferredSchedule string  `json:"preferred_schedule"`
}

// PlayerStats aggregates the full record set per player, in lexical player
// order. Average and win rate are rounded to two decimals; the preferred
// schedule is the player's modal hour, "N/A" when no hour values exist.
func PlayerStats(records []Record) []PlayerRow {
	byPlayer := lo.GroupBy(records, func(r Record) string { return r.Player })
	names := lo.Keys(byPlayer)
	sort.Strings(names)

	rows := make([]PlayerRow, 0, len(names))
	for _, name := range names {
		group := byPlayer[name]
		total := lo.SumBy(group, func(r Record) int { return r.Score })
		wins := lo.CountBy(group, func(r Record) bool { return r.Win })
		hour, ok := modeOf(lo.Map(group, func(r Record, _ int) string { return r.Hour }))
		if !ok {
			hour = "N/A"
		}
		rows = append(rows, PlayerRow{
			Player:            name,
			TotalScore:        total,
			AverageScore:      round2(float64(total) / float64(len(group))),
			WinRate:           round2(float64(wins) / float64(len(group)) * 100),
			Participations:    lo.CountBy(group, func(r Record) bool { return r.Score > 0 }),
			Absences:          lo.CountBy(group, func(r Record) bool { return r.Score == 0 }),
			PreferredSchedule: hour,
		})
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
