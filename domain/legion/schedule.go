package legion

import (
	"sort"

	lo "github.com/samber/lo"
)

// ScheduleMatrix is the player × hour contingency table of active sessions.
// Hours is the column order shared by every row; Total repeats the row sum so
// renderers and exporters never recompute it.
type ScheduleMatrix struct {
	Hours []string            `json:"hours"`
	Rows  []ScheduleMatrixRow `json:"rows"`
}

type ScheduleMatrixRow struct {
	Player string `json:"player"`
	Counts []int  `json:"counts"`
	Total  int    `json:"total"`
}

// BuildScheduleMatrix counts each player's active records per hour over the
// full history. Rows start in lexical player order and are then stably
// re-sorted by Total descending, so equal totals stay lexical.
func BuildScheduleMatrix(records []Record) ScheduleMatrix {
	active := lo.Filter(records, func(r Record, _ int) bool { return r.Status == StatusActive })

	hours := lo.Uniq(lo.Map(active, func(r Record, _ int) string { return r.Hour }))
	sort.Strings(hours)
	col := make(map[string]int, len(hours))
	for i, h := range hours {
		col[h] = i
	}

	byPlayer := lo.GroupBy(active, func(r Record) string { return r.Player })
	players := lo.Keys(byPlayer)
	sort.Strings(players)

	rows := make([]ScheduleMatrixRow, 0, len(players))
	for _, name := range players {
		counts := make([]int, len(hours))
		for _, r := range byPlayer[name] {
			counts[col[r.Hour]]++
		}
		rows = append(rows, ScheduleMatrixRow{Player: name, Counts: counts, Total: lo.Sum(counts)})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return ScheduleMatrix{Hours: hours, Rows: rows}
}
