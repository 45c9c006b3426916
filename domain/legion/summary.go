package legion

import (
	"sort"

	lo "github.com/samber/lo"
)

// TotalLegion names the synthesized row aggregating every legion in scope.
const TotalLegion = "TOTAL"

// SummaryRow is one legion's line in the weekly summary.
type SummaryRow struct {
	Legion            string  `json:"legion"`
	Result            string  `json:"result"`
	TotalPlayers      int     `json:"total_players"`
	TotalScore        int     `json:"total_score"`
	Active            int     `json:"active"`
	Inactive          int     `json:"inactive"`
	ParticipationRate float64 `json:"participation_rate"`
}

// LegionSummary aggregates one week's records per legion, in lexical legion
// order, plus a trailing TOTAL row. TotalPlayers counts distinct player names;
// Active/Inactive count records, so a player with several records that week is
// counted once as a player but each record still feeds the status columns.
// The TOTAL participation rate is recomputed from the summed columns, not
// averaged over legions. An empty scope yields just the zero-valued TOTAL row.
func LegionSummary(records []Record) []SummaryRow {
	byLegion := lo.GroupBy(records, func(r Record) string { return r.Legion })
	names := lo.Keys(byLegion)
	sort.Strings(names)

	total := SummaryRow{Legion: TotalLegion, Result: "-"}
	rows := make([]SummaryRow, 0, len(names)+1)
	for _, name := range names {
		group := byLegion[name]
		result, ok := modeOf(lo.Map(group, func(r Record, _ int) string { return r.Result }))
		if !ok {
			result = "N/A"
		}
		row := SummaryRow{
			Legion:       name,
			Result:       result,
			TotalPlayers: len(lo.UniqBy(group, func(r Record) string { return r.Player })),
			TotalScore:   lo.SumBy(group, func(r Record) int { return r.Score }),
			Active:       lo.CountBy(group, func(r Record) bool { return r.Status == StatusActive }),
			Inactive:     lo.CountBy(group, func(r Record) bool { return r.Status == StatusInactive }),
		}
		row.ParticipationRate = participationRate(row.Active, row.TotalPlayers)
		total.TotalPlayers += row.TotalPlayers
		total.TotalScore += row.TotalScore
		total.Active += row.Active
		total.Inactive += row.Inactive
		rows = append(rows, row)
	}
	total.ParticipationRate = participationRate(total.Active, total.TotalPlayers)
	return append(rows, total)
}

// participationRate guards the empty scope: zero players is zero percent.
func participationRate(active, players int) float64 {
	if players == 0 {
		return 0
	}
	return float64(active) / float64(players) * 100
}
