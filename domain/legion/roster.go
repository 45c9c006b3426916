package legion

import (
	"fmt"
	"sort"

	lo "github.com/samber/lo"
)

// RosterTable is a rectangular name list: one column per legion, padded with
// empty cells to the longest column so every row has the same width. Column
// headers carry the legion name and its most frequent hour in scope.
type RosterTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Rosters splits one week's records into the active and inactive name tables.
// Every legion in scope appears in both tables, even when its column is empty.
func Rosters(records []Record) (active, inactive RosterTable) {
	byLegion := lo.GroupBy(records, func(r Record) string { return r.Legion })
	legions := lo.Keys(byLegion)
	sort.Strings(legions)

	// One modal hour per legion, shared by both tables.
	hours := make(map[string]string, len(legions))
	for _, name := range legions {
		h, ok := modeOf(lo.Map(byLegion[name], func(r Record, _ int) string { return r.Hour }))
		if !ok {
			h = "N/A"
		}
		hours[name] = h
	}

	build := func(status Status) RosterTable {
		headers := make([]string, len(legions))
		columns := make([][]string, len(legions))
		maxLen := 0
		for i, name := range legions {
			headers[i] = fmt.Sprintf("Legion %s (%s)", name, hours[name])
			for _, r := range byLegion[name] {
				if r.Status == status {
					columns[i] = append(columns[i], r.Player)
				}
			}
			if len(columns[i]) > maxLen {
				maxLen = len(columns[i])
			}
		}
		rows := make([][]string, maxLen)
		for ri := range rows {
			row := make([]string, len(legions))
			for ci := range legions {
				if ri < len(columns[ci]) {
					row[ci] = columns[ci][ri]
				}
			}
			rows[ri] = row
		}
		return RosterTable{Headers: headers, Rows: rows}
	}
	return build(StatusActive), build(StatusInactive)
}
