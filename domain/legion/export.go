package legion

import (
	"fmt"
	"strings"
)

// Sheet names of the two export bundles, matching the report files teammates
// already archive.
const (
	SheetSummary        = "Summary"
	SheetActive         = "Active"
	SheetInactive       = "Inactive"
	SheetHourlyStats    = "Hourly_Stats"
	SheetRawData        = "Raw_Data"
	SheetGlobalStats    = "Global_Stats"
	SheetScheduleMatrix = "Schedule_Matrix"
	SheetGlobalHourly   = "Global_Hourly"
	SheetFullHistory    = "Full_History_Raw"
)

// GlobalBundleFileName is fixed; the weekly one embeds the selected label.
const GlobalBundleFileName = "Legion_Global_History.xlsx"

// Spaces become underscores and parentheses disappear, like the historical
// report names. The date slashes also have to go or the name is not a valid
// file path.
var labelSanitizer = strings.NewReplacer(" ", "_", "(", "", ")", "", "/", "-")

// WeeklyBundleFileName derives the weekly export file name from a week label.
func WeeklyBundleFileName(label string) string {
	return fmt.Sprintf("Weekly_Report_%s.xlsx", labelSanitizer.Replace(label))
}

// WeeklyBundle packages the week-scoped views in their sheet order: summary,
// both rosters, the hourly histogram and the filtered raw records.
func (d *Dataset) WeeklyBundle(label string) []Table {
	week := d.Week(label)
	active, inactive := Rosters(week)
	return []Table{
		summaryTable(LegionSummary(week)),
		rosterSheet(SheetActive, active),
		rosterSheet(SheetInactive, inactive),
		hourlyTable(SheetHourlyStats, HourlyHistogram(week)),
		recordTable(SheetRawData, week),
	}
}

// GlobalBundle packages the all-time views: player stats, the schedule matrix,
// the global hourly histogram and the full raw history.
func (d *Dataset) GlobalBundle() []Table {
	return []Table{
		playerTable(PlayerStats(d.Records)),
		matrixTable(BuildScheduleMatrix(d.Records)),
		hourlyTable(SheetGlobalHourly, HourlyHistogram(d.Records)),
		recordTable(SheetFullHistory, d.Records),
	}
}

func summaryTable(rows []SummaryRow) Table {
	t := Table{
		Name:    SheetSummary,
		Headers: []string{"Legion", "Result", "Total_Players", "Total_Score", "Active", "Inactive", "Participation_Rate"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.Legion, r.Result, r.TotalPlayers, r.TotalScore, r.Active, r.Inactive, round2(r.ParticipationRate),
		})
	}
	return t
}

func rosterSheet(name string, roster RosterTable) Table {
	t := Table{Name: name, Headers: roster.Headers}
	for _, row := range roster.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func hourlyTable(name string, counts []HourCount) Table {
	t := Table{Name: name, Headers: []string{"Heure", "Active_Players"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []any{c.Hour, c.ActivePlayers})
	}
	return t
}

func playerTable(rows []PlayerRow) Table {
	t := Table{
		Name:    SheetGlobalStats,
		Headers: []string{"Joueur", "Total_Score", "Average_Score", "Win_Rate", "Participations", "Absences", "Preferred_Schedule"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.Player, r.TotalScore, r.AverageScore, r.WinRate, r.Participations, r.Absences, r.PreferredSchedule,
		})
	}
	return t
}

func matrixTable(m ScheduleMatrix) Table {
	headers := append([]string{"Joueur"}, m.Hours...)
	t := Table{Name: SheetScheduleMatrix, Headers: append(headers, "TOTAL")}
	for _, row := range m.Rows {
		cells := make([]any, 0, len(row.Counts)+2)
		cells = append(cells, row.Player)
		for _, n := range row.Counts {
			cells = append(cells, n)
		}
		t.Rows = append(t.Rows, append(cells, row.Total))
	}
	return t
}

// recordTable exports the post-cleaning records, original columns first and the
// derived ones after, the way the raw-data sheets have always looked.
func recordTable(name string, records []Record) Table {
	t := Table{
		Name:    name,
		Headers: []string{"Joueur", "Legion", "Date", "Heure", "Score", "Result", "Status", "Year", "Week", "Week_Label"},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []any{
			r.Player, r.Legion, r.Date.Format("02/01/2006"), r.Hour, r.Score, r.Result,
			string(r.Status), r.Year, r.Week, r.WeekLabel,
		})
	}
	return t
}
