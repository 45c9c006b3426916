package legion

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	lo "github.com/samber/lo"
)

// DefaultWinToken is the literal whose presence in Result counts as a win.
// Matching is a case-sensitive substring check; see Options.
const DefaultWinToken = "Victory"

// Options controls ingest behavior.
type Options struct {
	// WinToken overrides DefaultWinToken. Matching stays case-sensitive on
	// purpose: the source data carries one literal outcome token, and silently
	// widening the match would change win rates on existing files.
	WinToken string
}

// Dataset is the cleaned record set for one uploaded workbook.
type Dataset struct {
	Records []Record
}

// Ingest cleans raw rows into a Dataset. A malformed date aborts the whole
// batch; malformed scores and missing results degrade per field (0 / neutral).
func Ingest(rows []RawRecord, opt Options) (*Dataset, error) {
	token := opt.WinToken
	if token == "" {
		token = DefaultWinToken
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		date, err := ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		key := BucketWeek(date)
		score := CleanScore(row.Score)
		records = append(records, Record{
			Player: strings.TrimSpace(row.Player),
			Legion: strings.TrimSpace(row.Legion),
			Date:   date,
			Hour:   CleanHour(row.Hour),
			Score:  score,
			Result: strings.TrimSpace(row.Result),
			Win:    strings.Contains(row.Result, token),
			Status: Classify(score),
			Year:   key.Year,
			Week:   key.Week,
		})
	}

	// Labels need every date in the bucket, hence the second pass.
	byWeek := lo.GroupBy(records, func(r Record) WeekKey { return WeekKey{Year: r.Year, Week: r.Week} })
	labels := make(map[WeekKey]string, len(byWeek))
	for key, group := range byWeek {
		dates := lo.Map(group, func(r Record, _ int) time.Time { return r.Date })
		labels[key] = WeekLabelFor(key, dates)
	}
	for i := range records {
		records[i].WeekLabel = labels[WeekKey{Year: records[i].Year, Week: records[i].Week}]
	}

	slog.Debug("ingest complete", "rows", len(rows), "records", len(records), "weeks", len(byWeek))
	return &Dataset{Records: records}, nil
}

// WeekLabels lists the labels present in the dataset, most recent week first.
// Zero-padded week numbers make the lexical sort chronological.
func (d *Dataset) WeekLabels() []string {
	labels := lo.Uniq(lo.Map(d.Records, func(r Record, _ int) string { return r.WeekLabel }))
	sort.Sort(sort.Reverse(sort.StringSlice(labels)))
	return labels
}

// HasWeek reports whether the label belongs to the dataset.
func (d *Dataset) HasWeek(label string) bool {
	return lo.ContainsBy(d.Records, func(r Record) bool { return r.WeekLabel == label })
}

// Week returns the records whose label equals the given one. An unknown label
// yields an empty scope, not an error.
func (d *Dataset) Week(label string) []Record {
	return lo.Filter(d.Records, func(r Record, _ int) bool { return r.WeekLabel == label })
}
