package legion

import "time"

// RawRecord is one row as read from the source sheet, before any cleaning.
// All fields are kept as strings; the coercion rules live in Ingest.
type RawRecord struct {
	Player string
	Legion string
	Date   string
	Hour   string
	Score  string
	Result string
}

// Record is one cleaned (player, legion, date, hour, score, result) observation
// with its derived status and week bucket. Records are never mutated after
// Ingest; every aggregate is recomputed from the record slice on each call.
type Record struct {
	Player    string    `json:"player"`
	Legion    string    `json:"legion"`
	Date      time.Time `json:"date"`
	Hour      string    `json:"hour"`
	Score     int       `json:"score"`
	Result    string    `json:"result"`
	Win       bool      `json:"win"`
	Status    Status    `json:"status"`
	Year      int       `json:"year"`
	Week      int       `json:"week"`
	WeekLabel string    `json:"week_label"`
}
