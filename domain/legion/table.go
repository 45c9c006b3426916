package legion

// Table is a sheet-shaped view of an aggregate: a name, a header row and data
// rows. Connectors turn Tables into spreadsheet sheets without knowing which
// aggregator produced them. Cells keep their Go types (string, int, float64)
// so exporters can write real numbers.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]any
}
