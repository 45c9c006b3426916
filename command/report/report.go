package report

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lo "github.com/samber/lo"

	"legion-stats/connectors/config"
	"legion-stats/connectors/xlsx"
	"legion-stats/domain/legion"
)

// Run executes the report command: ingest one activity workbook and write the
// weekly and global report bundles into the output directory.
//
// Usage:
//
//	legion-stats report -in activity.xlsx [-week "2024 W01 (01/01, 02/01)"] [-out ./reports]
//
// When -week is omitted the most recent week in the file is used. The weekly
// bundle file name embeds the selected label; the global bundle name is fixed.
func Run(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	in := fs.String("in", "", "input workbook (.xlsx/.xlsm)")
	week := fs.String("week", "", "week label to report on (default: most recent)")
	out := fs.String("out", "", "output directory (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("report: -in is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dir := *out
	if dir == "" {
		dir = cfg.Export.Dir
	}

	rows, err := xlsx.ReadRecordsFile(*in, cfg.Input.Sheet)
	if err != nil {
		return err
	}
	ds, err := legion.Ingest(rows, legion.Options{WinToken: cfg.Input.WinToken})
	if err != nil {
		return err
	}

	labels := ds.WeekLabels()
	if len(labels) == 0 {
		return fmt.Errorf("report: no records in %s", *in)
	}
	label := *week
	if label == "" {
		label = labels[0]
	} else if !lo.Contains(labels, label) {
		return fmt.Errorf("report: unknown week %q, have: %s", label, strings.Join(labels, " | "))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	weeklyPath := filepath.Join(dir, legion.WeeklyBundleFileName(label))
	if err := xlsx.WriteWorkbookFile(weeklyPath, ds.WeeklyBundle(label)); err != nil {
		return err
	}
	globalPath := filepath.Join(dir, legion.GlobalBundleFileName)
	if err := xlsx.WriteWorkbookFile(globalPath, ds.GlobalBundle()); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "report.done records=%d weeks=%d week=%q out=%s\n",
		len(ds.Records), len(labels), label, dir)
	return nil
}
