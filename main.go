package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdreport "legion-stats/command/report"
	cmdweb "legion-stats/command/web"
)

// Legion & player activity reporting tool.
// Usage:
//   legion-stats report -in activity.xlsx [-week <label>] [-out ./reports]
//   legion-stats web [-addr :8080]
// Notes:
// - Reads per-player battle records from the "Données Brutes" sheet (configurable),
//   derives weekly legion summaries, rosters, hourly histograms, lifetime player
//   stats and the schedule matrix, and writes them back as xlsx report bundles.
// - Each invocation (or upload) is a full, stateless recomputation; nothing is
//   persisted between runs.

func main() {
	args := os.Args
	// Initialize slog logger (text to stderr, INFO level for now)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "report":
			if err := cmdreport.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "web":
			if err := cmdweb.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: legion-stats report -in <file.xlsx> [-week <label>] [-out <dir>] | web [-addr :8080]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
