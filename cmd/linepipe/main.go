// Package main provides the linepipe command: load a text file, normalize
// and filter its lines, and report the count of accepted items.
package main

import (
	"flag"
	"fmt"
	"os"

	"linepipe/internal/config"
	"linepipe/internal/formatter"
	"linepipe/internal/logger"
	"linepipe/internal/pipeline"
	"linepipe/internal/stats"
	"linepipe/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	outputPath := flag.String("output", "", "Write the result set to this path")
	showReport := flag.Bool("report", false, "Print the line statistics report")
	historyLimit := flag.Int("history", 0, "List the N most recent runs and exit")
	flag.Parse()

	// Load Configuration
	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)

			return 1
		}

		cfg = loaded
	}

	log := logger.New(cfg.Pipeline.Logging.Level, cfg.Pipeline.Logging.Format)

	// History listing mode
	if *historyLimit > 0 {
		return listHistory(cfg, log, *historyLimit)
	}

	// Validate Inputs
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: linepipe [flags] <input_file>")
		flag.PrintDefaults()

		return 1
	}

	input := flag.Arg(0)

	// Load + Process
	p := pipeline.New(cfg, log)

	ok, err := p.Load(input)
	if err != nil {
		log.Error("load failed", "path", input, "error", err)

		return 1
	}

	if !ok {
		// Missing input is tolerated: continue with an empty dataset.
		log.Info("continuing with empty dataset", "path", input)
	}

	results := p.Process()

	// Report + History
	runStats := stats.Collect(p.Lines(), results)

	if *showReport || cfg.Pipeline.Report.Enabled {
		fmt.Print(formatter.Report(input, runStats, cfg.Pipeline.Report.Format))
	}

	if cfg.Pipeline.History.Enabled {
		if herr := recordRun(cfg, input, runStats); herr != nil {
			log.Warn("failed to record run history", "error", herr)
		}
	}

	// Persist result set when requested. The processing step does not
	// populate the result set, so this writes an empty file.
	savePath := *outputPath
	if savePath == "" {
		savePath = cfg.Pipeline.Output.Path
	}

	if savePath != "" {
		if serr := p.Save(savePath); serr != nil {
			log.Error("save failed", "path", savePath, "error", serr)

			return 1
		}
	}

	fmt.Printf("Processed %d items\n", len(results))

	return 0
}

func recordRun(cfg *config.Config, input string, s stats.LineStats) error {
	db, err := storage.Open(cfg.Pipeline.History.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.RecordRun(input, s)

	return err
}

func listHistory(cfg *config.Config, log *logger.Logger, limit int) int {
	if cfg.Pipeline.History.Path == "" {
		log.Error("no history database configured (set pipeline.history.path)")

		return 1
	}

	db, err := storage.Open(cfg.Pipeline.History.Path)
	if err != nil {
		log.Error("failed to open history", "error", err)

		return 1
	}
	defer db.Close()

	runs, err := db.ListRuns(limit)
	if err != nil {
		log.Error("failed to list runs", "error", err)

		return 1
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Input,
			fmt.Sprintf("%d", r.Accepted),
			fmt.Sprintf("%d", r.Physical),
		})
	}

	fmt.Print(formatter.RenderTable([]string{"When", "Input", "Accepted", "Physical"}, rows))

	return 0
}
