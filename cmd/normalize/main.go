// Package main provides the normalize command-line tool: apply the pipeline's
// normalization and acceptance stages to a file and write the accepted items.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"linepipe/internal/config"
	"linepipe/internal/logger"
	"linepipe/internal/pipeline"
)

func main() {
	inputPath := flag.String("input", "", "Path to input text file")
	outputPath := flag.String("output", "", "Path to output file (accepted items, one per line)")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalize -input <input.txt> -output <output.txt>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	p := pipeline.New(config.DefaultConfig(), logger.New("info", "text"))

	ok, err := p.Load(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	if !ok {
		log.Fatalf("Input file does not exist: %s\n", *inputPath)
	}

	fmt.Printf("Reading: %s (%d lines)\n", *inputPath, len(p.Lines()))

	items := p.Process()

	// Ensure directory exists
	if dir := filepath.Dir(*outputPath); dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0755); mkdirErr != nil {
			log.Fatalf("Error creating directory: %v\n", mkdirErr)
		}
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(item)
		b.WriteString("\n")
	}

	if err := os.WriteFile(*outputPath, []byte(b.String()), 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("Saved %d items to: %s\n", len(items), *outputPath)
}
