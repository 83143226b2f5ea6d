package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/fuzz-bridge/metric"
	"github.com/wippyai/fuzz-bridge/rank"
	"github.com/wippyai/fuzz-bridge/seq"
)

func main() {
	var (
		query       = flag.String("q", "", "Query string to match")
		metricName  = flag.String("metric", "indel", "Metric to score with ("+strings.Join(metric.Names(), ", ")+")")
		cutoff      = flag.Float64("cutoff", 0, "Drop choices scoring below this (0..1)")
		workers     = flag.Int("workers", 0, "Scoring goroutines (0 = GOMAXPROCS)")
		limit       = flag.Int("n", 0, "Show at most this many results (0 = all)")
		choicesFile = flag.String("f", "", "Read choices from file, one per line")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	choices, err := loadChoices(*choicesFile, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*metricName, choices); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Usage: fuzzmatch -q <query> [-metric name] [-cutoff x] [choice ...]")
		fmt.Fprintln(os.Stderr, "       fuzzmatch -q <query> -f <choices.txt>")
		fmt.Fprintln(os.Stderr, "       fuzzmatch -i [choice ...]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*query, *metricName, *cutoff, *workers, *limit, choices); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadChoices gathers candidate strings from a file, positional arguments,
// or stdin when neither is given.
func loadChoices(file string, args []string) ([]string, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open choices: %w", err)
		}
		defer f.Close()
		return readLines(f)
	}

	if len(args) > 0 {
		return args, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return readLines(os.Stdin)
	}
	return nil, nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func run(query, metricName string, cutoff float64, workers, limit int, choices []string) error {
	factory, ok := metric.Lookup(metricName)
	if !ok {
		return fmt.Errorf("unknown metric %q (have: %s)", metricName, strings.Join(metric.Names(), ", "))
	}
	if len(choices) == 0 {
		return fmt.Errorf("no choices given")
	}

	q, err := seq.Convert(query)
	if err != nil {
		return fmt.Errorf("convert query: %w", err)
	}
	bufs := make([]*seq.Buffer, len(choices))
	for i, c := range choices {
		if bufs[i], err = seq.Convert(c); err != nil {
			return fmt.Errorf("convert choice %d: %w", i, err)
		}
	}

	results, err := rank.Extract(context.Background(), factory, q, bufs, cutoff, workers)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	for _, r := range results {
		fmt.Printf("%8.4f  %s\n", r.Score, choices[r.Index])
	}
	return nil
}
