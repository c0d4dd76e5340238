// Command scan reads Urdu lines from stdin (or the given file) and
// prints each line's matched meters, then the composition's dominant
// meter. A thin consumer of the bahr package; no example in the
// retrieval pack wires a CLI flag library (see DESIGN.md), so flag
// (stdlib) is used directly, in keeping with "never reach past the
// standard library without ecosystem precedent".
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tariquesani/bahr"
	"github.com/tariquesani/bahr/internal/diag"
	"github.com/tariquesani/bahr/internal/lookup/sqlstore"
	"github.com/tariquesani/bahr/internal/result"
)

func main() {
	dbPath := flag.String("db", "", "path to the read-only word-lookup sqlite database")
	fuzzy := flag.Bool("fuzzy", false, "enable fuzzy (Levenshtein-bounded) matching")
	freeVerse := flag.Bool("free-verse", false, "enable free-verse (foot-tiling) matching")
	verbose := flag.Bool("v", false, "log diagnostics to stderr")
	flag.Parse()

	opts := []bahr.Option{}
	if *fuzzy {
		opts = append(opts, bahr.WithFuzzy())
	}
	if *freeVerse {
		opts = append(opts, bahr.WithFreeVerse())
	}
	if *verbose {
		opts = append(opts, bahr.WithLogger(diag.New(diag.LevelDebug, os.Stderr)))
	}
	if *dbPath != "" {
		store, err := sqlstore.Open(*dbPath)
		if err != nil {
			log.Fatalf("scan: %v", err)
		}
		defer store.Close()
		opts = append(opts, bahr.WithLookupOracle(store))
	}

	s, err := bahr.New(opts...)
	if err != nil {
		log.Fatalf("scan: %v", err)
	}

	lines, err := readLines(flag.Args())
	if err != nil {
		log.Fatalf("scan: %v", err)
	}

	ctx := context.Background()
	for _, line := range lines {
		matches, err := s.ScanLine(ctx, line)
		if err != nil {
			log.Fatalf("scan: %v", err)
		}
		printMatches(os.Stdout, line, matches)
	}

	dominant, err := s.ScanLines(ctx, lines)
	if err != nil {
		log.Fatalf("scan: %v", err)
	}
	fmt.Println("--- dominant meter ---")
	printMatches(os.Stdout, "", dominant)
}

func readLines(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func printMatches(w io.Writer, line string, matches []result.Match) {
	if len(matches) == 0 {
		if line != "" {
			fmt.Fprintf(w, "%s\t(no meter matched)\n", line)
		}
		return
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Line, m.MeterName, m.Afail)
	}
}
