// Command centra-togml converts a 3-column edge-list text file
// ("node1 node2 weight" per line) into the GML-like format consumed by
// package gmlio.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var directed bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "centra-togml <infile.txt> <outfile.gml>",
		Short: "Convert a 3-column edge-list file into GML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := convert(args[0], args[1], directed); err != nil {
				return err
			}
			if watch {
				return watchAndReconvert(args[0], args[1], directed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&directed, "directed", false, "emit the GML directed flag as 1")
	cmd.Flags().BoolVar(&watch, "watch", false, "reconvert whenever infile.txt changes")
	return cmd
}

type edgeRecord struct {
	source, target int
	weight         float64
}

func convert(inPath, outPath string, directed bool) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("centra-togml: opening input: %w", err)
	}
	defer in.Close()

	var (
		order []int
		seen  = make(map[int]bool)
		edges []edgeRecord
	)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("centra-togml: malformed line %q: expected 3 space-separated columns", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("centra-togml: malformed source id %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("centra-togml: malformed target id %q: %w", fields[1], err)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("centra-togml: malformed weight %q: %w", fields[2], err)
		}

		if !seen[u] {
			seen[u] = true
			order = append(order, u)
		}
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
		edges = append(edges, edgeRecord{source: u, target: v, weight: w})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("centra-togml: reading input: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("centra-togml: creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "graph\n[\n")
	if directed {
		fmt.Fprintf(w, "  directed 1\n")
	}
	for _, id := range order {
		fmt.Fprintf(w, "  node\n  [\n    id %d\n  ]\n", id)
	}
	for _, e := range edges {
		fmt.Fprintf(w, "  edge\n  [\n    source %d\n    target %d\n    value %g\n  ]\n", e.source, e.target, e.weight)
	}
	fmt.Fprintf(w, "]\n")
	return w.Flush()
}

// watchAndReconvert blocks, reconverting infile.txt into outfile.gml
// every time the host filesystem reports it changed, until the watcher
// errors or the process is terminated.
func watchAndReconvert(inPath, outPath string, directed bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("centra-togml: starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inPath); err != nil {
		return fmt.Errorf("centra-togml: watching %s: %w", inPath, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := convert(inPath, outPath, directed); err != nil {
				fmt.Fprintf(os.Stderr, "centra-togml: reconvert failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("centra-togml: watcher error: %w", err)
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
