package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Meta holds the header-block fields described in spec §6.3.
type Meta struct {
	InputFile  string
	N, M       int
	Directed   bool
	WMin, WMax float64
	// Params holds free-form "name=value" parameter strings (epsilon,
	// c_thr, sup, alpha, plength, ...) recorded verbatim in the header.
	Params []string
	// Timings holds one "algorithm=duration" pair per algorithm run.
	Timings map[string]time.Duration
}

// Column is one named centrality score vector, aligned by vertex index.
type Column struct {
	Name   string
	Scores []float64
}

// Option configures Write.
type Option func(*options)

type options struct {
	summary bool
}

// WithSummary appends a per-column mean/stddev footer computed with
// gonum.org/v1/gonum/stat.
func WithSummary() Option {
	return func(o *options) { o.summary = true }
}

// Write emits the header block, the "Vertex,Algo1,Algo2,..." column
// header, and one row per vertex in ascending order, to w. All columns
// must have the same length; that length determines the vertex count
// emitted.
func Write(w io.Writer, meta Meta, columns []Column, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := writeHeaderBlock(w, meta); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(columns)+1)
	header = append(header, "Vertex")
	for _, col := range columns {
		header = append(header, col.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvio: writing column header: %w", err)
	}

	n := 0
	if len(columns) > 0 {
		n = len(columns[0].Scores)
	}
	row := make([]string, len(header))
	for v := 0; v < n; v++ {
		row[0] = strconv.Itoa(v)
		for i, col := range columns {
			row[i+1] = strconv.FormatFloat(col.Scores[v], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvio: writing row %d: %w", v, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvio: flushing: %w", err)
	}

	if o.summary {
		return writeSummary(w, columns)
	}
	return nil
}

func writeHeaderBlock(w io.Writer, meta Meta) error {
	lines := []string{
		fmt.Sprintf("# input=%s", meta.InputFile),
		fmt.Sprintf("# n=%d m=%d directed=%t w_min=%g w_max=%g", meta.N, meta.M, meta.Directed, meta.WMin, meta.WMax),
	}
	if len(meta.Params) > 0 {
		line := "# params:"
		for _, p := range meta.Params {
			line += " " + p
		}
		lines = append(lines, line)
	}
	if len(meta.Timings) > 0 {
		names := make([]string, 0, len(meta.Timings))
		for name := range meta.Timings {
			names = append(names, name)
		}
		sort.Strings(names)
		line := "# timings:"
		for _, name := range names {
			line += fmt.Sprintf(" %s=%s", name, meta.Timings[name])
		}
		lines = append(lines, line)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("csvio: writing header block: %w", err)
		}
	}
	return nil
}

func writeSummary(w io.Writer, columns []Column) error {
	for _, col := range columns {
		if len(col.Scores) == 0 {
			continue
		}
		mean, std := stat.MeanStdDev(col.Scores, nil)
		if _, err := fmt.Fprintf(w, "# summary %s: mean=%g stddev=%g\n", col.Name, mean, std); err != nil {
			return fmt.Errorf("csvio: writing summary: %w", err)
		}
	}
	return nil
}
