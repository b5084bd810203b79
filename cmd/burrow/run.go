package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"

	"github.com/geofduf/burrow/internal/burrow"
	"github.com/geofduf/burrow/internal/diagram"
	"github.com/geofduf/burrow/internal/metrics"
	"github.com/geofduf/burrow/internal/search"
)

var errNoSolution = errors.New("no solution")

type part struct {
	name  string
	lines []string
}

// Read the diagram, solve it once or twice according to the flags and print
// the answer(s). A file named "-" is read from stdin.
func run(stdin io.Reader, stdout, stderr io.Writer, opts options) (err error) {

	start := time.Now()
	logger := newLogger(stderr, opts.verbose)

	if opts.profile != "" {
		stop, perr := startProfile(opts.profile)
		if perr != nil {
			return perr
		}
		defer func() {
			if serr := stop(); serr != nil && err == nil {
				err = serr
			}
		}()
	}

	layout := burrow.Standard()
	if opts.layout != "" {
		data, err := os.ReadFile(opts.layout)
		if err != nil {
			return err
		}
		if layout, err = burrow.ParseLayout(data); err != nil {
			return fmt.Errorf("%s: %w", opts.layout, err)
		}
		logger.Debug("loaded layout", "path", opts.layout, "rooms", len(layout.Doors), "hallway", layout.Hallway)
	}

	lines, err := readDiagram(stdin, opts.file)
	if err != nil {
		return err
	}

	parts := []part{{"1", lines}}
	if opts.unfold {
		unfolded, err := diagram.Unfold(lines, layout)
		if err != nil {
			return err
		}
		parts = append(parts, part{"2", unfolded})
	}

	rec := metrics.NewRecorder()
	solved := true
	for _, p := range parts {
		ok, err := processInput(stdout, logger, rec, p, layout, opts)
		if err != nil {
			return err
		}
		solved = solved && ok
	}

	if opts.metrics != "" {
		if err := rec.WriteTextfile(opts.metrics); err != nil {
			return err
		}
		logger.Debug("wrote metrics", "path", opts.metrics)
	}

	fmt.Fprintf(stdout, "Global execution time (incl. parsing): %s\n", time.Since(start))

	if !solved {
		return errNoSolution
	}
	return nil

}

func readDiagram(stdin io.Reader, path string) ([]string, error) {
	if path == "-" {
		return diagram.ReadLines(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return diagram.ReadLines(f)
}

// Parse one diagram, run the search and print its outcome. It reports false
// when the goal cannot be reached.
func processInput(w io.Writer, logger *slog.Logger, rec *metrics.Recorder, p part, layout burrow.Layout, opts options) (bool, error) {

	start := time.Now()

	d, err := diagram.ParseLines(p.lines, layout)
	if err != nil {
		return false, fmt.Errorf("part %s: %w", p.name, err)
	}
	if opts.dump {
		pretty.Fprintf(w, "%# v\n", newDump(d))
	}

	res, err := search.Run(d.Burrow, d.Start, search.Options{Heuristic: opts.experimental})
	elapsed := time.Since(start)
	rec.Observe(p.name, res, err, elapsed)
	if err != nil && !errors.Is(err, search.ErrNotReachable) {
		return false, fmt.Errorf("part %s: %w", p.name, err)
	}

	logger.Info("search done",
		"part", p.name,
		"depth", d.Burrow.Depth(),
		"expanded", res.Stats.Expanded,
		"discovered", res.Stats.Discovered,
		"stale", res.Stats.Stale,
		"max_frontier", res.Stats.MaxFrontier,
		"elapsed", elapsed,
	)

	if err != nil {
		fmt.Fprintf(w, "Part%s: no solution after exploring %s configurations\n", p.name, humanize.Comma(int64(res.Stats.Discovered)))
		return false, nil
	}
	fmt.Fprintf(w, "Part%s: found cost of %s in %s\n", p.name, humanize.Comma(int64(res.Cost)), elapsed)
	return true, nil

}

// dump is what --dump prints about a parsed diagram.
type dump struct {
	Layout     burrow.Layout
	Depth      int
	Hallway    string
	Rooms      []string
	LowerBound int
}

func newDump(d *diagram.Diagram) dump {
	b := d.Burrow
	l := b.Layout()
	letters := func(ts []burrow.Token) string {
		s := make([]byte, len(ts))
		for i, t := range ts {
			s[i] = l.Letter(t)
		}
		return string(s)
	}
	out := dump{
		Layout:     l,
		Depth:      b.Depth(),
		Hallway:    letters(b.Hallway(d.Start)),
		LowerBound: b.LowerBound(d.Start),
	}
	for r := 0; r < b.Rooms(); r++ {
		out.Rooms = append(out.Rooms, letters(b.Room(d.Start, r)))
	}
	return out
}

// startProfile starts a wall-clock profile written to path in pprof format.
func startProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stop(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
