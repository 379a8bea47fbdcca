package bnb

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/process"
)

// diagnostics emits the periodic progress line.
type diagnostics struct {
	log      zerolog.Logger
	every    time.Duration
	last     time.Time
	printSeq bool
	printMem bool
	proc     *process.Process
}

func newDiagnostics(log zerolog.Logger, s Settings) *diagnostics {
	d := &diagnostics{
		log:      log,
		every:    s.LogInterval,
		printSeq: s.PrintCurrentInsertionSequence,
		printMem: s.PrintMemoryFootprintEstimate,
	}
	if d.printMem {
		if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
			d.proc = p
		}
	}

	return d
}

// tick logs at Debug when the interval elapsed since the previous line.
func (d *diagnostics) tick(now time.Time, s Snapshot, current *node) {
	if now.Sub(d.last) < d.every {
		return
	}
	ev := d.log.Debug()
	if !ev.Enabled() {
		return
	}
	d.last = now

	ev = ev.Int("iter", s.Iteration).
		Int("frontier", s.Frontier).
		Float64("upper_bound", s.UpperBound).
		Float64("lower_bound", s.LowerBound).
		Float64("gap", s.Gap)
	if d.printSeq && current != nil {
		ev = ev.Stringer("sequence", current.seq)
	}
	if d.printMem {
		ev = ev.Int64("memory_estimate", s.MemoryEstimate)
		if rss, ok := d.rss(); ok {
			ev = ev.Uint64("rss", rss)
		}
	}
	ev.Msg("progress")
}

func (d *diagnostics) rss() (uint64, bool) {
	if d.proc == nil {
		return 0, false
	}
	mi, err := d.proc.MemoryInfo()
	if err != nil {
		return 0, false
	}

	return mi.RSS, true
}
