package exec

import (
	"fmt"
	"io"
	"time"
)

// Stopwatch measures a sequence of task runs with the process's monotonic
// clock and reports it the way the shell's time keyword does.
//
// A nil *Stopwatch is valid and does nothing.
type Stopwatch struct {
	out   io.Writer
	start time.Time
	user  time.Duration
	sys   time.Duration
}

// StartStopwatch starts timing now. The report is written to out on Stop.
func StartStopwatch(out io.Writer) *Stopwatch {
	return &Stopwatch{out: out, start: time.Now()}
}

// Add accumulates the CPU time a finished task used.
func (s *Stopwatch) Add(res *Result) {
	if s == nil || res == nil {
		return
	}
	s.user += res.UserTime
	s.sys += res.SystemTime
}

// Stop prints the real, user, and sys times and returns the elapsed time.
func (s *Stopwatch) Stop() time.Duration {
	if s == nil {
		return 0
	}
	elapsed := time.Since(s.start)
	fmt.Fprintf(s.out, "\nreal\t%s\nuser\t%s\nsys\t%s\n",
		formatDuration(elapsed), formatDuration(s.user), formatDuration(s.sys))
	return elapsed
}

// formatDuration renders d as bash does: 1m2.345s
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%dm%.3fs", minutes, seconds)
}
