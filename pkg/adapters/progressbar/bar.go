// Package progressbar draws conversion progress on a terminal.
package progressbar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"

	"github.com/user/bwvid/pkg/ports"
)

const (
	barWidth = 40
	// minRedraw limits how often the line is repainted.
	minRedraw = 100 * time.Millisecond
)

// Bar implements ports.ProgressObserver by repainting a single line.
type Bar struct {
	out     io.Writer
	now     func() time.Time
	start   time.Time
	redraws *rate.Limiter
}

// New returns a bar on w.
func New(w io.Writer) *Bar {
	return &Bar{
		out:     w,
		now:     time.Now,
		redraws: rate.NewLimiter(rate.Every(minRedraw), 1),
	}
}

// ForFile returns a bar on f when f is a terminal and ports.NoProgress
// otherwise.
func ForFile(f *os.File) ports.ProgressObserver {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ports.NoProgress
	}
	return New(f)
}

// Frame implements ports.ProgressObserver.
func (b *Bar) Frame(ev ports.ProgressEvent) {
	now := b.now()
	if b.start.IsZero() {
		b.start = now
	}
	if !b.redraws.AllowN(now, 1) {
		return
	}
	b.draw(ev, now)
}

// Finish paints the final state and ends the line.
func (b *Bar) Finish(ev ports.ProgressEvent) {
	now := b.now()
	if b.start.IsZero() {
		b.start = now
	}
	b.draw(ev, now)
	fmt.Fprintln(b.out)
}

func (b *Bar) draw(ev ports.ProgressEvent, now time.Time) {
	fmt.Fprint(b.out, "\r"+Line(ev, now.Sub(b.start)))
}

// Line formats one progress line:
// "[bar] done/total | elapsed, eta: remaining". Without a total only the
// count and elapsed time are shown.
func Line(ev ports.ProgressEvent, elapsed time.Duration) string {
	done := ev.Done()
	total := ev.Total
	if total > 0 && done > total {
		total = done
	}

	if total <= 0 {
		return fmt.Sprintf("%d frames | %s", done, clock(elapsed))
	}

	filled := done * barWidth / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	var eta time.Duration
	if done > 0 {
		eta = elapsed * time.Duration(total-done) / time.Duration(done)
	}
	return fmt.Sprintf("%s %d/%d | %s, eta: %s", bar, done, total, clock(elapsed), clock(eta))
}

// clock formats d as m:ss or h:mm:ss.
func clock(d time.Duration) string {
	s := int(d.Round(time.Second) / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

var _ ports.ProgressObserver = (*Bar)(nil)
