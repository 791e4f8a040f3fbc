package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalPrinter redraws a set of outputs in place at a fixed frequency
type TerminalPrinter struct {
	lines     []*Line
	frequency time.Duration
	doneCh    chan struct{}
	stoppedCh chan struct{}

	writer  *uilive.Writer
	writers []io.Writer
}

func NewTerminalPrinter(out io.Writer, frequency time.Duration) *TerminalPrinter {
	writer := uilive.New()
	writer.Out = out
	return &TerminalPrinter{
		lines:     make([]*Line, 0),
		frequency: frequency,
		doneCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),

		writer:  writer,
		writers: make([]io.Writer, 0),
	}
}

// NewOutput adds a line to the printer. The first output shares the
// writer's own line, later ones get a new line each.
func (p *TerminalPrinter) NewOutput() *Line {
	out := new(Line)
	if len(p.lines) == 0 {
		p.writers = append(p.writers, p.writer)
	} else {
		p.writers = append(p.writers, p.writer.Newline())
	}
	p.lines = append(p.lines, out)
	return out
}

func (p *TerminalPrinter) Start(ctx context.Context) {
	go func() {
		defer close(p.stoppedCh)
		for {
			select {
			case <-p.doneCh:
				p.print()
				return
			case <-ctx.Done():
				p.print()
				return
			case <-time.After(p.frequency):
				p.print()
			}
		}
	}()
}

// Stop prints the outputs a last time and waits for the printer to finish
func (p *TerminalPrinter) Stop() {
	close(p.doneCh)
	<-p.stoppedCh
}

func (p *TerminalPrinter) print() {
	for i, output := range p.lines {
		fmt.Fprint(p.writers[i], output.String()+"\n")
	}
	p.writer.Flush()
}

// Line is one line of a TerminalPrinter
type Line struct {
	mu   sync.Mutex
	text string
}

// Update replaces the text unless the printer is reading it, in which case
// the update is dropped and false returned
func (l *Line) Update(s string) bool {
	if !l.mu.TryLock() {
		return false
	}
	defer l.mu.Unlock()
	l.text = s
	return true
}

func (l *Line) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}
