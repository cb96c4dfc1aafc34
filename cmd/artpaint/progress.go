package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
)

// progressBar draws a single-line bar on a terminal. Band workers call Add
// concurrently; redraws happen only when the whole percentage changes.
type progressBar struct {
	w     io.Writer
	width int

	total parallel.Accumulator
	mu    sync.Mutex
	shown int
}

// newProgressBar returns nil unless w is a terminal and quiet is false.
func newProgressBar(w io.Writer, quiet bool) *progressBar {
	if quiet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	width := 40
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 20 {
		width = min(cols-10, 60)
	}
	return &progressBar{w: w, width: width, shown: -1}
}

// Add records a progress delta in percent.
func (p *progressBar) Add(delta float64) {
	pct := int(p.total.Add(delta))
	p.mu.Lock()
	defer p.mu.Unlock()
	if pct <= p.shown {
		return
	}
	p.shown = pct
	p.draw(pct)
}

func (p *progressBar) draw(pct int) {
	pct = min(max(pct, 0), 100)
	filled := p.width * pct / 100
	fmt.Fprintf(p.w, "\r[%s%s] %3d%%",
		strings.Repeat("#", filled), strings.Repeat(" ", p.width-filled), pct)
}

// Done ends the bar's line. It is safe on a nil bar.
func (p *progressBar) Done() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shown >= 0 {
		fmt.Fprintln(p.w)
	}
}
