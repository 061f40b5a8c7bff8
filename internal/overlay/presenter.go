// Package overlay is the terminal presentation adapter: it renders the
// caption, timer and coefficient readouts emitted by the timeline runner
// and translates raw keyboard input into control commands. The timeline
// core has no dependency on it.
package overlay

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// coefficient readout stays visible this long after the last change
const coeffVisibleFor = 3 * time.Second

const (
	ansiClear      = "\x1b[2J\x1b[H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	ansiReset      = "\x1b[0m"
	ansiYellow     = "\x1b[33m"
	ansiCyan       = "\x1b[36m"
	ansiBoldWhite  = "\x1b[1;37m"
)

// TermPresenter draws the overlay into a terminal. The terminal is
// expected to be in raw mode, so lines end with \r\n. All methods are
// safe for concurrent use; the runner and the command handler both call
// into it.
type TermPresenter struct {
	mu        sync.Mutex
	out       io.Writer
	caption   string
	timer     string
	coeff     string
	hideCoeff *time.Timer
	color     bool
}

func NewTermPresenter(out io.Writer, color bool) *TermPresenter {
	return &TermPresenter{out: out, color: color}
}

// Start hides the cursor and clears the screen.
func (p *TermPresenter) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, ansiHideCursor)
	p.redraw()
}

// Close restores the cursor and leaves the screen clean.
func (p *TermPresenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hideCoeff != nil {
		p.hideCoeff.Stop()
	}
	fmt.Fprint(p.out, ansiClear, ansiShowCursor)
}

func (p *TermPresenter) RenderCaption(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.caption = text
	p.redraw()
}

func (p *TermPresenter) RenderTimer(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timer = text
	p.redraw()
}

// ShowCoefficientInfo displays the current rate control and font size,
// then hides the readout again after a short delay.
func (p *TermPresenter) ShowCoefficientInfo(scale float64, fontSize int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.coeff = fmt.Sprintf("FPS: %.3f   Font size: %dpt", scale, fontSize)
	if p.hideCoeff != nil {
		p.hideCoeff.Stop()
	}
	p.hideCoeff = time.AfterFunc(coeffVisibleFor, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.coeff = ""
		p.redraw()
	})
	p.redraw()
}

// redraw repaints the whole overlay. Called with the mutex held.
func (p *TermPresenter) redraw() {
	var sb strings.Builder

	sb.WriteString(ansiClear)

	if p.timer != "" {
		sb.WriteString(p.colored(ansiYellow, p.timer))
	}
	sb.WriteString("\r\n")

	if p.coeff != "" {
		sb.WriteString(p.colored(ansiCyan, p.coeff))
	}
	sb.WriteString("\r\n\r\n")

	for _, line := range strings.Split(p.caption, "\n") {
		sb.WriteString(p.colored(ansiBoldWhite, line))
		sb.WriteString("\r\n")
	}

	fmt.Fprint(p.out, sb.String())
}

func (p *TermPresenter) colored(code, text string) string {
	if !p.color {
		return text
	}
	return code + text + ansiReset
}
