package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// ProgressIndicator shows a spinner followed by the number of completed tasks.
type ProgressIndicator struct {
	mu         *sync.RWMutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	StopMsg    string
	hideCursor bool
	total      int
	done       int
	stopped    bool
	stopChan   chan struct{}
}

const (
	successColor = "\x1b[32m"
	defaultColor = "\x1b[0m"
)

// NewProgressIndicator instantiates a new progress indicator for total tasks.
// A zero total shows only the spinner.
func NewProgressIndicator(msg string, total int, d time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		mu:         &sync.RWMutex{},
		delay:      d,
		writer:     os.Stderr,
		message:    msg,
		hideCursor: true,
		total:      total,
		stopChan:   make(chan struct{}),
	}
}

// SetOutput changes the destination of the indicator. It has to be called before Start.
func (pi *ProgressIndicator) SetOutput(w io.Writer) {
	pi.writer = w
}

// Start starts the progress indicator.
func (pi *ProgressIndicator) Start() {
	if pi.hideCursor && runtime.GOOS != "windows" {
		// hides the cursor
		fmt.Fprint(pi.writer, "\033[?25l")
	}

	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-pi.stopChan:
					return
				default:
					pi.mu.Lock()
					if pi.stopped {
						pi.mu.Unlock()
						return
					}
					pi.render(r)
					pi.mu.Unlock()
					time.Sleep(pi.delay)
				}
			}
		}
	}()
}

// Increment records a completed task.
func (pi *ProgressIndicator) Increment() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	pi.done++
}

// Done returns the number of completed tasks.
func (pi *ProgressIndicator) Done() int {
	pi.mu.RLock()
	defer pi.mu.RUnlock()

	return pi.done
}

// Stop stops the progress indicator. Calling it more than once has no effect.
func (pi *ProgressIndicator) Stop() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if pi.stopped {
		return
	}
	pi.stopped = true
	pi.clear()
	pi.RestoreCursor()
	if len(pi.StopMsg) > 0 {
		fmt.Fprint(pi.writer, pi.StopMsg)
	}
	close(pi.stopChan)
}

// RestoreCursor restores back the cursor visibility.
func (pi *ProgressIndicator) RestoreCursor() {
	if pi.hideCursor && runtime.GOOS != "windows" {
		// makes the cursor visible
		fmt.Fprint(pi.writer, "\033[?25h")
	}
}

// render prints the current state. Caller must hold the locker.
func (pi *ProgressIndicator) render(r rune) {
	output := fmt.Sprintf("\r%s%s %c%s", pi.message, successColor, r, defaultColor)
	if pi.total > 0 {
		output += fmt.Sprintf(" %d/%d", pi.done, pi.total)
	}
	fmt.Fprint(pi.writer, output)
	pi.lastOutput = output
}

// clear deletes the last line. Caller must hold the the locker.
func (pi *ProgressIndicator) clear() {
	n := utf8.RuneCountInString(pi.lastOutput)
	if runtime.GOOS == "windows" {
		clearString := "\r" + strings.Repeat(" ", n) + "\r"
		fmt.Fprint(pi.writer, clearString)
		pi.lastOutput = ""
		return
	}
	for _, c := range []string{"\b", "\127", "\b", "\033[K"} { // "\033[K" for macOS Terminal
		fmt.Fprint(pi.writer, strings.Repeat(c, n))
	}
	fmt.Fprint(pi.writer, "\r\033[K") // clear line
	pi.lastOutput = ""
}
