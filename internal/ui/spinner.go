package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated progress indicator during network waits.
// Outside a TTY it degrades to a single plain line.
type Spinner struct {
	message string
	done    chan struct{}
	wg      sync.WaitGroup
	tty     bool
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
		tty:     isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Start begins the animation. Without a TTY it prints the message once.
func (s *Spinner) Start() {
	if !s.tty {
		fmt.Printf("%s...\n", s.message)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.done:
				fmt.Print("\r\033[K")
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", Bold.Render(spinnerFrames[frame%len(spinnerFrames)]), s.message)
				frame++
			}
		}
	}()
}

// Stop ends the animation and clears the spinner line.
func (s *Spinner) Stop() {
	if !s.tty {
		return
	}
	close(s.done)
	s.wg.Wait()
}
