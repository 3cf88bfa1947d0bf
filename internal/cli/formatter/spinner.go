package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StartSpinner animates a waiting indicator with the given message on
// stdout and returns a function that stops it and clears the line. The
// stop function is safe to call more than once.
func StartSpinner(message string) func() {
	return startSpinner(os.Stdout, message)
}

func startSpinner(w io.Writer, message string) func() {
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-stop:
				fmt.Fprint(w, "\r\033[K")
				return
			case <-ticker.C:
				glyph := spinnerFrames[frame%len(spinnerFrames)]
				fmt.Fprintf(w, "\r  %s %s", StylePurple.Render(glyph), Dim(message))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
		})
	}
}
