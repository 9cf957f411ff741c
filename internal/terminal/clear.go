// Package terminal provides small helpers for terminal output control.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases previously printed text from the terminal. The
// number of screen lines is derived from the text length and the current
// terminal width, plus one for the newline the user's Enter produced. Used to
// remove credential prompts once they have been read.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when the size probe fails
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
