// Package progress renders the console progress line printed during
// verbose training.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	full  = "█"
	empty = "▁"

	// Width is the default bar width in characters.
	Width = 50

	// costCap is the largest cost printed verbatim.
	costCap = 1_000_000
)

// Bar returns a progress bar of size characters filled to percentage (0-100).
// Out-of-range percentages are clamped.
func Bar(percentage float64, size int) string {
	filled := int(math.Round(percentage * float64(size) / 100))
	filled = max(0, min(filled, size))
	return strings.Repeat(full, filled) + strings.Repeat(empty, size-filled)
}

// Display writes the progress of mini-batch step out of last within epoch
// out of epochs, followed by the current cost.
func Display(w io.Writer, step, last int, cost float64, epoch, epochs int) {
	percentage := 100.0
	if last > 0 {
		percentage = float64(step) * 100 / float64(last)
	}

	fmt.Fprintf(w, "%s %.2f%% EPOCH %d/%d\n", Bar(percentage, Width), percentage, epoch, epochs)
	if cost > costCap {
		fmt.Fprintln(w, "cost: +1000000")
		return
	}
	fmt.Fprintf(w, "cost: %.20f\n", cost)
}
