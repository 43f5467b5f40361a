// Package segment partitions an audio duration into fixed-length windows.
package segment

import "math"

// DefaultLength is the window length in seconds.
const DefaultLength = 600.0

// Window is the half-open interval [Start, End) in seconds.
type Window struct {
	Index int
	Start float64
	End   float64
}

// Duration returns End - Start.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// Split returns ceil(duration/length) contiguous windows covering
// [0, duration). Every window is length seconds long except possibly the
// last, which is truncated to duration. A non-positive duration or length
// yields no windows.
func Split(duration, length float64) []Window {
	if duration <= 0 || length <= 0 {
		return nil
	}

	n := int(math.Ceil(duration / length))
	windows := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		start := float64(i) * length
		end := math.Min(float64(i+1)*length, duration)
		windows = append(windows, Window{Index: i, Start: start, End: end})
	}
	return windows
}
