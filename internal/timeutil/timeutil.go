// Package timeutil provides time formatting utilities for FFmpeg commands.
package timeutil

import "fmt"

// FormatSeconds converts seconds to the HH:MM:SS.MS form FFmpeg expects
// for time parameters like -ss (seek start) and -to (seek end). Fractional
// seconds are preserved to two decimals.
//
// Example:
//
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}
