// Package bytefmt provides byte-count formatting for Boltscope.
//
// Storage statistics and file sizes are tracked as raw byte counts;
// this package handles conversion to human-readable binary units
// for the status line.
package bytefmt

import "fmt"

// Format renders a byte count in binary units.
// Examples: "0 B", "512 B", "1.5 KiB", "3.2 MiB"
func Format(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
