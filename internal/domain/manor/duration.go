package manor

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders a duration the way the log speaks about time:
// "500ms" under a second, "13s" under a minute, "1m 31s" beyond. The log
// text depends on this exact contract.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	seconds := int(math.Round(d.Seconds()))
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	seconds = seconds % 60
	if seconds == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
