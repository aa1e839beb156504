package gamemath

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders d as MM:SS after rounding to whole seconds.
func FormatDuration(d time.Duration) string {
	total := math.Round(d.Seconds())
	minutes := int(math.Floor(total / 60))
	seconds := int(math.Mod(total, 60))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// TicksToDuration converts fixed-rate update ticks into wall time.
func TicksToDuration(ticks, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(ticks) * time.Second / time.Duration(tps)
}
