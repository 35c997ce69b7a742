package overlay

import "fmt"

// FormatDistance renders a remaining distance in metres for the nav block.
// Values of a kilometre or more switch to a one-decimal km form. Missing or
// negative values render as the "--" placeholder.
func FormatDistance(dist *float64) string {
	if dist == nil || *dist < 0 {
		return "--"
	}
	if *dist >= 1000 {
		return fmt.Sprintf("%.1f km", *dist/1000.0)
	}
	return fmt.Sprintf("%d m", int(*dist))
}

// FormatETA renders a remaining time given in seconds. An hour or more uses
// the "Nh MMm" form, shorter times "MM:SS". Missing or negative values render
// as the "--" placeholder.
func FormatETA(eta *float64) string {
	if eta == nil || *eta < 0 {
		return "--"
	}
	total := int(*eta)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatSpeed renders a speed in km/h with one decimal, or "--" when missing.
func FormatSpeed(speed *float64) string {
	if speed == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f km/h", *speed)
}
