package display

import (
	"fmt"
	"time"
)

// FormatDuration renders an elapsed duration compactly: sub-minute runs as
// seconds, longer ones as minutes and seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

// Plural returns the singular or plural form of noun for n. Only the
// regular "+s" case is handled, which covers everything we log.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
