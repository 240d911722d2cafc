package catalog

import "time"

// RecencyWindow is how long after release a shoe counts as new.
const RecencyWindow = 30 * 24 * time.Hour

// IsNewShoe reports whether releaseDate falls inside the default window ending at now.
func IsNewShoe(releaseDate, now time.Time) bool {
	return IsWithinWindow(releaseDate, now, RecencyWindow)
}

// IsWithinWindow reports whether releaseDate is in (now-window, now].
// Unreleased shoes are not new.
func IsWithinWindow(releaseDate, now time.Time, window time.Duration) bool {
	if releaseDate.After(now) {
		return false
	}
	return now.Sub(releaseDate) < window
}

// NewShoePredicate binds a clock and window into the predicate ResolveVariant takes.
// A zero window falls back to RecencyWindow.
func NewShoePredicate(now func() time.Time, window time.Duration) func(time.Time) bool {
	if now == nil {
		now = time.Now
	}
	if window <= 0 {
		window = RecencyWindow
	}
	return func(releaseDate time.Time) bool {
		return IsWithinWindow(releaseDate, now(), window)
	}
}
