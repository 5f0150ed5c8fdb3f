package progress

import "time"

// Streak tracks consecutive active days.
type Streak struct {
	Current int
	Longest int
	// LastActivity is the date (not instant) of the most recent activity.
	// The zero value means no prior activity.
	LastActivity time.Time
}

// sameDay compares calendar dates, ignoring the time of day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Advance updates the streak for an activity happening at now. An activity
// on the same calendar day leaves the streak unchanged, the next day extends
// it, and any larger gap (or no prior activity) resets it to 1. Longest is
// the running maximum.
func (s Streak) Advance(now time.Time) Streak {
	switch {
	case s.LastActivity.IsZero():
		s.Current = 1
	case sameDay(s.LastActivity, now):
		// already counted today
	case sameDay(s.LastActivity.AddDate(0, 0, 1), now):
		s.Current++
	default:
		s.Current = 1
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastActivity = now
	return s
}
