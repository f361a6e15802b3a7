package domain

import "time"

// AutomationStatus is the lifecycle state of an automation.
type AutomationStatus string

const (
	StatusRunning   AutomationStatus = "Running"
	StatusPaused    AutomationStatus = "Paused"
	StatusCompleted AutomationStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s AutomationStatus) Valid() bool {
	switch s {
	case StatusRunning, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Automation is a one-shot scheduled dispatch of a campaign to a set of
// audience members. Schedule is nil when the automation has not been
// scheduled yet; such an automation is never due.
type Automation struct {
	ID          int64
	Name        string
	Schedule    *time.Time
	CampaignID  int64
	AudienceIDs []int64
	Status      AutomationStatus
	CreatedAt   time.Time
}

// IsDue reports whether the automation should fire at now. Matching is done
// on the calendar hour in loc: an automation scheduled at 10:15 is due for
// any now between 10:00 and 10:59 of the same day.
func (a Automation) IsDue(now time.Time, loc *time.Location) bool {
	if a.Schedule == nil {
		return false
	}
	return SameHour(*a.Schedule, now, loc)
}

// SameHour reports whether a and b fall in the same year, month, day and
// hour when observed in loc. A nil loc means UTC.
func SameHour(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	a, b = a.In(loc), b.In(loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd && a.Hour() == b.Hour()
}
