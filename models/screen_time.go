package models

// ScreenTimeEntry is the logged device usage for a calendar day.
// Hours and minutes are validated at the request boundary (0–24 / 0–59),
// not by the store.
type ScreenTimeEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
}

func (e ScreenTimeEntry) RecordID() string { return e.ID }

func (e ScreenTimeEntry) Clone() ScreenTimeEntry { return e }

// TotalMinutes is the entry's duration in minutes.
func (e ScreenTimeEntry) TotalMinutes() int { return e.Hours*60 + e.Minutes }

type ScreenTimePatch struct {
	Date    *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Hours   *int    `json:"hours" binding:"omitempty,min=0,max=24"`
	Minutes *int    `json:"minutes" binding:"omitempty,min=0,max=59"`
}

func (p ScreenTimePatch) ApplyTo(e ScreenTimeEntry) ScreenTimeEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Hours != nil {
		e.Hours = *p.Hours
	}
	if p.Minutes != nil {
		e.Minutes = *p.Minutes
	}
	return e
}
