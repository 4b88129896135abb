package models

// Mood values accepted on a mood entry.
const (
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodAnxious = "anxious"
	MoodAngry   = "angry"
	MoodNeutral = "neutral"
	MoodExcited = "excited"
)

// MoodEntry is one logged mood for a calendar day.
type MoodEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Mood      string `json:"mood"`
	Notes     string `json:"notes,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (e MoodEntry) RecordID() string { return e.ID }

func (e MoodEntry) Clone() MoodEntry { return e }

// MoodPatch carries the fields an update may overwrite. Nil fields are kept.
type MoodPatch struct {
	Date  *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Mood  *string `json:"mood" binding:"omitempty,oneof=happy sad anxious angry neutral excited"`
	Notes *string `json:"notes"`
}

func (p MoodPatch) ApplyTo(e MoodEntry) MoodEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}
