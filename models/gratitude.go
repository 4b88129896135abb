package models

// GratitudeEntry is one gratitude note for a calendar day.
type GratitudeEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (e GratitudeEntry) RecordID() string { return e.ID }

func (e GratitudeEntry) Clone() GratitudeEntry { return e }

type GratitudePatch struct {
	Date    *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Content *string `json:"content" binding:"omitempty,notblank"`
}

func (p GratitudePatch) ApplyTo(e GratitudeEntry) GratitudeEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	return e
}
