package models

// TherapySession is one journaled session. Topics behave as an
// order-preserving set; the service deduplicates them on write.
type TherapySession struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Topics     []string `json:"topics"`
	Reflection string   `json:"reflection"`
	Timestamp  string   `json:"timestamp"`
}

func (s TherapySession) RecordID() string { return s.ID }

func (s TherapySession) Clone() TherapySession {
	out := s
	out.Topics = append([]string(nil), s.Topics...)
	return out
}

type TherapyPatch struct {
	Date       *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Topics     []string `json:"topics"`
	Reflection *string  `json:"reflection" binding:"omitempty,notblank"`
}

func (p TherapyPatch) ApplyTo(s TherapySession) TherapySession {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Topics != nil {
		s.Topics = append([]string(nil), p.Topics...)
	}
	if p.Reflection != nil {
		s.Reflection = *p.Reflection
	}
	return s
}
