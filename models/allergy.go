package models

// AllergyEpisode is one reaction event with its trigger, symptoms and
// remedies. Unlike the daily entities it carries a full timestamp.
type AllergyEpisode struct {
	ID       string   `json:"id"`
	Datetime string   `json:"datetime"` // RFC 3339
	Trigger  string   `json:"trigger"`
	Symptoms []string `json:"symptoms"`
	Remedies []string `json:"remedies"`
}

func (e AllergyEpisode) RecordID() string { return e.ID }

func (e AllergyEpisode) Clone() AllergyEpisode {
	out := e
	out.Symptoms = append([]string(nil), e.Symptoms...)
	out.Remedies = append([]string(nil), e.Remedies...)
	return out
}

type AllergyPatch struct {
	Datetime *string  `json:"datetime" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Trigger  *string  `json:"trigger" binding:"omitempty,notblank"`
	Symptoms []string `json:"symptoms"`
	Remedies []string `json:"remedies"`
}

func (p AllergyPatch) ApplyTo(e AllergyEpisode) AllergyEpisode {
	if p.Datetime != nil {
		e.Datetime = *p.Datetime
	}
	if p.Trigger != nil {
		e.Trigger = *p.Trigger
	}
	if p.Symptoms != nil {
		e.Symptoms = append([]string(nil), p.Symptoms...)
	}
	if p.Remedies != nil {
		e.Remedies = append([]string(nil), p.Remedies...)
	}
	return e
}
