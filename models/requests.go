package models

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Create payloads. Validation happens here at the request boundary; the
// store accepts whatever it is handed.

type CreateMoodRequest struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Mood  string `json:"mood" binding:"required,oneof=happy sad anxious angry neutral excited"`
	Notes string `json:"notes"`
}

func (r CreateMoodRequest) Entry() MoodEntry {
	return MoodEntry{Date: r.Date, Mood: r.Mood, Notes: r.Notes}
}

type CreateGratitudeRequest struct {
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Content string `json:"content" binding:"required,notblank"`
}

func (r CreateGratitudeRequest) Entry() GratitudeEntry {
	return GratitudeEntry{Date: r.Date, Content: r.Content}
}

type CreateScreenTimeRequest struct {
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Hours   int    `json:"hours" binding:"min=0,max=24"`
	Minutes int    `json:"minutes" binding:"min=0,max=59"`
}

func (r CreateScreenTimeRequest) Entry() ScreenTimeEntry {
	return ScreenTimeEntry{Date: r.Date, Hours: r.Hours, Minutes: r.Minutes}
}

type CreateTherapyRequest struct {
	Date       string   `json:"date" binding:"required,datetime=2006-01-02"`
	Topics     []string `json:"topics"`
	Reflection string   `json:"reflection" binding:"required,notblank"`
}

func (r CreateTherapyRequest) Session() TherapySession {
	return TherapySession{Date: r.Date, Topics: r.Topics, Reflection: r.Reflection}
}

type CreateAllergyRequest struct {
	Datetime string   `json:"datetime" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Trigger  string   `json:"trigger" binding:"required,notblank"`
	Symptoms []string `json:"symptoms"`
	Remedies []string `json:"remedies"`
}

func (r CreateAllergyRequest) Episode() AllergyEpisode {
	return AllergyEpisode{Datetime: r.Datetime, Trigger: r.Trigger, Symptoms: r.Symptoms, Remedies: r.Remedies}
}

// RegisterValidators installs custom rules into gin's binding engine.
// "notblank" rejects strings that are empty after trimming whitespace,
// which `required` alone does not.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}
