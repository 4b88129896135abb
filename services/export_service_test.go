package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
)

type exportFixture struct {
	moods      []models.MoodEntry
	gratitude  []models.GratitudeEntry
	screenTime []models.ScreenTimeEntry
	therapy    []models.TherapySession
	allergies  []models.AllergyEpisode
}

func newExportService(fix exportFixture) *ExportService {
	moods := newMoodService(fix.moods)
	gratitude := newGratitudeService(fix.gratitude)
	screenTime := newScreenTimeService(fix.screenTime)
	therapy := newTherapyService(fix.therapy)
	allergies := newAllergyService(fix.allergies)

	svc := NewExportService(moods, gratitude, screenTime, therapy, allergies, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func allCategories() []string {
	return []string{"mood", "therapy", "allergies", "gratitude", "screenTime"}
}

func TestExportCSVBlocks(t *testing.T) {
	svc := newExportService(exportFixture{
		moods: []models.MoodEntry{
			{ID: "m1", Date: "2024-06-10", Mood: models.MoodHappy, Notes: "walk", Timestamp: "2024-06-10T08:00:00Z"},
		},
		gratitude: []models.GratitudeEntry{
			{ID: "g1", Date: "2024-06-11", Content: "good coffee", Timestamp: "2024-06-11T08:00:00Z"},
		},
	})

	result, err := svc.Export(context.Background(), ExportRequest{
		Categories: allCategories(),
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-20",
		Format:     "csv",
	})
	require.NoError(t, err)
	assert.Equal(t, "mindfulpath-export-2024-06-01-to-2024-06-20.csv", result.Filename)

	body := string(result.Body)
	assert.Contains(t, body, "MOOD DATA\nid,date,mood,notes,timestamp\nm1,2024-06-10,happy,walk,2024-06-10T08:00:00Z\n")
	assert.Contains(t, body, "GRATITUDE DATA\nid,date,content,timestamp\ng1,2024-06-11,good coffee,2024-06-11T08:00:00Z\n")
	// empty categories emit no block at all
	assert.NotContains(t, body, "THERAPY DATA")
	assert.NotContains(t, body, "SCREENTIME DATA")
}

func TestExportCSVJoinsArraysAndQuotes(t *testing.T) {
	svc := newExportService(exportFixture{
		therapy: []models.TherapySession{
			{ID: "t1", Date: "2024-06-10", Topics: []string{"work stress", "boundaries"},
				Reflection: "hard, but useful", Timestamp: "2024-06-10T16:00:00Z"},
		},
	})

	result, err := svc.Export(context.Background(), ExportRequest{
		Categories: []string{"therapy"},
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-20",
		Format:     "csv",
	})
	require.NoError(t, err)

	body := string(result.Body)
	assert.Contains(t, body, "work stress; boundaries")
	// comma in the reflection forces quoting
	assert.Contains(t, body, `"hard, but useful"`)
}

func TestExportJSONEnvelope(t *testing.T) {
	svc := newExportService(exportFixture{
		moods: []models.MoodEntry{
			{ID: "m1", Date: "2024-06-10", Mood: models.MoodHappy, Timestamp: "2024-06-10T08:00:00Z"},
		},
	})

	result, err := svc.Export(context.Background(), ExportRequest{
		Categories: []string{"mood"},
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-20",
		Format:     "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", result.ContentType)

	var envelope struct {
		ExportDate string `json:"exportDate"`
		DateRange  struct {
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"dateRange"`
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(result.Body, &envelope))

	assert.NotEmpty(t, envelope.ExportDate)
	assert.Equal(t, "2024-06-01", envelope.DateRange.StartDate)
	assert.Equal(t, "2024-06-20", envelope.DateRange.EndDate)
	require.Contains(t, envelope.Data, "mood")

	var moods []models.MoodEntry
	require.NoError(t, json.Unmarshal(envelope.Data["mood"], &moods))
	require.Len(t, moods, 1)
	assert.Equal(t, "m1", moods[0].ID)
}

func TestExportDateRangeIsInclusive(t *testing.T) {
	svc := newExportService(exportFixture{
		moods: []models.MoodEntry{
			{ID: "start", Date: "2024-06-01", Mood: models.MoodHappy},
			{ID: "end", Date: "2024-06-10", Mood: models.MoodSad},
			{ID: "after", Date: "2024-06-11", Mood: models.MoodSad},
		},
		allergies: []models.AllergyEpisode{
			// on the end date itself, inside the window
			{ID: "onEnd", Datetime: time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local).Format(time.RFC3339), Trigger: "pollen"},
		},
	})

	counts, err := svc.Counts(context.Background(), "2024-06-01", "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2, counts["mood"])
	assert.Equal(t, 1, counts["allergies"])
	assert.Equal(t, 0, counts["gratitude"])
}

func TestExportRejectsInvertedRange(t *testing.T) {
	svc := newExportService(exportFixture{})
	_, err := svc.Counts(context.Background(), "2024-06-10", "2024-06-01")
	assert.Error(t, err)
}

func TestExportOnlySelectedCategories(t *testing.T) {
	svc := newExportService(exportFixture{
		moods:     []models.MoodEntry{{ID: "m1", Date: "2024-06-10", Mood: models.MoodHappy}},
		gratitude: []models.GratitudeEntry{{ID: "g1", Date: "2024-06-10", Content: "x"}},
	})

	result, err := svc.Export(context.Background(), ExportRequest{
		Categories: []string{"gratitude"},
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-20",
		Format:     "csv",
	})
	require.NoError(t, err)

	body := string(result.Body)
	assert.True(t, strings.Contains(body, "GRATITUDE DATA"))
	assert.False(t, strings.Contains(body, "MOOD DATA"))
}
