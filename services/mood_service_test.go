package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/utils"
)

// fixedNow pins "today" for every test in this package.
var fixedNow = time.Date(2024, 6, 20, 15, 30, 0, 0, time.Local)

func day(offset int) string {
	return utils.FormatDay(fixedNow.AddDate(0, 0, offset))
}

func newMoodService(entries []models.MoodEntry) *MoodService {
	svc := NewMoodService(store.New(entries), Latency{})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestMoodCreateThenGetByID(t *testing.T) {
	svc := newMoodService(nil)
	ctx := context.Background()

	created := svc.Create(ctx, models.MoodEntry{Date: day(0), Mood: models.MoodHappy, Notes: "sunny"})
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.Timestamp)

	got := svc.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
}

func TestMoodGetByIDAbsentReturnsNil(t *testing.T) {
	svc := newMoodService(nil)
	assert.Nil(t, svc.GetByID(context.Background(), "nope"))
}

func TestMoodUpdatePreservesUnpatchedFields(t *testing.T) {
	svc := newMoodService([]models.MoodEntry{
		{ID: "1", Date: day(-1), Mood: models.MoodSad, Notes: "rough day", Timestamp: "2024-06-19T20:00:00Z"},
	})

	happy := models.MoodHappy
	updated, err := svc.Update(context.Background(), "1", models.MoodPatch{Mood: &happy})
	require.NoError(t, err)
	assert.Equal(t, models.MoodHappy, updated.Mood)
	assert.Equal(t, "rough day", updated.Notes)
	assert.Equal(t, day(-1), updated.Date)
	assert.Equal(t, "1", updated.ID)
}

func TestMoodUpdateAbsentID(t *testing.T) {
	svc := newMoodService(nil)
	_, err := svc.Update(context.Background(), "nope", models.MoodPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMoodDelete(t *testing.T) {
	svc := newMoodService([]models.MoodEntry{
		{ID: "1", Date: day(-2), Mood: models.MoodNeutral},
		{ID: "2", Date: day(-1), Mood: models.MoodHappy},
	})
	ctx := context.Background()

	removed, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", removed.ID)
	assert.Len(t, svc.GetAll(ctx), 1)

	_, err = svc.Delete(ctx, "1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, svc.GetAll(ctx), 1)
}

func TestMoodTodaysEntry(t *testing.T) {
	svc := newMoodService([]models.MoodEntry{
		{ID: "1", Date: day(-1), Mood: models.MoodSad},
		{ID: "2", Date: day(0), Mood: models.MoodHappy},
		{ID: "3", Date: day(0), Mood: models.MoodAngry}, // duplicate date: first in store order wins
	})

	entry := svc.TodaysEntry(context.Background())
	require.NotNil(t, entry)
	assert.Equal(t, "2", entry.ID)
}

func TestMoodTodaysEntryNone(t *testing.T) {
	svc := newMoodService([]models.MoodEntry{{ID: "1", Date: day(-1), Mood: models.MoodSad}})
	assert.Nil(t, svc.TodaysEntry(context.Background()))
}

func TestMoodWeeklyTrendsBoundary(t *testing.T) {
	svc := newMoodService([]models.MoodEntry{
		{ID: "edge", Date: day(-7), Mood: models.MoodNeutral},
		{ID: "out", Date: day(-8), Mood: models.MoodSad},
		{ID: "in", Date: day(-2), Mood: models.MoodHappy},
	})

	trends := svc.WeeklyTrends(context.Background())
	require.Len(t, trends, 2)
	// ascending by date, the 7-day-old entry first
	assert.Equal(t, "edge", trends[0].ID)
	assert.Equal(t, "in", trends[1].ID)
}

func TestMoodMonthlyTrendsUsesCalendarMonth(t *testing.T) {
	// fixedNow is June 20; the window starts May 20, not 30 days back
	svc := newMoodService([]models.MoodEntry{
		{ID: "in", Date: "2024-05-20", Mood: models.MoodNeutral},
		{ID: "out", Date: "2024-05-19", Mood: models.MoodSad},
	})

	trends := svc.MonthlyTrends(context.Background())
	require.Len(t, trends, 1)
	assert.Equal(t, "in", trends[0].ID)
}

func TestMoodGetAllIdempotent(t *testing.T) {
	svc := newMoodService([]models.MoodEntry{
		{ID: "1", Date: day(-1), Mood: models.MoodSad},
		{ID: "2", Date: day(0), Mood: models.MoodHappy},
	})
	ctx := context.Background()
	assert.Equal(t, svc.GetAll(ctx), svc.GetAll(ctx))
}
