package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

func newGratitudeService(entries []models.GratitudeEntry) *GratitudeService {
	svc := NewGratitudeService(store.New(entries), Latency{})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func gratitudeOn(id string, offset int) models.GratitudeEntry {
	return models.GratitudeEntry{ID: id, Date: day(offset), Content: "thankful"}
}

func TestStreakThreeConsecutiveDays(t *testing.T) {
	svc := newGratitudeService([]models.GratitudeEntry{
		gratitudeOn("1", 0),
		gratitudeOn("2", -1),
		gratitudeOn("3", -2),
	})
	assert.Equal(t, 3, svc.CurrentStreak(context.Background()))
}

func TestStreakBreaksOnGap(t *testing.T) {
	svc := newGratitudeService([]models.GratitudeEntry{
		gratitudeOn("1", 0),
		gratitudeOn("2", -2), // yesterday missing
	})
	assert.Equal(t, 1, svc.CurrentStreak(context.Background()))
}

func TestStreakZeroWithoutTodaysEntry(t *testing.T) {
	svc := newGratitudeService([]models.GratitudeEntry{
		gratitudeOn("1", -1),
		gratitudeOn("2", -2),
	})
	assert.Equal(t, 0, svc.CurrentStreak(context.Background()))
}

func TestStreakEmptyCollection(t *testing.T) {
	svc := newGratitudeService(nil)
	assert.Equal(t, 0, svc.CurrentStreak(context.Background()))
}

func TestStreakUnaffectedByStoreOrder(t *testing.T) {
	// inserted out of date order; the walk sorts first
	svc := newGratitudeService([]models.GratitudeEntry{
		gratitudeOn("1", -1),
		gratitudeOn("2", 0),
	})
	assert.Equal(t, 2, svc.CurrentStreak(context.Background()))
}

func TestStreakRecomputesAfterSameSizeUpdate(t *testing.T) {
	svc := newGratitudeService([]models.GratitudeEntry{gratitudeOn("1", 0)})
	ctx := context.Background()

	require.Equal(t, 1, svc.CurrentStreak(ctx))

	// moving the entry off today keeps the collection length the same,
	// but the revision bump still invalidates the cached streak
	yesterday := day(-1)
	_, err := svc.Update(ctx, "1", models.GratitudePatch{Date: &yesterday})
	require.NoError(t, err)

	assert.Equal(t, 0, svc.CurrentStreak(ctx))
}

func TestStreakCachedBetweenReads(t *testing.T) {
	svc := newGratitudeService([]models.GratitudeEntry{gratitudeOn("1", 0)})
	ctx := context.Background()

	first := svc.CurrentStreak(ctx)
	second := svc.CurrentStreak(ctx)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, svc.streak.Len())
}

func TestGratitudeTodaysEntry(t *testing.T) {
	svc := newGratitudeService([]models.GratitudeEntry{
		gratitudeOn("1", -1),
		gratitudeOn("2", 0),
	})
	entry := svc.TodaysEntry(context.Background())
	require.NotNil(t, entry)
	assert.Equal(t, "2", entry.ID)
}

func TestGratitudeCreateAssignsIDAndTimestamp(t *testing.T) {
	svc := newGratitudeService(nil)
	created := svc.Create(context.Background(), models.GratitudeEntry{Date: day(0), Content: "coffee"})
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Timestamp)
	assert.Equal(t, "coffee", created.Content)
}
