package services

import (
	"context"
	"sort"
	"time"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/utils"
)

// MoodService owns the mood collection: CRUD plus today's entry and the
// weekly/monthly trend windows.
type MoodService struct {
	store *store.Store[models.MoodEntry]
	delay Latency
	now   func() time.Time
}

func NewMoodService(st *store.Store[models.MoodEntry], delay Latency) *MoodService {
	return &MoodService{store: st, delay: delay, now: time.Now}
}

func (s *MoodService) GetAll(ctx context.Context) []models.MoodEntry {
	wait(s.delay.List)
	return s.store.All()
}

// GetByID returns nil when no entry matches; absence is not an error here.
func (s *MoodService) GetByID(ctx context.Context, id string) *models.MoodEntry {
	wait(s.delay.Get)
	entry, ok := s.store.Find(id)
	if !ok {
		return nil
	}
	return &entry
}

func (s *MoodService) Create(ctx context.Context, entry models.MoodEntry) models.MoodEntry {
	wait(s.delay.Create)
	now := s.now()
	entry.ID = utils.NewID(now)
	entry.Timestamp = now.UTC().Format(time.RFC3339)
	return s.store.Append(entry)
}

func (s *MoodService) Update(ctx context.Context, id string, patch models.MoodPatch) (models.MoodEntry, error) {
	wait(s.delay.Update)
	return s.store.Replace(id, patch.ApplyTo)
}

func (s *MoodService) Delete(ctx context.Context, id string) (models.MoodEntry, error) {
	wait(s.delay.Delete)
	return s.store.Remove(id)
}

// TodaysEntry returns the first entry dated today (local time), or nil.
func (s *MoodService) TodaysEntry(ctx context.Context) *models.MoodEntry {
	wait(s.delay.Get)
	today := utils.FormatDay(s.now())
	for _, entry := range s.store.All() {
		if entry.Date == today {
			e := entry
			return &e
		}
	}
	return nil
}

// WeeklyTrends returns entries from the last 7 days, oldest first.
func (s *MoodService) WeeklyTrends(ctx context.Context) []models.MoodEntry {
	wait(s.delay.Metric)
	cutoff := utils.DayStart(s.now()).AddDate(0, 0, -7)
	return s.trendsSince(cutoff)
}

// MonthlyTrends returns entries from the last calendar month, oldest
// first. The window is the current date with the month decremented, so
// its length varies between 28 and 31 days.
func (s *MoodService) MonthlyTrends(ctx context.Context) []models.MoodEntry {
	wait(s.delay.Metric)
	cutoff := utils.DayStart(s.now()).AddDate(0, -1, 0)
	return s.trendsSince(cutoff)
}

func (s *MoodService) trendsSince(cutoff time.Time) []models.MoodEntry {
	type dated struct {
		entry models.MoodEntry
		day   time.Time
	}
	var window []dated
	for _, entry := range s.store.All() {
		day, err := utils.ParseDay(entry.Date)
		if err != nil || day.Before(cutoff) {
			continue
		}
		window = append(window, dated{entry: entry, day: day})
	}
	sort.SliceStable(window, func(i, j int) bool { return window[i].day.Before(window[j].day) })

	out := make([]models.MoodEntry, 0, len(window))
	for _, d := range window {
		out = append(out, d.entry)
	}
	return out
}
