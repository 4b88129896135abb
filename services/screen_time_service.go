package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/cache"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/utils"
)

// ScreenTimeService owns the screen-time collection: CRUD, today's
// entry, trend windows and the windowed average.
type ScreenTimeService struct {
	store    *store.Store[models.ScreenTimeEntry]
	averages *cache.Cache[int]
	delay    Latency
	now      func() time.Time
}

func NewScreenTimeService(st *store.Store[models.ScreenTimeEntry], avgTTL time.Duration, delay Latency) *ScreenTimeService {
	return &ScreenTimeService{
		store:    st,
		averages: cache.New[int](avgTTL),
		delay:    delay,
		now:      time.Now,
	}
}

func (s *ScreenTimeService) GetAll(ctx context.Context) []models.ScreenTimeEntry {
	wait(s.delay.List)
	return s.store.All()
}

func (s *ScreenTimeService) GetByID(ctx context.Context, id string) *models.ScreenTimeEntry {
	wait(s.delay.Get)
	entry, ok := s.store.Find(id)
	if !ok {
		return nil
	}
	return &entry
}

// Create assigns the id only; screen-time entries carry no creation
// timestamp field.
func (s *ScreenTimeService) Create(ctx context.Context, entry models.ScreenTimeEntry) models.ScreenTimeEntry {
	wait(s.delay.Create)
	entry.ID = utils.NewID(s.now())
	return s.store.Append(entry)
}

func (s *ScreenTimeService) Update(ctx context.Context, id string, patch models.ScreenTimePatch) (models.ScreenTimeEntry, error) {
	wait(s.delay.Update)
	return s.store.Replace(id, patch.ApplyTo)
}

func (s *ScreenTimeService) Delete(ctx context.Context, id string) (models.ScreenTimeEntry, error) {
	wait(s.delay.Delete)
	return s.store.Remove(id)
}

func (s *ScreenTimeService) TodaysEntry(ctx context.Context) *models.ScreenTimeEntry {
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

func (s *ScreenTimeService) WeeklyTrends(ctx context.Context) []models.ScreenTimeEntry {
	wait(s.delay.Metric)
	cutoff := utils.DayStart(s.now()).AddDate(0, 0, -7)
	return s.trendsSince(cutoff)
}

func (s *ScreenTimeService) MonthlyTrends(ctx context.Context) []models.ScreenTimeEntry {
	wait(s.delay.Metric)
	cutoff := utils.DayStart(s.now()).AddDate(0, -1, 0)
	return s.trendsSince(cutoff)
}

// AverageScreenTime returns the mean daily minutes over the last `days`
// days, rounded to the nearest minute, or 0 when the window is empty.
func (s *ScreenTimeService) AverageScreenTime(ctx context.Context, days int) int {
	wait(s.delay.Metric)

	rev := s.store.Revision()
	key := fmt.Sprintf("avg_%d", days)
	if v, ok := s.averages.Get(key, rev); ok {
		return v
	}

	cutoff := utils.DayStart(s.now()).AddDate(0, 0, -days)
	total, count := 0, 0
	for _, entry := range s.store.All() {
		day, err := utils.ParseDay(entry.Date)
		if err != nil || day.Before(cutoff) {
			continue
		}
		total += entry.TotalMinutes()
		count++
	}

	average := 0
	if count > 0 {
		average = int(math.Round(float64(total) / float64(count)))
	}
	s.averages.Put(key, rev, average)
	return average
}

func (s *ScreenTimeService) trendsSince(cutoff time.Time) []models.ScreenTimeEntry {
	type dated struct {
		entry models.ScreenTimeEntry
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

	out := make([]models.ScreenTimeEntry, 0, len(window))
	for _, d := range window {
		out = append(out, d.entry)
	}
	return out
}
