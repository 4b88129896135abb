package services

import (
	"context"
	"sort"
	"time"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/cache"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/utils"
)

const streakKey = "streak"

// GratitudeService owns the gratitude collection: CRUD plus today's
// entry and the running streak.
type GratitudeService struct {
	store  *store.Store[models.GratitudeEntry]
	streak *cache.Cache[int]
	delay  Latency
	now    func() time.Time
}

// NewGratitudeService wires the service to its store. Streak results are
// memoized with no age limit; a store mutation is the only thing that
// invalidates them.
func NewGratitudeService(st *store.Store[models.GratitudeEntry], delay Latency) *GratitudeService {
	return &GratitudeService{
		store:  st,
		streak: cache.New[int](0),
		delay:  delay,
		now:    time.Now,
	}
}

func (s *GratitudeService) GetAll(ctx context.Context) []models.GratitudeEntry {
	wait(s.delay.List)
	return s.store.All()
}

func (s *GratitudeService) GetByID(ctx context.Context, id string) *models.GratitudeEntry {
	wait(s.delay.Get)
	entry, ok := s.store.Find(id)
	if !ok {
		return nil
	}
	return &entry
}

func (s *GratitudeService) Create(ctx context.Context, entry models.GratitudeEntry) models.GratitudeEntry {
	wait(s.delay.Create)
	now := s.now()
	entry.ID = utils.NewID(now)
	entry.Timestamp = now.UTC().Format(time.RFC3339)
	return s.store.Append(entry)
}

func (s *GratitudeService) Update(ctx context.Context, id string, patch models.GratitudePatch) (models.GratitudeEntry, error) {
	wait(s.delay.Update)
	return s.store.Replace(id, patch.ApplyTo)
}

func (s *GratitudeService) Delete(ctx context.Context, id string) (models.GratitudeEntry, error) {
	wait(s.delay.Delete)
	return s.store.Remove(id)
}

func (s *GratitudeService) TodaysEntry(ctx context.Context) *models.GratitudeEntry {
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

// CurrentStreak counts consecutive calendar days with an entry, walking
// backward from today. No entry today means a streak of zero.
func (s *GratitudeService) CurrentStreak(ctx context.Context) int {
	wait(s.delay.Metric)

	rev := s.store.Revision()
	if v, ok := s.streak.Get(streakKey, rev); ok {
		return v
	}

	var days []time.Time
	for _, entry := range s.store.All() {
		day, err := utils.ParseDay(entry.Date)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := s.now()
	streak := 0
	for _, day := range days {
		// each entry must sit exactly one day further back than the last
		if utils.DaysBetween(day, today) != streak {
			break
		}
		streak++
	}

	s.streak.Put(streakKey, rev, streak)
	return streak
}
