package services

import (
	"context"
	"time"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/cache"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/utils"
)

const triggerFrequencyKey = "triggers"

// AllergyService owns the allergy-episode log: CRUD, the recent-N view
// and the trigger frequency table.
type AllergyService struct {
	store    *store.Store[models.AllergyEpisode]
	triggers *cache.Cache[map[string]int]
	delay    Latency
	now      func() time.Time
}

func NewAllergyService(st *store.Store[models.AllergyEpisode], freqTTL time.Duration, delay Latency) *AllergyService {
	return &AllergyService{
		store:    st,
		triggers: cache.New[map[string]int](freqTTL),
		delay:    delay,
		now:      time.Now,
	}
}

func (s *AllergyService) GetAll(ctx context.Context) []models.AllergyEpisode {
	wait(s.delay.List)
	return s.store.All()
}

func (s *AllergyService) GetByID(ctx context.Context, id string) *models.AllergyEpisode {
	wait(s.delay.Get)
	episode, ok := s.store.Find(id)
	if !ok {
		return nil
	}
	return &episode
}

// Create assigns the id only; episodes carry their own datetime and no
// separate creation timestamp.
func (s *AllergyService) Create(ctx context.Context, episode models.AllergyEpisode) models.AllergyEpisode {
	wait(s.delay.Create)
	episode.ID = utils.NewID(s.now())
	return s.store.Append(episode)
}

func (s *AllergyService) Update(ctx context.Context, id string, patch models.AllergyPatch) (models.AllergyEpisode, error) {
	wait(s.delay.Update)
	return s.store.Replace(id, patch.ApplyTo)
}

func (s *AllergyService) Delete(ctx context.Context, id string) (models.AllergyEpisode, error) {
	wait(s.delay.Delete)
	return s.store.Remove(id)
}

// RecentEpisodes returns up to limit episodes, newest first by datetime.
func (s *AllergyService) RecentEpisodes(ctx context.Context, limit int) []models.AllergyEpisode {
	wait(s.delay.Metric)
	return recentByDate(s.store.All(), limit, func(e models.AllergyEpisode) (time.Time, error) {
		return time.Parse(time.RFC3339, e.Datetime)
	})
}

// TriggerFrequency maps each trigger to the number of episodes it caused.
func (s *AllergyService) TriggerFrequency(ctx context.Context) map[string]int {
	wait(s.delay.Metric)

	rev := s.store.Revision()
	if v, ok := s.triggers.Get(triggerFrequencyKey, rev); ok {
		return copyCounts(v)
	}

	counts := map[string]int{}
	for _, episode := range s.store.All() {
		counts[episode.Trigger]++
	}

	s.triggers.Put(triggerFrequencyKey, rev, counts)
	return copyCounts(counts)
}
