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

const topicFrequencyKey = "topics"

// TherapyService owns the therapy-session journal: CRUD, the recent-N
// view and the topic frequency table.
type TherapyService struct {
	store  *store.Store[models.TherapySession]
	topics *cache.Cache[map[string]int]
	delay  Latency
	now    func() time.Time
}

func NewTherapyService(st *store.Store[models.TherapySession], freqTTL time.Duration, delay Latency) *TherapyService {
	return &TherapyService{
		store:  st,
		topics: cache.New[map[string]int](freqTTL),
		delay:  delay,
		now:    time.Now,
	}
}

func (s *TherapyService) GetAll(ctx context.Context) []models.TherapySession {
	wait(s.delay.List)
	return s.store.All()
}

func (s *TherapyService) GetByID(ctx context.Context, id string) *models.TherapySession {
	wait(s.delay.Get)
	session, ok := s.store.Find(id)
	if !ok {
		return nil
	}
	return &session
}

func (s *TherapyService) Create(ctx context.Context, session models.TherapySession) models.TherapySession {
	wait(s.delay.Create)
	now := s.now()
	session.ID = utils.NewID(now)
	session.Timestamp = now.UTC().Format(time.RFC3339)
	session.Topics = dedupeTags(session.Topics)
	return s.store.Append(session)
}

func (s *TherapyService) Update(ctx context.Context, id string, patch models.TherapyPatch) (models.TherapySession, error) {
	wait(s.delay.Update)
	if patch.Topics != nil {
		patch.Topics = dedupeTags(patch.Topics)
	}
	return s.store.Replace(id, patch.ApplyTo)
}

func (s *TherapyService) Delete(ctx context.Context, id string) (models.TherapySession, error) {
	wait(s.delay.Delete)
	return s.store.Remove(id)
}

// RecentSessions returns up to limit sessions, newest first. Sessions
// sharing a date keep their store order.
func (s *TherapyService) RecentSessions(ctx context.Context, limit int) []models.TherapySession {
	wait(s.delay.Metric)
	return recentByDate(s.store.All(), limit, func(sess models.TherapySession) (time.Time, error) {
		return utils.ParseDay(sess.Date)
	})
}

// TopicFrequency maps each topic tag to the number of sessions listing
// it; a multi-topic session counts toward every one of its topics.
func (s *TherapyService) TopicFrequency(ctx context.Context) map[string]int {
	wait(s.delay.Metric)

	rev := s.store.Revision()
	if v, ok := s.topics.Get(topicFrequencyKey, rev); ok {
		return copyCounts(v)
	}

	counts := map[string]int{}
	for _, session := range s.store.All() {
		for _, topic := range session.Topics {
			counts[topic]++
		}
	}

	s.topics.Put(topicFrequencyKey, rev, counts)
	return copyCounts(counts)
}

// dedupeTags drops repeated tags while keeping first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// recentByDate sorts a snapshot newest-first by the extracted date and
// truncates to limit. The sort is stable so date ties keep store order.
func recentByDate[T any](records []T, limit int, dateOf func(T) (time.Time, error)) []T {
	type dated struct {
		rec T
		at  time.Time
	}
	window := make([]dated, 0, len(records))
	for _, r := range records {
		at, err := dateOf(r)
		if err != nil {
			continue
		}
		window = append(window, dated{rec: r, at: at})
	}
	sort.SliceStable(window, func(i, j int) bool { return window[i].at.After(window[j].at) })

	if limit < 0 {
		limit = 0
	}
	if limit > len(window) {
		limit = len(window)
	}
	out := make([]T, 0, limit)
	for _, d := range window[:limit] {
		out = append(out, d.rec)
	}
	return out
}
