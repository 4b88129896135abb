package services

import (
	"context"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
)

// DashboardSummary is the cross-entity overview the dashboard renders:
// today's entries, the latest therapy session, recent allergy episodes
// and the gratitude streak.
type DashboardSummary struct {
	TodaysMood       *models.MoodEntry       `json:"todaysMood"`
	TodaysGratitude  *models.GratitudeEntry  `json:"todaysGratitude"`
	TodaysScreenTime *models.ScreenTimeEntry `json:"todaysScreenTime"`
	RecentTherapy    *models.TherapySession  `json:"recentTherapy"`
	RecentAllergies  []models.AllergyEpisode `json:"recentAllergies"`
	GratitudeStreak  int                     `json:"gratitudeStreak"`
}

// DashboardService joins the five entity services. The entities share no
// references; this read-side composition is the only place they meet.
type DashboardService struct {
	moods      *MoodService
	gratitude  *GratitudeService
	screenTime *ScreenTimeService
	therapy    *TherapyService
	allergies  *AllergyService
}

func NewDashboardService(
	moods *MoodService,
	gratitude *GratitudeService,
	screenTime *ScreenTimeService,
	therapy *TherapyService,
	allergies *AllergyService,
) *DashboardService {
	return &DashboardService{
		moods:      moods,
		gratitude:  gratitude,
		screenTime: screenTime,
		therapy:    therapy,
		allergies:  allergies,
	}
}

func (s *DashboardService) Summary(ctx context.Context) DashboardSummary {
	out := DashboardSummary{
		TodaysMood:       s.moods.TodaysEntry(ctx),
		TodaysGratitude:  s.gratitude.TodaysEntry(ctx),
		TodaysScreenTime: s.screenTime.TodaysEntry(ctx),
		RecentAllergies:  s.allergies.RecentEpisodes(ctx, 3),
		GratitudeStreak:  s.gratitude.CurrentStreak(ctx),
	}
	if recent := s.therapy.RecentSessions(ctx, 1); len(recent) > 0 {
		out.RecentTherapy = &recent[0]
	}
	return out
}
