package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

// Registry bundles every service wired over one set of stores.
type Registry struct {
	Moods      *MoodService
	Gratitude  *GratitudeService
	ScreenTime *ScreenTimeService
	Therapy    *TherapyService
	Allergies  *AllergyService
	Dashboard  *DashboardService
	Export     *ExportService
}

// NewRegistry constructs the service graph. metricTTL bounds the age of
// cached frequency tables and averages; streak caching is bounded by
// store revision alone.
func NewRegistry(stores *store.Stores, metricTTL time.Duration, delay Latency, log *zap.SugaredLogger) *Registry {
	moods := NewMoodService(stores.Moods, delay)
	gratitude := NewGratitudeService(stores.Gratitude, delay)
	screenTime := NewScreenTimeService(stores.ScreenTime, metricTTL, delay)
	therapy := NewTherapyService(stores.Therapy, metricTTL, delay)
	allergies := NewAllergyService(stores.Allergies, metricTTL, delay)

	return &Registry{
		Moods:      moods,
		Gratitude:  gratitude,
		ScreenTime: screenTime,
		Therapy:    therapy,
		Allergies:  allergies,
		Dashboard:  NewDashboardService(moods, gratitude, screenTime, therapy, allergies),
		Export:     NewExportService(moods, gratitude, screenTime, therapy, allergies, log),
	}
}
