package store

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

func loadFixture[T any](name string) ([]T, error) {
	raw, err := fixturesFS.ReadFile("fixtures/" + name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return out, nil
}

// Stores bundles the five seeded collections the app runs on.
type Stores struct {
	Moods      *Store[models.MoodEntry]
	Gratitude  *Store[models.GratitudeEntry]
	ScreenTime *Store[models.ScreenTimeEntry]
	Therapy    *Store[models.TherapySession]
	Allergies  *Store[models.AllergyEpisode]
}

// SeedStores builds every store from the embedded fixture data.
func SeedStores() (*Stores, error) {
	moods, err := loadFixture[models.MoodEntry]("moods.json")
	if err != nil {
		return nil, err
	}
	gratitude, err := loadFixture[models.GratitudeEntry]("gratitude.json")
	if err != nil {
		return nil, err
	}
	screenTime, err := loadFixture[models.ScreenTimeEntry]("screentime.json")
	if err != nil {
		return nil, err
	}
	therapy, err := loadFixture[models.TherapySession]("therapy.json")
	if err != nil {
		return nil, err
	}
	allergies, err := loadFixture[models.AllergyEpisode]("allergies.json")
	if err != nil {
		return nil, err
	}

	return &Stores{
		Moods:      New(moods),
		Gratitude:  New(gratitude),
		ScreenTime: New(screenTime),
		Therapy:    New(therapy),
		Allergies:  New(allergies),
	}, nil
}
