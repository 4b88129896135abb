package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/utils"
)

// Export categories, in the order CSV blocks are emitted.
var exportCategories = []string{"mood", "therapy", "allergies", "gratitude", "screenTime"}

type ExportRequest struct {
	Categories []string `json:"categories" binding:"required,min=1,dive,oneof=mood therapy allergies gratitude screenTime"`
	StartDate  string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	Format     string   `json:"format" binding:"required,oneof=csv json"`
}

type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService formats already-fetched records into CSV or a JSON
// envelope, filtered to an inclusive date range per entity.
type ExportService struct {
	moods      *MoodService
	gratitude  *GratitudeService
	screenTime *ScreenTimeService
	therapy    *TherapyService
	allergies  *AllergyService
	log        *zap.SugaredLogger
	now        func() time.Time
}

func NewExportService(
	moods *MoodService,
	gratitude *GratitudeService,
	screenTime *ScreenTimeService,
	therapy *TherapyService,
	allergies *AllergyService,
	log *zap.SugaredLogger,
) *ExportService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ExportService{
		moods:      moods,
		gratitude:  gratitude,
		screenTime: screenTime,
		therapy:    therapy,
		allergies:  allergies,
		log:        log,
		now:        time.Now,
	}
}

// dateWindow is the inclusive export range: start-of-day on the start
// date through 23:59:59.999… on the end date.
type dateWindow struct {
	start time.Time
	end   time.Time
}

func parseWindow(startDate, endDate string) (dateWindow, error) {
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return dateWindow{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := utils.ParseDay(endDate)
	if err != nil {
		return dateWindow{}, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return dateWindow{}, fmt.Errorf("end date precedes start date")
	}
	return dateWindow{start: start, end: utils.DayEnd(end)}, nil
}

func (w dateWindow) containsDay(date string) bool {
	day, err := utils.ParseDay(date)
	if err != nil {
		return false
	}
	return !day.Before(w.start) && !day.After(w.end)
}

func (w dateWindow) containsInstant(datetime string) bool {
	at, err := time.Parse(time.RFC3339, datetime)
	if err != nil {
		return false
	}
	at = at.In(time.Local)
	return !at.Before(w.start) && !at.After(w.end)
}

// Counts returns the number of records per category inside the range,
// for every category regardless of selection.
func (s *ExportService) Counts(ctx context.Context, startDate, endDate string) (map[string]int, error) {
	window, err := parseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(exportCategories))
	counts["mood"] = len(s.filteredMoods(ctx, window))
	counts["therapy"] = len(s.filteredTherapy(ctx, window))
	counts["allergies"] = len(s.filteredAllergies(ctx, window))
	counts["gratitude"] = len(s.filteredGratitude(ctx, window))
	counts["screenTime"] = len(s.filteredScreenTime(ctx, window))
	return counts, nil
}

// Export produces the requested file for the selected categories.
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	window, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return ExportResult{}, err
	}

	selected := make(map[string]bool, len(req.Categories))
	for _, c := range req.Categories {
		selected[c] = true
	}

	sections := s.collect(ctx, selected, window)

	var result ExportResult
	switch req.Format {
	case "csv":
		result = ExportResult{
			Filename:    fmt.Sprintf("mindfulpath-export-%s-to-%s.csv", req.StartDate, req.EndDate),
			ContentType: "text/csv; charset=utf-8",
			Body:        []byte(renderCSV(sections)),
		}
	case "json":
		body, err := renderJSON(sections, s.now(), req.StartDate, req.EndDate)
		if err != nil {
			return ExportResult{}, err
		}
		result = ExportResult{
			Filename:    fmt.Sprintf("mindfulpath-export-%s-to-%s.json", req.StartDate, req.EndDate),
			ContentType: "application/json",
			Body:        body,
		}
	default:
		return ExportResult{}, fmt.Errorf("unsupported format %q", req.Format)
	}

	s.log.Infow("export generated",
		"format", req.Format,
		"categories", req.Categories,
		"startDate", req.StartDate,
		"endDate", req.EndDate,
		"bytes", len(result.Body),
	)
	return result, nil
}

// section is one entity's share of an export: the records themselves for
// JSON output, plus the tabular projection for CSV.
type section struct {
	key     string
	records any
	headers []string
	rows    [][]string
	count   int
}

func (s *ExportService) collect(ctx context.Context, selected map[string]bool, window dateWindow) []section {
	var sections []section
	for _, key := range exportCategories {
		if !selected[key] {
			continue
		}
		switch key {
		case "mood":
			items := s.filteredMoods(ctx, window)
			sec := section{key: key, records: items, count: len(items),
				headers: []string{"id", "date", "mood", "notes", "timestamp"}}
			for _, e := range items {
				sec.rows = append(sec.rows, []string{e.ID, e.Date, e.Mood, e.Notes, e.Timestamp})
			}
			sections = append(sections, sec)
		case "therapy":
			items := s.filteredTherapy(ctx, window)
			sec := section{key: key, records: items, count: len(items),
				headers: []string{"id", "date", "topics", "reflection", "timestamp"}}
			for _, e := range items {
				sec.rows = append(sec.rows, []string{e.ID, e.Date, strings.Join(e.Topics, "; "), e.Reflection, e.Timestamp})
			}
			sections = append(sections, sec)
		case "allergies":
			items := s.filteredAllergies(ctx, window)
			sec := section{key: key, records: items, count: len(items),
				headers: []string{"id", "datetime", "trigger", "symptoms", "remedies"}}
			for _, e := range items {
				sec.rows = append(sec.rows, []string{e.ID, e.Datetime, e.Trigger, strings.Join(e.Symptoms, "; "), strings.Join(e.Remedies, "; ")})
			}
			sections = append(sections, sec)
		case "gratitude":
			items := s.filteredGratitude(ctx, window)
			sec := section{key: key, records: items, count: len(items),
				headers: []string{"id", "date", "content", "timestamp"}}
			for _, e := range items {
				sec.rows = append(sec.rows, []string{e.ID, e.Date, e.Content, e.Timestamp})
			}
			sections = append(sections, sec)
		case "screenTime":
			items := s.filteredScreenTime(ctx, window)
			sec := section{key: key, records: items, count: len(items),
				headers: []string{"id", "date", "hours", "minutes"}}
			for _, e := range items {
				sec.rows = append(sec.rows, []string{e.ID, e.Date, strconv.Itoa(e.Hours), strconv.Itoa(e.Minutes)})
			}
			sections = append(sections, sec)
		}
	}
	return sections
}

func (s *ExportService) filteredMoods(ctx context.Context, w dateWindow) []models.MoodEntry {
	var out []models.MoodEntry
	for _, e := range s.moods.GetAll(ctx) {
		if w.containsDay(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExportService) filteredGratitude(ctx context.Context, w dateWindow) []models.GratitudeEntry {
	var out []models.GratitudeEntry
	for _, e := range s.gratitude.GetAll(ctx) {
		if w.containsDay(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExportService) filteredScreenTime(ctx context.Context, w dateWindow) []models.ScreenTimeEntry {
	var out []models.ScreenTimeEntry
	for _, e := range s.screenTime.GetAll(ctx) {
		if w.containsDay(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExportService) filteredTherapy(ctx context.Context, w dateWindow) []models.TherapySession {
	var out []models.TherapySession
	for _, e := range s.therapy.GetAll(ctx) {
		if w.containsDay(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExportService) filteredAllergies(ctx context.Context, w dateWindow) []models.AllergyEpisode {
	var out []models.AllergyEpisode
	for _, e := range s.allergies.GetAll(ctx) {
		if w.containsInstant(e.Datetime) {
			out = append(out, e)
		}
	}
	return out
}

// renderCSV emits one labeled block per non-empty category: a
// "<CATEGORY> DATA" line, a header row, then the data rows. Array
// fields arrive pre-joined with "; "; fields containing commas or
// newlines are quoted with doubled inner quotes.
func renderCSV(sections []section) string {
	var b strings.Builder
	for _, sec := range sections {
		if sec.count == 0 {
			continue
		}
		b.WriteString("\n" + strings.ToUpper(sec.key) + " DATA\n")
		b.WriteString(strings.Join(sec.headers, ",") + "\n")
		for _, row := range sec.rows {
			fields := make([]string, len(row))
			for i, v := range row {
				fields[i] = csvField(v)
			}
			b.WriteString(strings.Join(fields, ",") + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func csvField(v string) string {
	if strings.ContainsAny(v, ",\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

func renderJSON(sections []section, now time.Time, startDate, endDate string) ([]byte, error) {
	envelope := struct {
		ExportDate string `json:"exportDate"`
		DateRange  struct {
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"dateRange"`
		Data map[string]any `json:"data"`
	}{
		ExportDate: now.UTC().Format(time.RFC3339),
		Data:       make(map[string]any, len(sections)),
	}
	envelope.DateRange.StartDate = startDate
	envelope.DateRange.EndDate = endDate
	for _, sec := range sections {
		envelope.Data[sec.key] = sec.records
	}
	return json.MarshalIndent(envelope, "", "  ")
}
