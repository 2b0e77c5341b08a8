package service

import (
	"context"
	"time"

	"alcyxob/fitstack/internal/analytics"
	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/repository"
	"alcyxob/fitstack/internal/storage"
)

// DailyTrend pairs the per-day set totals with the first-vs-last-day
// narrative shown under the trend chart.
type DailyTrend struct {
	Totals  []analytics.DayTotal `json:"totals"`
	Message string               `json:"message"`
}

// Comparison is the months-ago lookback result: the historical record
// closest to the target date, with a viewable URL for its photo when one
// was attached.
type Comparison struct {
	Record   *domain.WorkoutRecord `json:"record"`
	PhotoURL string                `json:"photoUrl,omitempty"`
}

// StatsService runs the analytics engine over a user's stored records.
// All heavy lifting happens in the analytics package; this layer only
// fetches records and supplies the clock and photo URLs.
type StatsService interface {
	Summary(ctx context.Context, userID string, from, to *time.Time) (analytics.Summary, error)
	DailyTotals(ctx context.Context, userID string, from, to *time.Time) (DailyTrend, error)
	// Comparison returns nil (and no error) when no record resolves,
	// e.g. an empty history; callers suppress the comparison view then.
	Comparison(ctx context.Context, userID string, monthsAgo int) (*Comparison, error)
	Badges(ctx context.Context, userID string) ([]domain.Badge, error)
	Calendar(ctx context.Context, userID string, year int, month time.Month) (analytics.Grid, error)
}

type statsService struct {
	recordRepo  repository.RecordRepository
	fileStorage storage.FileStorage
	now         Clock
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(recordRepo repository.RecordRepository, fileStorage storage.FileStorage, now Clock) StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsService{
		recordRepo:  recordRepo,
		fileStorage: fileStorage,
		now:         now,
	}
}

// rangeLogs flattens the user's logs, restricted to [from, to] when both
// bounds are given. Omitted bounds mean the whole history.
func (s *statsService) rangeLogs(ctx context.Context, userID string, from, to *time.Time) ([]domain.ExerciseLog, error) {
	records, err := s.recordRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil {
		return analytics.FilterLogsInRange(records, from, to), nil
	}
	var logs []domain.ExerciseLog
	for _, r := range records {
		logs = append(logs, r.Logs...)
	}
	return logs, nil
}

func (s *statsService) Summary(ctx context.Context, userID string, from, to *time.Time) (analytics.Summary, error) {
	logs, err := s.rangeLogs(ctx, userID, from, to)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(logs), nil
}

func (s *statsService) DailyTotals(ctx context.Context, userID string, from, to *time.Time) (DailyTrend, error) {
	logs, err := s.rangeLogs(ctx, userID, from, to)
	if err != nil {
		return DailyTrend{}, err
	}
	totals := analytics.DailySetTotals(logs)
	return DailyTrend{Totals: totals, Message: analytics.TrendMessage(totals)}, nil
}

func (s *statsService) Comparison(ctx context.Context, userID string, monthsAgo int) (*Comparison, error) {
	records, err := s.recordRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := analytics.FindClosestRecord(records, monthsAgo, s.now())
	if record == nil {
		return nil, nil
	}

	cmp := &Comparison{Record: record}
	if record.HasImage() {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, record.ImagePath, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, err
		}
		cmp.PhotoURL = url
	}
	return cmp, nil
}

func (s *statsService) Badges(ctx context.Context, userID string) ([]domain.Badge, error) {
	records, err := s.recordRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CalculateBadges(records, userID), nil
}

func (s *statsService) Calendar(ctx context.Context, userID string, year int, month time.Month) (analytics.Grid, error) {
	records, err := s.recordRepo.GetByUserID(ctx, userID)
	if err != nil {
		return analytics.Grid{}, err
	}
	return analytics.MonthGrid(year, month, analytics.RecordedDateSet(records)), nil
}
