package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"alcyxob/fitstack/internal/analytics"
	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/repository"
	"alcyxob/fitstack/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrNoExercisesSelected = errors.New("a record needs at least one exercise")
	ErrUnknownExercise     = errors.New("exercise is not in the catalog")
	ErrInvalidSetCount     = errors.New("set count must be at least 1")
)

// Clock supplies the current time; injectable so record creation and
// seeding are testable.
type Clock func() time.Time

// LogEntry is one confirmed selection from the exercise catalog: which
// exercise and how many sets were done today.
type LogEntry struct {
	ExerciseID int
	Sets       int
}

// PhotoUpload is a one-time grant to upload a workout photo. The client
// PUTs the image to UploadURL and passes ObjectKey as the record's
// imagePath when creating the record.
type PhotoUpload struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
}

// RecordService creates and lists workout records.
type RecordService interface {
	CreateRecord(ctx context.Context, userID string, entries []LogEntry, imagePath string) (*domain.WorkoutRecord, error)
	ListRecords(ctx context.Context, userID string) ([]domain.WorkoutRecord, error)
	RequestPhotoUpload(ctx context.Context, userID, contentType string) (*PhotoUpload, error)
	PhotoDownloadURL(ctx context.Context, record *domain.WorkoutRecord) (string, error)
	// SeedDemoRecords backfills demo history for a user with no records
	// yet, returning how many records were created (0 when the user
	// already has history).
	SeedDemoRecords(ctx context.Context, userID string) (int, error)
}

type recordService struct {
	recordRepo  repository.RecordRepository
	fileStorage storage.FileStorage
	now         Clock
}

// NewRecordService creates a new instance of recordService.
func NewRecordService(recordRepo repository.RecordRepository, fileStorage storage.FileStorage, now Clock) RecordService {
	if now == nil {
		now = time.Now
	}
	return &recordService{
		recordRepo:  recordRepo,
		fileStorage: fileStorage,
		now:         now,
	}
}

// CreateRecord saves today's workout session. The creation instant is the
// canonical timestamp; the record's date string is formatted from the same
// instant so the two can never diverge.
func (s *recordService) CreateRecord(ctx context.Context, userID string, entries []LogEntry, imagePath string) (*domain.WorkoutRecord, error) {
	if len(entries) == 0 {
		return nil, ErrNoExercisesSelected
	}

	now := s.now()
	date := analytics.FormatDate(now)

	logs := make([]domain.ExerciseLog, 0, len(entries))
	for _, e := range entries {
		ex, ok := domain.ExerciseByID(e.ExerciseID)
		if !ok {
			return nil, ErrUnknownExercise
		}
		if e.Sets < 1 {
			return nil, ErrInvalidSetCount
		}
		logs = append(logs, domain.ExerciseLog{
			Name: ex.Name,
			Sets: e.Sets,
			Date: date,
			Part: ex.Part,
		})
	}

	record := &domain.WorkoutRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Logs:      logs,
		ImagePath: imagePath,
		Timestamp: now.UnixMilli(),
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListRecords returns the user's records, timestamp ascending.
func (s *recordService) ListRecords(ctx context.Context, userID string) ([]domain.WorkoutRecord, error) {
	return s.recordRepo.GetByUserID(ctx, userID)
}

// RequestPhotoUpload reserves an object key under the user's photo prefix
// and presigns a PUT for it.
func (s *recordService) RequestPhotoUpload(ctx context.Context, userID, contentType string) (*PhotoUpload, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	objectKey := fmt.Sprintf("photos/%s/%s.jpg", userID, uuid.NewString())

	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	return &PhotoUpload{ObjectKey: objectKey, UploadURL: url}, nil
}

// PhotoDownloadURL presigns a GET for a record's photo. Records without a
// photo yield an empty URL and no error.
func (s *recordService) PhotoDownloadURL(ctx context.Context, record *domain.WorkoutRecord) (string, error) {
	if record == nil || !record.HasImage() {
		return "", nil
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, record.ImagePath, storage.DefaultPresignedURLExpiry)
}

// demoExercises are the staples used for seeded history, one per body part.
var demoExercises = []struct {
	name string
	part string
}{
	{"벤치프레스", domain.PartChest},
	{"랫풀다운", domain.PartBack},
	{"스쿼트", domain.PartLegs},
	{"숄더 프레스", domain.PartShoulders},
	{"크런치", domain.PartAbs},
}

// SeedDemoRecords generates history every 5th day over the last 150 days,
// with 1-4 sets of each staple exercise per day. The RNG is seeded from
// the user id so reseeding the same user is deterministic.
func (s *recordService) SeedDemoRecords(ctx context.Context, userID string) (int, error) {
	count, err := s.recordRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	var seed int64
	for _, c := range userID {
		seed = seed*31 + int64(c)
	}
	rng := rand.New(rand.NewSource(seed))

	today := s.now()
	created := 0
	for i := 1; i <= 150; i += 5 {
		day := today.AddDate(0, 0, -i)
		date := analytics.FormatDate(day)

		logs := make([]domain.ExerciseLog, 0, len(demoExercises))
		for _, ex := range demoExercises {
			logs = append(logs, domain.ExerciseLog{
				Name: ex.name,
				Sets: 1 + rng.Intn(4),
				Date: date,
				Part: ex.part,
			})
		}

		record := &domain.WorkoutRecord{
			ID:        uuid.NewString(),
			UserID:    userID,
			Date:      date,
			Logs:      logs,
			Timestamp: day.UnixMilli(),
		}
		if err := s.recordRepo.Create(ctx, record); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
