package service_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/repository"
	"alcyxob/fitstack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; ok {
		return repository.ErrConflict
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type fakeRecordRepo struct {
	records []domain.WorkoutRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, record *domain.WorkoutRecord) error {
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRecordRepo) GetByUserID(_ context.Context, userID string) ([]domain.WorkoutRecord, error) {
	var out []domain.WorkoutRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

func (f *fakeRecordRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, r := range f.records {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeStorage struct{}

func (fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/put/" + objectKey, nil
}

func (fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}

func (fakeStorage) DeleteObject(context.Context, string) error { return nil }

func fixedClock(t time.Time) service.Clock {
	return func() time.Time { return t }
}

// --- auth ---

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	auth := service.NewAuthService(repo, "test-secret", time.Hour)

	age := 27
	user, err := auth.Register(ctx, "mina", "hunter22", &age)
	require.NoError(t, err)
	assert.Equal(t, "mina", user.ID)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")

	// the stored hash is bcrypt, not the plaintext of the original app
	stored := repo.users["mina"]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)

	_, err = auth.Register(ctx, "mina", "other", nil)
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)

	token, loggedIn, err := auth.Login(ctx, "mina", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "mina", loggedIn.ID)

	_, _, err = auth.Login(ctx, "mina", "wrong")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, _, err = auth.Login(ctx, "nobody", "hunter22")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

// --- records ---

func TestRecordService_CreateRecord(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	svc := service.NewRecordService(repo, fakeStorage{}, fixedClock(now))

	record, err := svc.CreateRecord(ctx, "mina", []service.LogEntry{
		{ExerciseID: 4, Sets: 3}, // 랫풀다운 (등)
		{ExerciseID: 7, Sets: 5}, // 스쿼트 (하체)
	}, "photos/mina/p1.jpg")
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "mina", record.UserID)
	assert.Equal(t, "2025.06.15", record.Date)
	assert.Equal(t, now.UnixMilli(), record.Timestamp)
	assert.Equal(t, "photos/mina/p1.jpg", record.ImagePath)

	require.Len(t, record.Logs, 2)
	assert.Equal(t, domain.ExerciseLog{Name: "랫풀다운", Sets: 3, Date: "2025.06.15", Part: domain.PartBack}, record.Logs[0])
	assert.Equal(t, domain.ExerciseLog{Name: "스쿼트", Sets: 5, Date: "2025.06.15", Part: domain.PartLegs}, record.Logs[1])

	// date string and timestamp come from the same instant
	assert.Equal(t, record.Date, record.CreatedTime().UTC().Format("2006.01.02"))
}

func TestRecordService_CreateRecord_Validation(t *testing.T) {
	ctx := context.Background()
	svc := service.NewRecordService(&fakeRecordRepo{}, fakeStorage{}, nil)

	_, err := svc.CreateRecord(ctx, "mina", nil, "")
	assert.ErrorIs(t, err, service.ErrNoExercisesSelected)

	_, err = svc.CreateRecord(ctx, "mina", []service.LogEntry{{ExerciseID: 99, Sets: 3}}, "")
	assert.ErrorIs(t, err, service.ErrUnknownExercise)

	_, err = svc.CreateRecord(ctx, "mina", []service.LogEntry{{ExerciseID: 1, Sets: 0}}, "")
	assert.ErrorIs(t, err, service.ErrInvalidSetCount)
}

func TestRecordService_RequestPhotoUpload(t *testing.T) {
	svc := service.NewRecordService(&fakeRecordRepo{}, fakeStorage{}, nil)

	up, err := svc.RequestPhotoUpload(context.Background(), "mina", "image/png")
	require.NoError(t, err)
	assert.Contains(t, up.ObjectKey, "photos/mina/")
	assert.Equal(t, "https://storage.test/put/"+up.ObjectKey, up.UploadURL)
}

func TestRecordService_SeedDemoRecords(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := service.NewRecordService(repo, fakeStorage{}, fixedClock(now))

	created, err := svc.SeedDemoRecords(ctx, "mina")
	require.NoError(t, err)
	assert.Equal(t, 30, created) // every 5th day over 150 days

	records, err := svc.ListRecords(ctx, "mina")
	require.NoError(t, err)
	require.Len(t, records, 30)
	for _, r := range records {
		require.Len(t, r.Logs, 5)
		for _, l := range r.Logs {
			assert.GreaterOrEqual(t, l.Sets, 1)
			assert.LessOrEqual(t, l.Sets, 4)
			assert.Equal(t, r.Date, l.Date)
		}
	}
	// newest seeded record is yesterday
	assert.Equal(t, "2025.06.14", records[len(records)-1].Date)

	// a user with history is never reseeded
	created, err = svc.SeedDemoRecords(ctx, "mina")
	require.NoError(t, err)
	assert.Zero(t, created)
}

// --- stats ---

func seededRecords(userID string) []domain.WorkoutRecord {
	var records []domain.WorkoutRecord
	for i, date := range []string{"2025.06.01", "2025.06.05", "2025.06.10"} {
		records = append(records, domain.WorkoutRecord{
			ID:        fmt.Sprintf("r%d", i+1),
			UserID:    userID,
			Date:      date,
			Timestamp: int64(i+1) * 1000,
			Logs: []domain.ExerciseLog{
				{Name: "랫풀다운", Sets: 3 + i, Date: date, Part: domain.PartBack},
				{Name: "스쿼트", Sets: 2, Date: date, Part: domain.PartLegs},
			},
		})
	}
	return records
}

func TestStatsService_SummaryAndDaily(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{records: seededRecords("mina")}
	svc := service.NewStatsService(repo, fakeStorage{}, nil)

	summary, err := svc.Summary(ctx, "mina", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 18, summary.TotalSets) // 3+4+5 back, 3*2 legs
	assert.Equal(t, 3, summary.ActiveDays)
	assert.Equal(t, domain.PartBack, summary.TopPart)

	from := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	summary, err = svc.Summary(ctx, "mina", &from, &to)
	require.NoError(t, err)
	assert.Equal(t, 13, summary.TotalSets)
	assert.Equal(t, 2, summary.ActiveDays)

	trend, err := svc.DailyTotals(ctx, "mina", nil, nil)
	require.NoError(t, err)
	require.Len(t, trend.Totals, 3)
	assert.Equal(t, 5, trend.Totals[0].Sets)
	assert.Equal(t, 7, trend.Totals[2].Sets)
	assert.Equal(t, "첫날보다 2세트 늘었어요", trend.Message)
}

func TestStatsService_Comparison(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	svc := service.NewStatsService(&fakeRecordRepo{}, fakeStorage{}, fixedClock(now))
	cmp, err := svc.Comparison(ctx, "mina", 1)
	require.NoError(t, err)
	assert.Nil(t, cmp, "empty history suppresses the comparison")

	records := seededRecords("mina")
	records[0].ImagePath = "photos/mina/before.jpg"
	svc = service.NewStatsService(&fakeRecordRepo{records: records}, fakeStorage{}, fixedClock(now))

	cmp, err = svc.Comparison(ctx, "mina", 1) // target 2025-06-01
	require.NoError(t, err)
	require.NotNil(t, cmp)
	assert.Equal(t, "r1", cmp.Record.ID)
	assert.Equal(t, "https://storage.test/get/photos/mina/before.jpg", cmp.PhotoURL)
}

func TestStatsService_Badges(t *testing.T) {
	ctx := context.Background()
	records := []domain.WorkoutRecord{
		{
			UserID: "mina", Date: "2025.06.01", Timestamp: 1,
			Logs: []domain.ExerciseLog{{Name: "스쿼트", Sets: 50, Date: "2025.06.01", Part: domain.PartLegs}},
		},
	}
	svc := service.NewStatsService(&fakeRecordRepo{records: records}, fakeStorage{}, nil)

	badges, err := svc.Badges(ctx, "mina")
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.False(t, badges[0].IsUnlocked) // back_100
	assert.True(t, badges[1].IsUnlocked)  // leg_50
}

func TestStatsService_Calendar(t *testing.T) {
	ctx := context.Background()
	svc := service.NewStatsService(&fakeRecordRepo{records: seededRecords("mina")}, fakeStorage{}, nil)

	grid, err := svc.Calendar(ctx, "mina", 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, 0, grid.Offset) // June 2025 starts on a Sunday
	assert.Equal(t, 3, grid.RecordedCount)
	assert.Equal(t, 5, grid.Rows)
}
