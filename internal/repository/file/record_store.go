package file

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"

	"alcyxob/fitstack/internal/domain"
)

// RecordStore is a file-backed repository.RecordRepository. All users'
// records live in one flat JSON array, filtered by userId at read time,
// exactly like the original on-device file.
type RecordStore struct {
	path string
	mu   sync.RWMutex
}

// NewRecordStore creates a record store rooted at dataDir.
func NewRecordStore(dataDir string) *RecordStore {
	return &RecordStore{path: filepath.Join(dataDir, recordsFileName)}
}

// Create appends a new record. Records are immutable once written.
func (s *RecordStore) Create(_ context.Context, record *domain.WorkoutRecord) error {
	if record.ID == "" || record.UserID == "" {
		return errors.New("record id and user id are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRecords()
	if err != nil {
		return err
	}
	records = append(records, *record)
	return writeJSONArray(s.path, records)
}

// GetByUserID returns the user's records ordered by timestamp ascending.
func (s *RecordStore) GetByUserID(_ context.Context, userID string) ([]domain.WorkoutRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := s.readRecords()
	if err != nil {
		return nil, err
	}

	records := []domain.WorkoutRecord{}
	for _, r := range all {
		if r.UserID == userID {
			records = append(records, r)
		}
	}
	// Timestamp is the canonical ordering key; the date string is display only.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

// CountByUserID reports how many records the user has.
func (s *RecordStore) CountByUserID(_ context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := s.readRecords()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, r := range all {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *RecordStore) readRecords() ([]domain.WorkoutRecord, error) {
	records := []domain.WorkoutRecord{}
	if err := readJSONArray(s.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}
