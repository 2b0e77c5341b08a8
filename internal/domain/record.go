package domain

import "time"

// ExerciseLog is one exercise entry inside a day's record: which exercise,
// how many sets, on which day, tagged with the body part it trains.
// Immutable once the user confirms the selection.
type ExerciseLog struct {
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Date string `bson:"date" json:"date"` // yyyy.MM.dd
	Part string `bson:"part" json:"part"`
}

// WorkoutRecord is one logged workout session. Created on save, never
// mutated afterwards. Timestamp (epoch millis) is the canonical creation
// instant; Date is a formatted cache of the same instant kept for the
// date-keyed computations and for display.
type WorkoutRecord struct {
	ID        string        `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"userId" json:"userId"`
	Date      string        `bson:"date" json:"date"` // yyyy.MM.dd
	Logs      []ExerciseLog `bson:"logs" json:"logs"`
	ImagePath string        `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	Timestamp int64         `bson:"timestamp" json:"timestamp"`
}

// CreatedTime returns the canonical creation instant of the record.
func (r *WorkoutRecord) CreatedTime() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// HasImage reports whether a photo was attached when the record was saved.
func (r *WorkoutRecord) HasImage() bool {
	return r.ImagePath != ""
}
