// model/userbook.go
package model

import (
	"math"
	"time"
)

type ReadingStatus string

const (
	StatusToRead    ReadingStatus = "TO_READ"
	StatusReading   ReadingStatus = "READING"
	StatusFinished  ReadingStatus = "FINISHED"
	StatusAbandoned ReadingStatus = "ABANDONED"
)

func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusFinished, StatusAbandoned:
		return true
	}
	return false
}

// UserBook is one user's reading record for a catalog Book. At most one row
// exists per (user, book); the database enforces it.
type UserBook struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	BookID      int64         `json:"book_id"`
	Status      ReadingStatus `json:"status"`
	Rating      *int          `json:"rating,omitempty"`
	Comment     *string       `json:"comment,omitempty"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Pages       *int          `json:"pages,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	Book        *Book         `json:"book,omitempty"`
	ReadingDays *int          `json:"reading_days,omitempty"`
}

// UserBookFields carries the personal fields for create/update. Nil means
// "leave unchanged" on update, "absent" on create.
type UserBookFields struct {
	Status    *ReadingStatus
	Rating    *int
	Comment   *string
	StartDate *time.Time
	EndDate   *time.Time
	Pages     *int
}

// ReadingDays returns the whole-day reading duration between start and end,
// rounded up, never less than one day. Nil when either date is missing.
func ReadingDays(start, end *time.Time) *int {
	if start == nil || end == nil || end.Before(*start) {
		return nil
	}
	d := int(math.Ceil(end.Sub(*start).Hours() / 24))
	if d < 1 {
		d = 1
	}
	return &d
}

// FillReadingDays sets the computed duration on a row when both dates are set.
func (ub *UserBook) FillReadingDays() {
	ub.ReadingDays = ReadingDays(ub.StartDate, ub.EndDate)
}

// LibraryStats summarizes one user's library for the dashboard.
type LibraryStats struct {
	Total     int64   `json:"total"`
	Finished  int64   `json:"finished"`
	Reading   int64   `json:"reading"`
	AvgRating float64 `json:"avg_rating"`
}
