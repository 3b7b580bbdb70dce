package library

import (
	"time"

	"github.com/ADEB21/BooksInMyMind/model"
)

const isoLayout = "2006-01-02T15:04:05Z07:00"

// PersonalFieldsReq is the personal subset shared by add-to-library and
// library updates. It never touches the underlying book.
type PersonalFieldsReq struct {
	Status    *model.ReadingStatus `json:"status" validate:"omitempty,oneof=TO_READ READING FINISHED ABANDONED"`
	Rating    *int                 `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment   *string              `json:"comment"`
	StartDate *string              `json:"start_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate   *string              `json:"end_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Pages     *int                 `json:"pages" validate:"omitempty,gt=0"`
}

func (r PersonalFieldsReq) fields() model.UserBookFields {
	return model.UserBookFields{
		Status:    r.Status,
		Rating:    r.Rating,
		Comment:   r.Comment,
		StartDate: parseTime(r.StartDate),
		EndDate:   parseTime(r.EndDate),
		Pages:     r.Pages,
	}
}

func parseTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(isoLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
