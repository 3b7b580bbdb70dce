package book

import (
	"time"

	"github.com/ADEB21/BooksInMyMind/model"
)

const isoLayout = "2006-01-02T15:04:05Z07:00"

// CreateBookReq creates a catalog entry, optionally with the caller's
// personal reading fields alongside.
type CreateBookReq struct {
	Title         string   `json:"title" validate:"required,min=1"`
	Authors       []string `json:"authors" validate:"omitempty,dive,min=1"`
	Genres        []string `json:"genres" validate:"omitempty,dive,min=1"`
	Summary       *string  `json:"summary"`
	Publisher     *string  `json:"publisher"`
	Language      *string  `json:"language"`
	ISBN          *string  `json:"isbn"`
	CoverURL      *string  `json:"cover_url" validate:"omitempty,url"`
	DatePublished *string  `json:"date_published" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`

	Status    *model.ReadingStatus `json:"status" validate:"omitempty,oneof=TO_READ READING FINISHED ABANDONED"`
	Rating    *int                 `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment   *string              `json:"comment"`
	StartDate *string              `json:"start_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate   *string              `json:"end_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Pages     *int                 `json:"pages" validate:"omitempty,gt=0"`
}

func (r CreateBookReq) bookFields() model.BookFields {
	title := r.Title
	return model.BookFields{
		Title:         &title,
		Summary:       blankToNil(r.Summary),
		Publisher:     blankToNil(r.Publisher),
		Language:      blankToNil(r.Language),
		ISBN:          blankToNil(r.ISBN),
		CoverURL:      blankToNil(r.CoverURL),
		DatePublished: parseTime(r.DatePublished),
	}
}

// personal returns nil when the payload carries no reading fields, in which
// case only the catalog entry is created.
func (r CreateBookReq) personal() *model.UserBookFields {
	if r.Status == nil && r.Rating == nil && r.Comment == nil &&
		r.StartDate == nil && r.EndDate == nil && r.Pages == nil {
		return nil
	}
	return &model.UserBookFields{
		Status:    r.Status,
		Rating:    r.Rating,
		Comment:   r.Comment,
		StartDate: parseTime(r.StartDate),
		EndDate:   parseTime(r.EndDate),
		Pages:     r.Pages,
	}
}

// UpdateCatalogReq mutates only the shared fields of a catalog entry.
type UpdateCatalogReq struct {
	Title         *string   `json:"title" validate:"omitempty,min=1"`
	Authors       *[]string `json:"authors" validate:"omitempty,dive,min=1"`
	Genres        *[]string `json:"genres" validate:"omitempty,dive,min=1"`
	Summary       *string   `json:"summary"`
	Publisher     *string   `json:"publisher"`
	Language      *string   `json:"language"`
	ISBN          *string   `json:"isbn"`
	CoverURL      *string   `json:"cover_url" validate:"omitempty,url"`
	DatePublished *string   `json:"date_published" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (r UpdateCatalogReq) bookFields() model.BookFields {
	return model.BookFields{
		Title:         r.Title,
		Summary:       r.Summary,
		Publisher:     r.Publisher,
		Language:      r.Language,
		ISBN:          r.ISBN,
		CoverURL:      blankToNil(r.CoverURL),
		DatePublished: parseTime(r.DatePublished),
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

// blankToNil maps an explicit empty string to absent, mirroring forms that
// submit blank optional inputs.
func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
