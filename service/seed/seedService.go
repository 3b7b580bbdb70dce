package seedsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ADEB21/BooksInMyMind/model"
	bookrepo "github.com/ADEB21/BooksInMyMind/repository/book"
	libraryrepo "github.com/ADEB21/BooksInMyMind/repository/library"
	userrepo "github.com/ADEB21/BooksInMyMind/repository/user"
	"github.com/ADEB21/BooksInMyMind/util/hash"
)

const (
	demoEmail    = "test@example.com"
	demoName     = "Test User"
	demoPassword = "password123"
)

type Service interface {
	// Run loads demo data once. Re-running after a successful seed is a
	// no-op reporting seeded=false.
	Run(ctx context.Context) (seeded bool, err error)
}

type service struct {
	ur userrepo.Repo
	br bookrepo.Repo
	lr libraryrepo.Repo
}

func New(ur userrepo.Repo, br bookrepo.Repo, lr libraryrepo.Repo) Service {
	return &service{ur: ur, br: br, lr: lr}
}

type demoBook struct {
	title   string
	authors []string
	genres  []string
	summary string
	rating  int
	comment string
	status  model.ReadingStatus
	start   string
	end     string
}

var demoBooks = []demoBook{
	{
		title:   "1984",
		authors: []string{"George Orwell"},
		genres:  []string{"Dystopia", "Classics"},
		summary: "A totalitarian state watches every citizen.",
		rating:  5,
		comment: "A dystopian masterpiece",
		status:  model.StatusFinished,
		start:   "2024-01-01",
		end:     "2024-01-15",
	},
	{
		title:   "The Lord of the Rings",
		authors: []string{"J.R.R. Tolkien"},
		genres:  []string{"Fantasy"},
		summary: "The fellowship sets out to destroy the One Ring.",
		rating:  5,
		comment: "An unforgettable epic",
		status:  model.StatusFinished,
		start:   "2024-02-01",
		end:     "2024-02-20",
	},
	{
		title:   "Sapiens",
		authors: []string{"Yuval Noah Harari"},
		genres:  []string{"History", "Non-fiction"},
		summary: "A brief history of humankind.",
		rating:  4,
		comment: "A fascinating overview of human history",
		status:  model.StatusReading,
		start:   "2024-03-01",
	},
}

func (s *service) Run(ctx context.Context) (bool, error) {
	_, err := s.ur.ByEmail(ctx, demoEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	hashed, err := hash.HashPassword(demoPassword)
	if err != nil {
		return false, err
	}
	u := &model.User{Name: demoName, Email: demoEmail, PasswordHash: hashed}
	if err := s.ur.Create(ctx, u); err != nil {
		return false, err
	}

	for _, d := range demoBooks {
		d := d
		fields := model.BookFields{Title: &d.title, Summary: &d.summary}
		b, err := s.br.Create(ctx, fields, d.authors, d.genres)
		if err != nil {
			return false, err
		}

		status := d.status
		personal := model.UserBookFields{
			Status:    &status,
			Rating:    &d.rating,
			Comment:   &d.comment,
			StartDate: parseDay(d.start),
			EndDate:   parseDay(d.end),
		}
		if _, err := s.lr.Insert(ctx, u.ID, b.ID, personal); err != nil {
			return false, err
		}
	}
	return true, nil
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
