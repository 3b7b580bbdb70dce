// model/book.go
package model

import "time"

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Book is a shared catalog entry. It belongs to no single user; any number
// of UserBook rows may reference it, including zero.
type Book struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Summary       *string    `json:"summary,omitempty"`
	Publisher     *string    `json:"publisher,omitempty"`
	Language      *string    `json:"language,omitempty"`
	ISBN          *string    `json:"isbn,omitempty"`
	CoverURL      *string    `json:"cover_url,omitempty"`
	DatePublished *time.Time `json:"date_published,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Authors       []Author   `json:"authors"`
	Genres        []Genre    `json:"genres"`
	ReaderCount   int64      `json:"reader_count"`
}

// BookFilter narrows the public catalog listing. Search matches title or
// summary; Author and Genre match the related names. All matches are
// case-insensitive substring containment, and non-empty filters are ANDed.
type BookFilter struct {
	Search string
	Author string
	Genre  string
}

// BookFields carries the shared catalog fields for create/update. Nil
// pointers mean "leave unchanged" on update and "absent" on create.
type BookFields struct {
	Title         *string
	Summary       *string
	Publisher     *string
	Language      *string
	ISBN          *string
	CoverURL      *string
	DatePublished *time.Time
}
